// ABOUTME: SQLite-based card storage for persistent card records
// ABOUTME: Provides a file-based store that survives application restarts

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"cardforge-api/core/domain"

	_ "github.com/mattn/go-sqlite3"
)

// Store implements the CardStorage interface using SQLite
type Store struct {
	db       *sql.DB
	filePath string
}

// NewStore creates a new SQLite card store
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = "cards.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &Store{
		db:       db,
		filePath: filePath,
	}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the cards table if it doesn't exist
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS cards (
			id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			title TEXT NOT NULL,
			hook TEXT NOT NULL,
			summary TEXT NOT NULL,
			source_type TEXT NOT NULL,
			source_url TEXT NOT NULL DEFAULT '',
			source_meta TEXT NOT NULL DEFAULT '',
			tone TEXT NOT NULL,
			template_id TEXT NOT NULL,
			background_image TEXT NOT NULL DEFAULT '',
			accent_color TEXT NOT NULL DEFAULT '',
			visibility TEXT NOT NULL,
			view_count INTEGER NOT NULL DEFAULT 0,
			share_count INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_cards_owner ON cards(owner_id, created_at);
	`

	_, err := s.db.Exec(query)
	return err
}

// Save persists a card, replacing any existing row with the same ID
func (s *Store) Save(ctx context.Context, card *domain.Card) error {
	var sourceMeta, accentColor string
	if card.SourceMeta != nil {
		data, err := json.Marshal(card.SourceMeta)
		if err != nil {
			return fmt.Errorf("failed to encode source meta: %w", err)
		}
		sourceMeta = string(data)
	}
	if card.AccentColor != nil {
		data, err := json.Marshal(card.AccentColor)
		if err != nil {
			return fmt.Errorf("failed to encode accent color: %w", err)
		}
		accentColor = string(data)
	}

	query := `
		INSERT OR REPLACE INTO cards (
			id, owner_id, title, hook, summary,
			source_type, source_url, source_meta,
			tone, template_id, background_image, accent_color,
			visibility, view_count, share_count, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		card.ID, card.OwnerID, card.Title, card.Hook, card.Summary,
		card.SourceType, card.SourceURL, sourceMeta,
		card.Tone, card.TemplateID, card.BackgroundImage, accentColor,
		card.Visibility, card.ViewCount, card.ShareCount,
		card.CreatedAt.Unix(), card.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save card: %w", err)
	}

	return nil
}

// GetByID retrieves a card by ID; returns (nil, nil) when no row exists
func (s *Store) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	query := selectColumns + " FROM cards WHERE id = ?"

	card, err := scanCard(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	return card, nil
}

// ListByOwner returns an owner's cards newest first
func (s *Store) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Card, error) {
	query := selectColumns + " FROM cards WHERE owner_id = ? ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	var cards []*domain.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}

	return cards, rows.Err()
}

// Delete removes a card by ID. Deleting a missing card is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM cards WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}
	return nil
}

// IncrementViewCount bumps the view counter for a card
func (s *Store) IncrementViewCount(ctx context.Context, id string) error {
	return s.incrementCounter(ctx, "view_count", id)
}

// IncrementShareCount bumps the share counter for a card
func (s *Store) IncrementShareCount(ctx context.Context, id string) error {
	return s.incrementCounter(ctx, "share_count", id)
}

func (s *Store) incrementCounter(ctx context.Context, column, id string) error {
	query := fmt.Sprintf("UPDATE cards SET %s = %s + 1, updated_at = ? WHERE id = ?", column, column)

	result, err := s.db.ExecContext(ctx, query, time.Now().Unix(), id)
	if err != nil {
		return fmt.Errorf("failed to increment %s: %w", column, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("card %s not found", id)
	}

	return nil
}

// Close closes the underlying database handle
func (s *Store) Close() error {
	return s.db.Close()
}

const selectColumns = `SELECT
	id, owner_id, title, hook, summary,
	source_type, source_url, source_meta,
	tone, template_id, background_image, accent_color,
	visibility, view_count, share_count, created_at, updated_at`

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCard(row scanner) (*domain.Card, error) {
	var card domain.Card
	var sourceMeta, accentColor string
	var createdAt, updatedAt int64

	err := row.Scan(
		&card.ID, &card.OwnerID, &card.Title, &card.Hook, &card.Summary,
		&card.SourceType, &card.SourceURL, &sourceMeta,
		&card.Tone, &card.TemplateID, &card.BackgroundImage, &accentColor,
		&card.Visibility, &card.ViewCount, &card.ShareCount,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if sourceMeta != "" {
		var meta domain.SourceMeta
		if err := json.Unmarshal([]byte(sourceMeta), &meta); err != nil {
			return nil, fmt.Errorf("failed to decode source meta: %w", err)
		}
		card.SourceMeta = &meta
	}
	if accentColor != "" {
		var color domain.RGBColor
		if err := json.Unmarshal([]byte(accentColor), &color); err != nil {
			return nil, fmt.Errorf("failed to decode accent color: %w", err)
		}
		card.AccentColor = &color
	}

	card.CreatedAt = time.Unix(createdAt, 0).UTC()
	card.UpdatedAt = time.Unix(updatedAt, 0).UTC()

	return &card, nil
}
