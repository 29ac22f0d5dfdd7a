// ABOUTME: Accent color derivation for card backgrounds
// ABOUTME: Uses K-means clustering to find the most prominent color in the generated image

package card

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"cardforge-api/core/domain"

	"github.com/EdlinOrg/prominentcolor"
)

const defaultAccentValue = 128

// accentColor derives the dominant color from a base64 background data URL.
// Any failure degrades to the default gray; a missing accent never fails a card.
func (s *Service) accentColor(dataURL string) *domain.RGBColor {
	color, err := extractProminentColor(dataURL)
	if err != nil {
		s.deps.Logger.Debug("Failed to derive accent color from background", map[string]interface{}{
			"error": err.Error(),
		})
		return defaultAccent()
	}
	return color
}

func extractProminentColor(dataURL string) (color *domain.RGBColor, err error) {
	// prominentcolor can panic on degenerate images
	defer func() {
		if rec := recover(); rec != nil {
			color = nil
			err = fmt.Errorf("panic recovered: %v", rec)
		}
	}()

	raw, err := decodeDataURL(dataURL)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image has empty bounds")
	}

	imgNRGBA := image.NewNRGBA(bounds)
	draw.Draw(imgNRGBA, bounds, img, bounds.Min, draw.Src)

	colors, err := prominentcolor.KmeansWithAll(
		prominentcolor.ArgumentDefault,
		imgNRGBA,
		prominentcolor.DefaultK,
		1,
		prominentcolor.GetDefaultMasks(),
	)

	// Masked extraction can come up empty on uniform backgrounds
	if err != nil || len(colors) == 0 {
		colors, err = prominentcolor.KmeansWithAll(
			prominentcolor.ArgumentDefault,
			imgNRGBA,
			prominentcolor.DefaultK,
			1,
			nil,
		)
		if err != nil || len(colors) == 0 {
			return nil, fmt.Errorf("no colors extracted from image")
		}
	}

	return &domain.RGBColor{
		R: uint8(colors[0].Color.R),
		G: uint8(colors[0].Color.G),
		B: uint8(colors[0].Color.B),
	}, nil
}

// decodeDataURL strips the data-URL prefix and decodes the base64 payload
func decodeDataURL(dataURL string) ([]byte, error) {
	idx := strings.Index(dataURL, "base64,")
	if idx < 0 {
		return nil, fmt.Errorf("not a base64 data URL")
	}

	raw, err := base64.StdEncoding.DecodeString(dataURL[idx+len("base64,"):])
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 image: %w", err)
	}

	return raw, nil
}

func defaultAccent() *domain.RGBColor {
	return &domain.RGBColor{
		R: defaultAccentValue,
		G: defaultAccentValue,
		B: defaultAccentValue,
	}
}
