package services

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

const productImageSize = 160

var productPalette = []color.NRGBA{
	{R: 0x00, G: 0x78, B: 0xD7, A: 0xFF},
	{R: 0x10, G: 0x7C, B: 0x10, A: 0xFF},
	{R: 0xD8, G: 0x3B, B: 0x01, A: 0xFF},
	{R: 0x5C, G: 0x2D, B: 0x91, A: 0xFF},
	{R: 0x00, G: 0x8B, B: 0x8B, A: 0xFF},
	{R: 0xB4, G: 0x00, B: 0x9E, A: 0xFF},
}

// RenderProductImage draws a placeholder PNG with the product's initials.
func RenderProductImage(title string, index int) ([]byte, error) {
	const size = productImageSize
	dc := gg.NewContext(size, size)

	if index < 0 {
		index = -index
	}
	dc.SetColor(productPalette[index%len(productPalette)])
	dc.DrawRoundedRectangle(0, 0, size, size, 12)
	dc.Fill()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(color.White)
	dc.DrawStringAnchored(titleInitials(title), size/2, size/2, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func titleInitials(title string) string {
	var b strings.Builder
	for _, word := range strings.Fields(title) {
		r := []rune(word)[0]
		if b.Len() >= 2 {
			break
		}
		if ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "?"
	}
	return strings.ToUpper(b.String())
}
