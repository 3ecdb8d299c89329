package tile

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	SquareWidth  = 150
	SquareHeight = 150
	WideWidth    = 310
	WideHeight   = 150

	tilePadding = 10.0
)

var (
	tileBackground = color.NRGBA{R: 0x00, G: 0x78, B: 0xD7, A: 0xFF}
	badgeFill      = color.NRGBA{R: 0xD8, G: 0x3B, B: 0x01, A: 0xFF}
)

// Images holds the encoded PNGs for one snapshot.
type Images struct {
	Square []byte
	Wide   []byte
}

// Renderer draws tile images. It is not safe for concurrent use because
// truetype faces keep glyph caches.
type Renderer struct {
	face font.Face
}

// NewRenderer uses the TTF at fontPath, or the built-in bitmap face when
// fontPath is empty.
func NewRenderer(fontPath string, size float64) (*Renderer, error) {
	if strings.TrimSpace(fontPath) == "" {
		return &Renderer{face: basicfont.Face7x13}, nil
	}
	if size <= 0 {
		size = 14
	}
	face, err := loadFontFace(fontPath, size)
	if err != nil {
		return nil, fmt.Errorf("could not load tile font: %w", err)
	}
	return &Renderer{face: face}, nil
}

func (r *Renderer) Render(snap Snapshot) (*Images, error) {
	square, err := r.draw(SquareWidth, SquareHeight, snap)
	if err != nil {
		return nil, fmt.Errorf("render square tile: %w", err)
	}
	wide, err := r.draw(WideWidth, WideHeight, snap)
	if err != nil {
		return nil, fmt.Errorf("render wide tile: %w", err)
	}
	return &Images{Square: square, Wide: wide}, nil
}

func (r *Renderer) draw(w, h int, snap Snapshot) ([]byte, error) {
	dc := gg.NewContext(w, h)
	dc.SetColor(tileBackground)
	dc.Clear()

	dc.SetFontFace(r.face)
	dc.SetColor(color.White)
	dc.DrawStringWrapped("My Store", tilePadding, tilePadding, 0, 0, float64(w)-2*tilePadding, 1.2, gg.AlignLeft)
	dc.DrawStringWrapped(snap.Message, tilePadding, float64(h)/3, 0, 0, float64(w)-2*tilePadding, 1.3, gg.AlignLeft)

	if snap.ItemsQuantity > 0 {
		const radius = 14.0
		cx, cy := float64(w)-tilePadding-radius, float64(h)-tilePadding-radius
		dc.SetColor(badgeFill)
		dc.DrawCircle(cx, cy, radius)
		dc.Fill()
		dc.SetColor(color.White)
		dc.DrawStringAnchored(badgeText(snap.ItemsQuantity), cx, cy, 0.5, 0.35)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Badges show at most two digits.
func badgeText(n int) string {
	if n > 99 {
		return "99+"
	}
	return strconv.Itoa(n)
}

func loadFontFace(fontPath string, size float64) (font.Face, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	parsedFont, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF: %w", err)
	}
	return truetype.NewFace(parsedFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}
