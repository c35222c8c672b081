// Package wordcloud renders term frequencies as a PNG word cloud.
package wordcloud

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.WordCloudRenderer = (*Renderer)(nil)

// Defaults for Options.
const (
	DefaultWidth    = 800
	DefaultHeight   = 400
	DefaultMaxWords = 50
	DefaultMaxScale = 5
)

// palette cycles through term colours.
var palette = []color.RGBA{
	{0x1f, 0x38, 0x64, 0xff},
	{0x2e, 0x75, 0xb6, 0xff},
	{0x54, 0x8c, 0x2f, 0xff},
	{0xc5, 0x5a, 0x11, 0xff},
	{0x70, 0x30, 0xa0, 0xff},
	{0xbf, 0x90, 0x00, 0xff},
}

// Options configures the canvas.
type Options struct {
	Width      int
	Height     int
	MaxWords   int
	MaxScale   int
	Background color.Color
}

// Renderer draws frequencies with the 7x13 bitmap face, scaled by
// integer factors.
type Renderer struct {
	opts Options
}

// New creates a renderer; zero fields take defaults.
func New(opts Options) *Renderer {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.MaxWords <= 0 {
		opts.MaxWords = DefaultMaxWords
	}
	if opts.MaxScale <= 0 {
		opts.MaxScale = DefaultMaxScale
	}
	if opts.Background == nil {
		opts.Background = color.White
	}
	return &Renderer{opts: opts}
}

// Render places terms on an outward spiral from the centre, most
// frequent first. Terms that find no free spot are skipped.
func (r *Renderer) Render(freqs []domain.TermFrequency) ([]byte, error) {
	if len(freqs) == 0 {
		return nil, fmt.Errorf("%w: no terms to draw", domain.ErrInvalidInput)
	}
	if len(freqs) > r.opts.MaxWords {
		freqs = freqs[:r.opts.MaxWords]
	}

	canvas := image.NewRGBA(image.Rect(0, 0, r.opts.Width, r.opts.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(r.opts.Background), image.Point{}, draw.Src)

	lo, hi := freqs[0].Count, freqs[0].Count
	for _, f := range freqs {
		lo = min(lo, f.Count)
		hi = max(hi, f.Count)
	}

	var placed []image.Rectangle
	for i, f := range freqs {
		scale := r.scaleFor(f.Count, lo, hi)
		glyphs := renderTerm(f.Term, palette[i%len(palette)])
		size := glyphs.Bounds().Size().Mul(scale)

		spot, ok := r.findSpot(size, placed)
		if !ok {
			continue
		}
		draw.NearestNeighbor.Scale(canvas, spot, glyphs, glyphs.Bounds(), draw.Over, nil)
		placed = append(placed, spot)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// scaleFor maps a count linearly onto 1..MaxScale.
func (r *Renderer) scaleFor(count, lo, hi int) int {
	if hi == lo {
		return r.opts.MaxScale
	}
	ratio := float64(count-lo) / float64(hi-lo)
	return 1 + int(math.Round(ratio*float64(r.opts.MaxScale-1)))
}

func (r *Renderer) findSpot(size image.Point, placed []image.Rectangle) (image.Rectangle, bool) {
	bounds := image.Rect(0, 0, r.opts.Width, r.opts.Height)
	cx, cy := float64(r.opts.Width)/2, float64(r.opts.Height)/2
	aspect := float64(r.opts.Height) / float64(r.opts.Width)
	maxRadius := math.Hypot(cx, cy)

	for theta := 0.0; ; theta += 0.15 {
		radius := 2 * theta
		if radius > maxRadius {
			return image.Rectangle{}, false
		}
		x := int(cx+radius*math.Cos(theta)) - size.X/2
		y := int(cy+radius*math.Sin(theta)*aspect) - size.Y/2
		rect := image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x+size.X, y+size.Y)}
		if !rect.In(bounds) {
			continue
		}
		if !overlapsAny(rect.Inset(-2), placed) {
			return rect, true
		}
	}
}

func overlapsAny(rect image.Rectangle, placed []image.Rectangle) bool {
	for _, p := range placed {
		if rect.Overlaps(p) {
			return true
		}
	}
	return false
}

// renderTerm draws the term at scale 1 on a transparent image.
func renderTerm(term string, col color.Color) *image.RGBA {
	face := basicfont.Face7x13
	width := font.MeasureString(face, term).Ceil()
	img := image.NewRGBA(image.Rect(0, 0, max(width, 1), face.Height))

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(term)
	return img
}
