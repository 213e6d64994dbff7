package adapter

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder

	"github.com/HugoSmits86/nativewebp"
	"github.com/orisano/pixelmatch"
	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/tiff" // register decoder
	_ "golang.org/x/image/webp" // register decoder

	m "github.com/mouse-blink/goreg/internal/model"
)

// Differ is the pixel comparison primitive. Given the encoded actual and
// expected images it reports either equality or the number of differing
// pixels together with an encoded diff image.
type Differ interface {
	Diff(actual, expected []byte, opts m.DiffOptions) (m.DiffOutcome, error)
}

var (
	diffColor      = color.NRGBA{R: 255, A: 255}
	antiAliasColor = color.NRGBA{R: 255, G: 255, A: 255}
)

// PixelDiffer compares images with pixelmatch and encodes the diff image as
// lossless WebP.
type PixelDiffer struct{}

// NewPixelDiffer constructs a PixelDiffer.
func NewPixelDiffer() *PixelDiffer {
	return &PixelDiffer{}
}

// Diff implements Differ. Images of different sizes are compared over the
// union of both canvases; pixels outside one of them always differ.
func (d *PixelDiffer) Diff(actual, expected []byte, opts m.DiffOptions) (m.DiffOutcome, error) {
	img1, err := decodeNRGBA(actual)
	if err != nil {
		return m.DiffOutcome{}, fmt.Errorf("%w: actual image: %w", m.ErrDiff, err)
	}

	img2, err := decodeNRGBA(expected)
	if err != nil {
		return m.DiffOutcome{}, fmt.Errorf("%w: expected image: %w", m.ErrDiff, err)
	}

	if img1.Rect.Eq(img2.Rect) && bytes.Equal(img1.Pix, img2.Pix) {
		return m.DiffOutcome{Equal: true}, nil
	}

	width := max(img1.Rect.Dx(), img2.Rect.Dx())
	height := max(img1.Rect.Dy(), img2.Rect.Dy())
	bounds := image.Rect(0, 0, width, height)

	var out image.Image

	matchOpts := []pixelmatch.MatchOption{
		pixelmatch.Threshold(opts.Threshold),
		pixelmatch.DiffColor(diffColor),
		pixelmatch.AntiAliasedColor(antiAliasColor),
		pixelmatch.WriteTo(&out),
	}
	if opts.IncludeAntiAlias {
		matchOpts = append(matchOpts, pixelmatch.IncludeAntiAlias)
	}

	count, err := pixelmatch.MatchPixel(extend(img1, bounds), extend(img2, bounds), matchOpts...)
	if err != nil {
		return m.DiffOutcome{}, fmt.Errorf("%w: %w", m.ErrDiff, err)
	}

	if count == 0 {
		return m.DiffOutcome{Equal: true}, nil
	}

	var buf bytes.Buffer
	if err := nativewebp.Encode(&buf, out, nil); err != nil {
		return m.DiffOutcome{}, fmt.Errorf("%w: encode diff image: %w", m.ErrDiff, err)
	}

	return m.DiffOutcome{
		DiffCount: uint64(count),  //nolint:gosec // pixel counts are non-negative
		Width:     uint32(width),  //nolint:gosec // image dimensions are non-negative
		Height:    uint32(height), //nolint:gosec // image dimensions are non-negative
		DiffImage: buf.Bytes(),
	}, nil
}

func decodeNRGBA(data []byte) (*image.NRGBA, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, src, b.Min, draw.Src)

	return dst, nil
}

// extend returns img on a transparent canvas of the given bounds.
func extend(img *image.NRGBA, bounds image.Rectangle) *image.NRGBA {
	if img.Rect.Eq(bounds) {
		return img
	}

	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, img.Rect, img, image.Point{}, draw.Src)

	return dst
}
