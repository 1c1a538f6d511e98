// Package image is the codec boundary of filmphoto: it decodes files into
// opaque RGB buffers and encodes them back, choosing the format from the
// file extension.
package image

import (
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"

	"github.com/disintegration/imaging"

	// Decoders beyond the ones imaging registers itself.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the output extension has no encoder.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyImage is returned when a decoded or supplied image has no pixels.
	ErrEmptyImage = errors.New("image: empty image")
)

// Load decodes the image file at path into an opaque RGB buffer.
// EXIF orientation is applied so the pixels match what viewers display.
// Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP.
func Load(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(filepath.Clean(path), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("image: open %s: %w", path, err)
	}
	return ToRGB(img)
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*image.NRGBA, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return ToRGB(img)
}

// Save encodes img to path in the format implied by the path's extension
// (jpg/jpeg, png, gif, tif/tiff, bmp). Codec settings are the encoder defaults.
func Save(img image.Image, path string) error {
	if _, err := FormatFromPath(path); err != nil {
		return err
	}
	if err := imaging.Save(img, filepath.Clean(path)); err != nil {
		return fmt.Errorf("image: save %s: %w", path, err)
	}
	return nil
}

// Encode writes img to w in the format named by ext (with or without the dot).
func Encode(w io.Writer, img image.Image, ext string) error {
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err := imaging.Encode(w, img, format); err != nil {
		return fmt.Errorf("image: encode %s: %w", format, err)
	}
	return nil
}

// FormatFromPath returns the output format implied by the extension of path.
func FormatFromPath(path string) (imaging.Format, error) {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return format, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return format, nil
}
