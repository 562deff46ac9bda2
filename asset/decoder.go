package asset

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/image/draw"
)

// ErrEmptyImage is returned when a decoded image has no pixels.
var ErrEmptyImage = errors.New("decoded image is empty")

// Decoder loads an overlay image as straight (non-premultiplied) RGBA.
type Decoder interface {
	Decode(path string) (*image.NRGBA, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(path string) (*image.NRGBA, error)

// Decode calls f(path).
func (f DecoderFunc) Decode(path string) (*image.NRGBA, error) {
	return f(path)
}

// FileDecoder reads PNG files from disk. The zero value is ready to use.
type FileDecoder struct{}

// Decode opens and decodes the PNG at path.
func (FileDecoder) Decode(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open logo file: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "FileDecoder.Decode",
			"path":     path,
			"error":    err.Error(),
		}).Debug("PNG decode failed")
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	nrgba := ToNRGBA(img)
	if nrgba.Rect.Empty() {
		return nil, fmt.Errorf("decode %s: %w", path, ErrEmptyImage)
	}

	return nrgba, nil
}

// ToNRGBA converts img to a straight-alpha RGBA image anchored at the origin.
// Images that already have that layout are returned as is.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Fingerprint returns a BLAKE2b-256 digest of the image geometry and pixels.
func Fingerprint(img *image.NRGBA) [blake2b.Size256]byte {
	h, _ := blake2b.New256(nil)

	b := img.Bounds()
	fmt.Fprintf(h, "%dx%d:", b.Dx(), b.Dy())
	rowBytes := b.Dx() * 4
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		h.Write(img.Pix[off : off+rowBytes])
	}

	var sum [blake2b.Size256]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// FingerprintFields returns log fields with a short preview of a fingerprint.
func FingerprintFields(sum [blake2b.Size256]byte) logrus.Fields {
	return logrus.Fields{
		"asset_fingerprint": fmt.Sprintf("%x", sum[:8]),
	}
}
