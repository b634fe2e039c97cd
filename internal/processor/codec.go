package processor

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"photo_editor/pkg/imgutil"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrDecode            = errors.New("decode failed")
	ErrEncode            = errors.New("encode failed")
)

// decodeFile sniffs the file content before handing it to the decoder,
// so a mislabeled extension surfaces as unsupported rather than as an
// opaque decoder error.
func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	kind, err := imgutil.SniffReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if kind == imgutil.KindUnknown {
		return nil, ErrUnsupportedFormat
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// applyGeometry executes a resolved Geometry: optional source crop,
// then a Lanczos resample to the target dimensions.
func applyGeometry(img image.Image, g Geometry) image.Image {
	if g.Crop != nil {
		img = imaging.Crop(img, *g.Crop)
	}

	bounds := img.Bounds()
	if bounds.Dx() == g.Width && bounds.Dy() == g.Height {
		return img
	}
	return imaging.Resize(img, g.Width, g.Height, imaging.Lanczos)
}

func encodeImage(w io.Writer, img image.Image, out OutputOptions) error {
	switch out.Format {
	case FormatJPEG:
		if err := imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(out.Quality)); err != nil {
			return fmt.Errorf("%w: %v", ErrEncode, err)
		}
	case FormatPNG:
		// PNG is lossless; quality does not apply.
		if err := imaging.Encode(w, img, imaging.PNG); err != nil {
			return fmt.Errorf("%w: %v", ErrEncode, err)
		}
	case FormatWebP:
		opts := &webp.Options{Quality: float32(out.Quality)}
		if out.Quality >= 100 {
			opts.Lossless = true
		}
		if err := webp.Encode(w, img, opts); err != nil {
			return fmt.Errorf("%w: %v", ErrEncode, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, out.Format)
	}

	return nil
}
