package processor

import (
	"errors"
	"fmt"
	"image"
	"math"
)

var ErrInvalidGeometry = errors.New("invalid image geometry")

// Geometry is the resolved transform for one image: the final pixel
// dimensions plus an optional source-space crop applied before scaling.
type Geometry struct {
	Width  int
	Height int
	Crop   *image.Rectangle
}

// ComputeGeometry resolves sizing options against an image's natural
// dimensions. Precedence: max-side, then width+height, then a single
// axis with the other derived to preserve aspect ratio. With no sizing
// options the natural dimensions pass through (format-only conversion).
//
// Width+height without CropCenter scales each axis independently and
// may distort; with CropCenter the largest centered source region
// matching the target aspect ratio is cropped first.
func ComputeGeometry(naturalW, naturalH int, s SizingOptions) (Geometry, error) {
	if naturalW <= 0 || naturalH <= 0 {
		return Geometry{}, fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, naturalW, naturalH)
	}

	switch {
	case s.MaxSide > 0:
		ratio := float64(s.MaxSide) / float64(max(naturalW, naturalH))
		return Geometry{Width: scaleDim(naturalW, ratio), Height: scaleDim(naturalH, ratio)}, nil
	case s.Width > 0 && s.Height > 0:
		if !s.CropCenter {
			return Geometry{Width: s.Width, Height: s.Height}, nil
		}
		crop := centerCrop(naturalW, naturalH, s.Width, s.Height)
		return Geometry{Width: s.Width, Height: s.Height, Crop: &crop}, nil
	case s.Width > 0:
		ratio := float64(s.Width) / float64(naturalW)
		return Geometry{Width: s.Width, Height: scaleDim(naturalH, ratio)}, nil
	case s.Height > 0:
		ratio := float64(s.Height) / float64(naturalH)
		return Geometry{Width: scaleDim(naturalW, ratio), Height: s.Height}, nil
	default:
		return Geometry{Width: naturalW, Height: naturalH}, nil
	}
}

// centerCrop picks the largest centered region of the source with the
// target aspect ratio. Cross-multiplied comparison keeps it integral.
func centerCrop(srcW, srcH, dstW, dstH int) image.Rectangle {
	cropW := srcW
	cropH := srcH
	if srcW*dstH > srcH*dstW {
		cropW = clampMin(int(math.Round(float64(srcH)*float64(dstW)/float64(dstH))), 1)
	} else {
		cropH = clampMin(int(math.Round(float64(srcW)*float64(dstH)/float64(dstW))), 1)
	}

	left := (srcW - cropW) / 2
	top := (srcH - cropH) / 2
	return image.Rect(left, top, left+cropW, top+cropH)
}

func scaleDim(v int, ratio float64) int {
	return clampMin(int(math.Round(float64(v)*ratio)), 1)
}

func clampMin(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}
