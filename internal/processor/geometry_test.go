package processor

import (
	"errors"
	"image"
	"testing"
)

func TestComputeGeometryMaxSide(t *testing.T) {
	cases := []struct {
		name    string
		srcW    int
		srcH    int
		maxSide int
		wantW   int
		wantH   int
	}{
		{"landscape downscale", 4000, 3000, 1200, 1200, 900},
		{"portrait downscale", 3000, 4000, 1200, 900, 1200},
		{"upscale", 100, 50, 400, 400, 200},
		{"square", 500, 500, 250, 250, 250},
		{"extreme aspect clamps to 1px", 1000, 3, 10, 10, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			geom, err := ComputeGeometry(tc.srcW, tc.srcH, SizingOptions{MaxSide: tc.maxSide})
			if err != nil {
				t.Fatalf("ComputeGeometry: %v", err)
			}
			if geom.Width != tc.wantW || geom.Height != tc.wantH {
				t.Fatalf("got %dx%d, want %dx%d", geom.Width, geom.Height, tc.wantW, tc.wantH)
			}
			if geom.Crop != nil {
				t.Fatalf("max-side must not crop, got %v", geom.Crop)
			}
			if max(geom.Width, geom.Height) != tc.maxSide {
				t.Fatalf("longest side = %d, want %d", max(geom.Width, geom.Height), tc.maxSide)
			}
		})
	}
}

func TestComputeGeometryExactDimensions(t *testing.T) {
	geom, err := ComputeGeometry(500, 500, SizingOptions{Width: 800, Height: 600})
	if err != nil {
		t.Fatalf("ComputeGeometry: %v", err)
	}
	if geom.Width != 800 || geom.Height != 600 {
		t.Fatalf("got %dx%d, want 800x600", geom.Width, geom.Height)
	}
	// Without crop-center both axes scale independently: no crop rect.
	if geom.Crop != nil {
		t.Fatalf("unexpected crop: %v", geom.Crop)
	}
}

func TestComputeGeometrySingleAxis(t *testing.T) {
	geom, err := ComputeGeometry(4000, 3000, SizingOptions{Width: 800})
	if err != nil {
		t.Fatalf("ComputeGeometry: %v", err)
	}
	if geom.Width != 800 || geom.Height != 600 {
		t.Fatalf("width-only: got %dx%d, want 800x600", geom.Width, geom.Height)
	}

	geom, err = ComputeGeometry(4000, 3000, SizingOptions{Height: 600})
	if err != nil {
		t.Fatalf("ComputeGeometry: %v", err)
	}
	if geom.Width != 800 || geom.Height != 600 {
		t.Fatalf("height-only: got %dx%d, want 800x600", geom.Width, geom.Height)
	}
}

func TestComputeGeometryCoverCrop(t *testing.T) {
	geom, err := ComputeGeometry(500, 500, SizingOptions{Width: 800, Height: 600, CropCenter: true})
	if err != nil {
		t.Fatalf("ComputeGeometry: %v", err)
	}
	if geom.Width != 800 || geom.Height != 600 {
		t.Fatalf("got %dx%d, want 800x600", geom.Width, geom.Height)
	}
	if geom.Crop == nil {
		t.Fatal("expected a crop rect")
	}
	// A 4:3 target from a square source keeps the full width and crops
	// a centered 500x375 band.
	want := image.Rect(0, 62, 500, 437)
	if *geom.Crop != want {
		t.Fatalf("crop = %v, want %v", *geom.Crop, want)
	}

	geom, err = ComputeGeometry(4000, 1000, SizingOptions{Width: 370, Height: 370, CropCenter: true})
	if err != nil {
		t.Fatalf("ComputeGeometry: %v", err)
	}
	want = image.Rect(1500, 0, 2500, 1000)
	if geom.Crop == nil || *geom.Crop != want {
		t.Fatalf("crop = %v, want %v", geom.Crop, want)
	}
}

func TestComputeGeometryIdentity(t *testing.T) {
	geom, err := ComputeGeometry(640, 480, SizingOptions{})
	if err != nil {
		t.Fatalf("ComputeGeometry: %v", err)
	}
	if geom.Width != 640 || geom.Height != 480 || geom.Crop != nil {
		t.Fatalf("identity geometry broken: %+v", geom)
	}
}

func TestComputeGeometryDegenerateSource(t *testing.T) {
	for _, dims := range [][2]int{{0, 100}, {100, 0}, {0, 0}, {-1, 100}} {
		_, err := ComputeGeometry(dims[0], dims[1], SizingOptions{MaxSide: 100})
		if !errors.Is(err, ErrInvalidGeometry) {
			t.Fatalf("dims %v: got %v, want ErrInvalidGeometry", dims, err)
		}
	}
}
