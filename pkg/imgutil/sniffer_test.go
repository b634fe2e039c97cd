package imgutil

import (
	"bytes"
	"testing"
)

func TestDetectHeader(t *testing.T) {
	cases := []struct {
		name   string
		header []byte
		want   Kind
	}{
		{"jpeg", []byte{0xff, 0xd8, 0xff, 0xe0, 0, 0, 0, 0, 0, 0, 0, 0}, KindJPEG},
		{"png", []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}, KindPNG},
		{"webp", []byte("RIFF\x24\x00\x00\x00WEBP"), KindWebP},
		{"riff but not webp", []byte("RIFF\x24\x00\x00\x00WAVE"), KindUnknown},
		{"text", []byte("hello world!"), KindUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DetectHeader(tc.header)
			if err != nil {
				t.Fatalf("DetectHeader: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDetectHeaderTooShort(t *testing.T) {
	if _, err := DetectHeader([]byte{0xff, 0xd8}); err == nil {
		t.Fatal("expected error for short header")
	}
}

func TestSniffReader(t *testing.T) {
	r := bytes.NewReader(append([]byte("RIFF\x10\x00\x00\x00WEBP"), make([]byte, 16)...))
	kind, err := SniffReader(r)
	if err != nil {
		t.Fatalf("SniffReader: %v", err)
	}
	if kind != KindWebP {
		t.Fatalf("got %v, want KindWebP", kind)
	}
}

func TestKindString(t *testing.T) {
	if KindJPEG.String() != "jpeg" || KindPNG.String() != "png" || KindWebP.String() != "webp" || KindUnknown.String() != "unknown" {
		t.Fatal("Kind.String mismatch")
	}
}
