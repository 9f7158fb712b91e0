package scan

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func makePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y += 16 {
		for x := 0; x < w; x += 16 {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestShrinkImage(t *testing.T) {
	cases := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"landscape over limit", 1600, 1200, 800, 600},
		{"portrait over limit", 600, 2400, 200, 800},
		{"within limit untouched", 640, 480, 640, 480},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := ShrinkImage(makePNG(t, c.w, c.h), MaxImageDimension)
			if err != nil {
				t.Fatalf("ShrinkImage: %v", err)
			}
			cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
			if err != nil {
				t.Fatalf("decode output: %v", err)
			}
			if format != "jpeg" {
				t.Errorf("output format = %q, want jpeg", format)
			}
			if cfg.Width != c.wantW || cfg.Height != c.wantH {
				t.Errorf("output %dx%d, want %dx%d", cfg.Width, cfg.Height, c.wantW, c.wantH)
			}
		})
	}
}

func TestShrinkImageRejectsGarbage(t *testing.T) {
	if _, err := ShrinkImage([]byte("not an image"), MaxImageDimension); err == nil {
		t.Error("expected decode error")
	}
}
