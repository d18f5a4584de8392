package backoffice

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{uint8(x % 256), uint8(y % 256), 100, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return &buf
}

func TestProcessImageReencodesAsJPEG(t *testing.T) {
	data, name, err := processImage(encodePNG(t, 400, 300), "Photo One.png")
	if err != nil {
		t.Fatalf("processImage failed: %v", err)
	}
	if name != "photo-one.jpg" {
		t.Errorf("name = %q, want photo-one.jpg", name)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("format = %q, want jpeg", format)
	}
	if img.Bounds().Dx() != 400 {
		t.Errorf("width = %d, small images must not be resized", img.Bounds().Dx())
	}
}

func TestProcessImageDownscalesWide(t *testing.T) {
	data, _, err := processImage(encodePNG(t, 2400, 1200), "wide.png")
	if err != nil {
		t.Fatalf("processImage failed: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if img.Bounds().Dx() != maxImageWidth {
		t.Errorf("width = %d, want %d", img.Bounds().Dx(), maxImageWidth)
	}
	if img.Bounds().Dy() != 600 {
		t.Errorf("height = %d, want 600 (aspect preserved)", img.Bounds().Dy())
	}
}

func TestProcessImageRejectsGarbage(t *testing.T) {
	if _, _, err := processImage(bytes.NewReader([]byte("not an image")), "x.jpg"); err == nil {
		t.Error("garbage input should fail to decode")
	}
}

func TestNormalizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Photo.png", "photo.jpg"},
		{"My Vacation Pic.JPEG", "my-vacation-pic.jpg"},
		{"???.gif", "upload.jpg"},
		{"", "upload.jpg"},
	}
	for _, tt := range tests {
		if got := normalizeFilename(tt.in); got != tt.want {
			t.Errorf("normalizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Leading and Trailing  ", "leading-and-trailing"},
		{"Symbols!@#Here", "symbols-here"},
		{"already-slugged", "already-slugged"},
		{"MiXeD CaSe 123", "mixed-case-123"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
