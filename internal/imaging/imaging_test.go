package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func createTestJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func createTestPNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{0, 0, 255, 255})
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func decodeDataURI(t *testing.T, uri, wantMIME string) image.Image {
	t.Helper()
	prefix := "data:" + wantMIME + ";base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("expected %q prefix, got %q", prefix, uri[:min(len(uri), 40)])
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("decoding base64: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decoding image: %v", err)
	}
	return img
}

func TestProcessJPEG(t *testing.T) {
	data := createTestJPEG(100, 100)
	uri, err := Process(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Process JPEG: %v", err)
	}
	decodeDataURI(t, uri, "image/jpeg")
}

func TestProcessPNGOutputsJPEG(t *testing.T) {
	data := createTestPNG(100, 100)
	uri, err := Process(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Process PNG: %v", err)
	}
	// PNG input is re-encoded as JPEG.
	decodeDataURI(t, uri, "image/jpeg")
}

func TestProcessDownscale(t *testing.T) {
	data := createTestJPEG(1600, 1600)
	uri, err := Process(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Process large image: %v", err)
	}

	img := decodeDataURI(t, uri, "image/jpeg")
	bounds := img.Bounds()
	if bounds.Dx() > MaxDimension || bounds.Dy() > MaxDimension {
		t.Errorf("expected max %dx%d, got %dx%d", MaxDimension, MaxDimension, bounds.Dx(), bounds.Dy())
	}
}

func TestProcessSmallImageNotUpscaled(t *testing.T) {
	data := createTestJPEG(50, 50)
	uri, err := Process(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Process small image: %v", err)
	}

	img := decodeDataURI(t, uri, "image/jpeg")
	bounds := img.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 50 {
		t.Errorf("small image should not be resized: got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestProcessInvalidFormat(t *testing.T) {
	_, err := Process(bytes.NewReader([]byte("not an image")))
	if err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestProcessGIFRejected(t *testing.T) {
	// GIF magic bytes.
	_, err := Process(bytes.NewReader([]byte("GIF89a...")))
	if err == nil {
		t.Error("expected error for GIF")
	}
}

func TestAvatarDeterministic(t *testing.T) {
	a := Avatar("john@campverse.edu")
	b := Avatar("john@campverse.edu")
	if a != b {
		t.Error("same seed should generate the same avatar")
	}
	if a == Avatar("sarah@campverse.edu") {
		t.Error("different seeds should generate different avatars")
	}
}

func TestAvatarIsPNGDataURI(t *testing.T) {
	img := decodeDataURI(t, Avatar("admin@campverse.edu"), "image/png")
	bounds := img.Bounds()
	if bounds.Dx() != AvatarSize || bounds.Dy() != AvatarSize {
		t.Errorf("expected %dx%d avatar, got %dx%d", AvatarSize, AvatarSize, bounds.Dx(), bounds.Dy())
	}
}
