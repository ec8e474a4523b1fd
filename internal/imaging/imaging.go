package imaging

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"

	"golang.org/x/image/draw"
)

// MaxDimension is the maximum width or height for stored images. Uploads
// are kept small because they live inline in the record store.
const MaxDimension = 512

// JPEGQuality is the compression quality for JPEG output.
const JPEGQuality = 80

// AvatarSize is the pixel size of generated avatars.
const AvatarSize = 200

// AllowedMIME lists the accepted input MIME types.
var AllowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// Process reads image data, validates the format by sniffing bytes,
// downscales if larger than MaxDimension, re-encodes as JPEG, and returns
// the result as a data URI suitable for an ImageURL field.
func Process(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading image data: %w", err)
	}

	// Sniff actual MIME type from bytes (not trusting client headers).
	detected := http.DetectContentType(data)
	if !AllowedMIME[detected] {
		return "", fmt.Errorf("unsupported image format: %s (only JPEG and PNG accepted)", detected)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	img = downscale(img, MaxDimension)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return "", fmt.Errorf("encoding JPEG: %w", err)
	}

	return dataURI("image/jpeg", buf.Bytes()), nil
}

// Avatar generates a deterministic identicon for the given seed (typically
// the account email) and returns it as a PNG data URI. The same seed always
// yields the same avatar.
func Avatar(seed string) string {
	sum := sha256.Sum256([]byte(seed))

	// Foreground color from the first hash bytes, kept out of the very dark
	// range so it reads against the light background.
	fg := color.RGBA{R: 64 + sum[0]%128, G: 64 + sum[1]%128, B: 64 + sum[2]%128, A: 255}
	bg := color.RGBA{R: 240, G: 242, B: 245, A: 255}

	// 5x5 grid, mirrored around the vertical axis, with a one-cell border.
	const cells = 5
	src := image.NewRGBA(image.Rect(0, 0, cells+2, cells+2))
	for y := 0; y < cells+2; y++ {
		for x := 0; x < cells+2; x++ {
			src.SetRGBA(x, y, bg)
		}
	}
	for y := 0; y < cells; y++ {
		for x := 0; x <= cells/2; x++ {
			bit := sum[3+(y*(cells/2+1)+x)%28]
			if bit%2 == 0 {
				continue
			}
			src.SetRGBA(x+1, y+1, fg)
			src.SetRGBA(cells-x, y+1, fg)
		}
	}

	// Scale up with nearest-neighbor to keep the blocky identicon look.
	dst := image.NewRGBA(image.Rect(0, 0, AvatarSize, AvatarSize))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		// png.Encode on an in-memory RGBA image only fails on writer errors,
		// which bytes.Buffer does not produce.
		return ""
	}
	return dataURI("image/png", buf.Bytes())
}

// downscale resizes the image so neither dimension exceeds maxDim.
// Uses high-quality Catmull-Rom interpolation.
// Returns the original image if already within bounds.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if w <= maxDim && h <= maxDim {
		return img
	}

	// Calculate new dimensions preserving aspect ratio.
	newW, newH := w, h
	if w > h {
		newW = maxDim
		newH = int(float64(h) * float64(maxDim) / float64(w))
	} else {
		newH = maxDim
		newW = int(float64(w) * float64(maxDim) / float64(h))
	}

	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// dataURI encodes raw image bytes as a base64 data URI.
func dataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func init() {
	// Register decoders (jpeg is registered by default, but be explicit).
	image.RegisterFormat("jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "\x89PNG", png.Decode, png.DecodeConfig)
}
