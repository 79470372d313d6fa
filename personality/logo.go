package personality

import (
	"fmt"
	"github.com/kardolus/aipersonality/internal/fsio"
	"github.com/kardolus/aipersonality/types"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"sync"
)

//go:generate mockgen -destination=decodermocks_test.go -package=personality_test github.com/kardolus/aipersonality/personality LogoDecoder

// Bitmap is a decoded image whose Pix buffer belongs to the decoder until
// Release is called with it.
type Bitmap struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

type LogoDecoder interface {
	Decode(path string) (Bitmap, error)
	Release(Bitmap)
}

// LogoMode selects where the logo asset is looked up.
type LogoMode string

const (
	// LogoModeWorkingDir resolves assets/logo.png against the process working directory.
	LogoModeWorkingDir LogoMode = "working-dir"
	// LogoModePackageDir resolves assets/logo.png inside the personality directory.
	LogoModePackageDir LogoMode = "package-dir"
)

func ParseLogoMode(s string) (LogoMode, error) {
	switch LogoMode(s) {
	case "", LogoModeWorkingDir:
		return LogoModeWorkingDir, nil
	case LogoModePackageDir:
		return LogoModePackageDir, nil
	default:
		return "", fmt.Errorf("unknown logo mode %q (expected %q or %q)", s, LogoModeWorkingDir, LogoModePackageDir)
	}
}

// Ensure ImageDecoder implements LogoDecoder interface
var _ LogoDecoder = &ImageDecoder{}

// ImageDecoder decodes any format registered with the image package into a
// pooled scratch buffer.
type ImageDecoder struct {
	reader fsio.Reader
	pool   sync.Pool
}

func NewImageDecoder(reader fsio.Reader) *ImageDecoder {
	return &ImageDecoder{reader: reader}
}

func (d *ImageDecoder) Decode(path string) (Bitmap, error) {
	f, err := d.reader.Open(path)
	if err != nil {
		return Bitmap{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Bitmap{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	channels := channelCount(img)

	pix := d.scratch(width * height * channels)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.At(x, y)
			if channels == 1 {
				pix[i] = color.GrayModel.Convert(c).(color.Gray).Y
				i++
				continue
			}
			n := color.NRGBAModel.Convert(c).(color.NRGBA)
			pix[i], pix[i+1], pix[i+2] = n.R, n.G, n.B
			if channels == 4 {
				pix[i+3] = n.A
			}
			i += channels
		}
	}

	return Bitmap{Width: width, Height: height, Channels: channels, Pix: pix}, nil
}

func (d *ImageDecoder) Release(b Bitmap) {
	if b.Pix == nil {
		return
	}
	buf := b.Pix[:0]
	d.pool.Put(&buf)
}

func (d *ImageDecoder) scratch(size int) []byte {
	if v, ok := d.pool.Get().(*[]byte); ok && cap(*v) >= size {
		return (*v)[:size]
	}
	return make([]byte, size)
}

func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}

// decodeLogo copies the decoded bitmap into memory owned by the returned Logo.
// The decoder's buffer is released on every path once decoding succeeded.
func decodeLogo(decoder LogoDecoder, path string) (*types.Logo, error) {
	bmp, err := decoder.Decode(path)
	if err != nil {
		return nil, err
	}
	defer decoder.Release(bmp)

	if bmp.Width <= 0 || bmp.Height <= 0 || bmp.Channels <= 0 {
		return nil, fmt.Errorf("invalid logo dimensions %dx%dx%d", bmp.Width, bmp.Height, bmp.Channels)
	}
	if want := bmp.Width * bmp.Height * bmp.Channels; len(bmp.Pix) < want {
		return nil, fmt.Errorf("logo buffer has %d bytes, expected %d", len(bmp.Pix), want)
	}

	pix := make([]byte, bmp.Width*bmp.Height*bmp.Channels)
	copy(pix, bmp.Pix)

	return &types.Logo{
		Width:    bmp.Width,
		Height:   bmp.Height,
		Channels: bmp.Channels,
		Pix:      pix,
	}, nil
}
