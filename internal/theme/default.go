package theme

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"git.lost.host/meutraa/apex/internal/logger"
	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

const DefaultSize = 128

var skinFiles = map[Kind]string{
	HitCircle:        "taikohitcircle.png",
	HitCircleOverlay: "taikohitcircleoverlay.png",
	BigCircle:        "taikobigcircle.png",
	BigCircleOverlay: "taikobigcircleoverlay.png",
	HitPosition:      "approachcircle.png",
}

// DefaultTheme draws plain sprites, replacing any of them with a PNG of the
// same name found in SkinDir.
type DefaultTheme struct {
	Size    int
	SkinDir string
}

func (t *DefaultTheme) size() int {
	if t.Size <= 0 {
		return DefaultSize
	}
	return t.Size
}

func (t *DefaultTheme) Texture(k Kind) (*image.NRGBA, error) {
	if _, ok := skinFiles[k]; !ok {
		return nil, fmt.Errorf("unknown sprite %d", k)
	}
	if t.SkinDir != "" {
		img, err := t.load(k)
		switch {
		case nil == err:
			return img, nil
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, err
		}
	}
	return t.draw(k)
}

func (t *DefaultTheme) load(k Kind) (*image.NRGBA, error) {
	file := filepath.Join(t.SkinDir, skinFiles[k])
	f, err := os.Open(file)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	src, err := png.Decode(f)
	if nil != err {
		return nil, fmt.Errorf("unable to decode %v: %w", file, err)
	}
	logger.L().Debug("loaded skin sprite", "file", file)
	return resize(src, t.size()), nil
}

func resize(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func (t *DefaultTheme) draw(k Kind) (*image.NRGBA, error) {
	size := t.size()
	dc := gg.NewContext(size, size)
	defer dc.Close()

	s := float64(size)
	c := s / 2
	var err error
	switch k {
	case HitCircle, BigCircle:
		// White so the shader tint decides the final color.
		dc.SetFillBrush(gg.NewRadialGradientBrush(c, c, 0, c*0.92).
			AddColorStop(0, gg.RGB(1, 1, 1)).
			AddColorStop(0.8, gg.RGB(1, 1, 1)).
			AddColorStop(1, gg.RGB(0.85, 0.85, 0.85)))
		dc.DrawCircle(c, c, c*0.92)
		err = dc.Fill()
	case HitCircleOverlay, BigCircleOverlay:
		width := s * 0.08
		if k == BigCircleOverlay {
			width = s * 0.06
		}
		dc.SetRGBA(1, 1, 1, 1)
		dc.SetLineWidth(width)
		dc.DrawCircle(c, c, c*0.92-width/2)
		err = dc.Stroke()
	case HitPosition:
		dc.SetRGBA(1, 1, 1, 0.12)
		dc.DrawCircle(c, c, c*0.92)
		if err = dc.Fill(); nil != err {
			break
		}
		dc.SetRGBA(0.8, 0.8, 0.8, 0.9)
		dc.SetLineWidth(s * 0.04)
		dc.DrawCircle(c, c, c*0.9)
		err = dc.Stroke()
	}
	if nil != err {
		return nil, fmt.Errorf("unable to draw %v: %w", k, err)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), dc.Image(), image.Point{}, draw.Src)
	return dst, nil
}
