// internal/assets/rle.go
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var (
	ErrBadHeader = errors.New("rle: bad header")
	ErrCorrupt   = errors.New("rle: run past end of image")
	ErrTruncated = errors.New("rle: image data ends early")
)

const formatRLE2 = 2

// DecodeRLE2 decodes the watch's 2-bit run-length format.
//
// Layout: a 3-byte header [2, width, height], then opcodes. The top two bits
// of an opcode select one of four palette slots, the low six bits are the run
// length. A run of 63 is continued by following bytes, each added to the run,
// until one is below 255. A zero run is an escape: the next byte is an 8-bit
// colour index loaded into slots 1..3 in rotation. Slot 0 is the background
// and decodes as transparent.
func DecodeRLE2(data []byte) (*image.NRGBA, error) {
	if len(data) < 3 || data[0] != formatRLE2 {
		return nil, fmt.Errorf("%w: want format byte %d", ErrBadHeader, formatRLE2)
	}
	w, h := int(data[1]), int(data[2])
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: empty %dx%d image", ErrBadHeader, w, h)
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	palette := [4]uint16{0, 0xfffe, 0x7bef, 0xffff}
	next := 1
	total := w * h
	pos, run, slot := 0, 0, 0

	for _, op := range data[3:] {
		switch {
		case run == 0:
			slot = int(op >> 6)
			run = int(op & 0x3f)
			if run == 0 {
				run = -1
				continue
			}
			if run >= 63 {
				continue
			}
		case run > 0:
			run += int(op)
			if op >= 255 {
				continue
			}
		default:
			palette[next] = clut8RGB565(op)
			next = next%3 + 1
			run = 0
			continue
		}

		if pos+run > total {
			return nil, fmt.Errorf("%w: %d pixels into a %d pixel image", ErrCorrupt, pos+run, total)
		}
		c := color.NRGBA{}
		if slot != 0 {
			c = rgb565ToNRGBA(palette[slot])
		}
		for i := pos; i < pos+run; i++ {
			img.SetNRGBA(i%w, i/w, c)
		}
		pos += run
		run = 0
	}

	if pos != total {
		return nil, fmt.Errorf("%w: got %d of %d pixels", ErrTruncated, pos, total)
	}
	return img, nil
}

// clut8RGB565 maps an 8-bit colour index to RGB565: a 6x6x6 cube, then a
// 3x4x3 pastel block, then four greys.
func clut8RGB565(i byte) uint16 {
	n := int(i)
	var v int
	switch {
	case n < 216:
		v = ((n % 6) * 0x33) >> 3
		rg := n / 6
		v += ((rg % 6) * (0x33 << 3)) & 0x07e0
		v += ((rg / 6) * (0x33 << 8)) & 0xf800
	case n < 252:
		n -= 216
		v = (0x7f + (n%3)*0x33) >> 3
		rg := n / 3
		v += ((0x4c << 3) + (rg%4)*(0x33<<3)) & 0x07e0
		v += ((0x7f << 8) + (rg/4)*(0x33<<8)) & 0xf800
	default:
		n -= 252
		g6 := (0x2c + 0x10*n) >> 2
		g5 := g6 >> 1
		v = (g5 << 11) + (g6 << 5) + g5
	}
	return uint16(v)
}

func rgb565ToNRGBA(v uint16) color.NRGBA {
	r := uint8(v >> 11 & 0x1f)
	g := uint8(v >> 5 & 0x3f)
	b := uint8(v & 0x1f)
	return color.NRGBA{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
		A: 255,
	}
}

// Icon decodes PointCounterIcon.
func Icon() (*image.NRGBA, error) {
	img, err := DecodeRLE2(PointCounterIcon)
	if err != nil {
		return nil, fmt.Errorf("failed to decode launcher icon: %w", err)
	}
	return img, nil
}
