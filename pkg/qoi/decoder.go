package qoi

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

func init() {
	image.RegisterFormat("qoi", Magic,
		func(r io.Reader) (image.Image, error) { return Decode(r) },
		DecodeConfig,
	)
}

// decoder is the running state shared by every chunk of a stream: the 64-slot
// pixel cache, the last emitted pixel and the remainder of an open run.
type decoder struct {
	r     io.Reader
	buf   [4]byte
	cache [cacheSize]color.NRGBA
	last  color.NRGBA
	run   int
}

func newDecoder(r io.Reader) *decoder {
	return &decoder{
		r:    r,
		last: color.NRGBA{A: 255},
	}
}

// next produces exactly one pixel. While a run is open it emits the last
// pixel again without consuming stream bytes; otherwise it reads one control
// byte and dispatches on it. The literal opcodes share their top two bits
// with OpRun, so they are matched first.
func (d *decoder) next() (color.NRGBA, error) {
	if d.run > 0 {
		d.run--
		return d.last, nil
	}

	if err := d.read(d.buf[:1]); err != nil {
		return color.NRGBA{}, err
	}

	var px color.NRGBA
	switch op := d.buf[0]; {
	case op == OpRgb:
		if err := d.read(d.buf[:3]); err != nil {
			return color.NRGBA{}, err
		}
		// the alpha value carries over from the previous pixel
		px = color.NRGBA{R: d.buf[0], G: d.buf[1], B: d.buf[2], A: d.last.A}
		d.cache[hashPixel(px)] = px
	case op == OpRgba:
		if err := d.read(d.buf[:4]); err != nil {
			return color.NRGBA{}, err
		}
		px = color.NRGBA{R: d.buf[0], G: d.buf[1], B: d.buf[2], A: d.buf[3]}
		d.cache[hashPixel(px)] = px
	case op&opMask == OpIndex:
		// the pixel came from the cache, no need to write it back
		px = d.cache[op&mask6]
	case op&opMask == OpDiff:
		// each delta is stored with a bias of 2
		px = color.NRGBA{
			R: d.last.R + (op>>4)&0b11 - 2,
			G: d.last.G + (op>>2)&0b11 - 2,
			B: d.last.B + (op>>0)&0b11 - 2,
			A: d.last.A,
		}
		d.cache[hashPixel(px)] = px
	case op&opMask == OpLuma:
		if err := d.read(d.buf[:1]); err != nil {
			return color.NRGBA{}, err
		}
		dg := op&mask6 - 32
		px = color.NRGBA{
			R: d.last.R + (d.buf[0]>>4)&mask4 - 8 + dg,
			G: d.last.G + dg,
			B: d.last.B + (d.buf[0]>>0)&mask4 - 8 + dg,
			A: d.last.A,
		}
		d.cache[hashPixel(px)] = px
	case op&opMask == OpRun:
		// run length is stored with a bias of -1; this call emits the first
		// pixel, the remainder is drained on the following calls
		d.run = int(op & mask6)
		px = d.last
	default:
		// unreachable, the cases above partition the byte space
		return color.NRGBA{}, fmt.Errorf("%w: control byte %#08b", ErrUnknownChunk, op)
	}

	d.last = px
	return px, nil
}

func (d *decoder) read(buf []byte) error {
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return fmt.Errorf("%w: chunk: %v", ErrShortRead, err)
	}
	return nil
}

// Decode reads a QuiteOk image from the reader: the 14-byte header followed
// by one chunk stream entry per pixel in row-major order. Decoding stops
// after width*height pixels; the end-of-stream marker is left unread. Any
// error aborts the whole decode and no image is returned.
func Decode(r io.Reader) (*Image, error) {
	header, err := decodeHeader(r)
	if err != nil {
		return nil, err
	}

	img := newImage(header)
	d := newDecoder(r)
	for row := 0; row < int(header.Height); row++ {
		for col := 0; col < int(header.Width); col++ {
			px, err := d.next()
			if err != nil {
				return nil, fmt.Errorf("pixel (%d, %d): %w", row, col, err)
			}
			img.Set(row, col, px)
		}
	}
	return img, nil
}
