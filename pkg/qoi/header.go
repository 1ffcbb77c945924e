package qoi

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"io"
)

// decodeHeader reads the 14 header bytes and leaves the reader positioned at
// the first chunk byte. Width and height are stored big-endian in the stream.
func decodeHeader(r io.Reader) (Header, error) {
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Header{}, fmt.Errorf("%w: header: %v", ErrShortRead, err)
	}
	if string(buf[:4]) != Magic {
		return Header{}, fmt.Errorf("%w: expected %q, actual %q", ErrBadMagic, Magic, string(buf[:4]))
	}
	return Header{
		Width:      binary.BigEndian.Uint32(buf[4:8]),
		Height:     binary.BigEndian.Uint32(buf[8:12]),
		Channels:   buf[12],
		Colorspace: buf[13],
	}, nil
}

// DecodeConfig returns the dimensions and color model of a QuiteOk image
// without decoding the pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	header, err := decodeHeader(r)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		Width:      int(header.Width),
		Height:     int(header.Height),
		ColorModel: color.NRGBAModel,
	}, nil
}
