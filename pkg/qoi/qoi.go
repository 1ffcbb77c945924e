package qoi

import (
	"errors"
	"image/color"
)

// A list of opcodes used in the chunk stream. They specify how the bytes are
// encoded. The two literal opcodes occupy the top of the OpRun range and must
// be matched before the 2-bit opcodes.
const (
	OpRgb   = byte(0b11111110)
	OpRgba  = byte(0b11111111)
	OpIndex = byte(0b00000000)
	OpDiff  = byte(0b01000000)
	OpLuma  = byte(0b10000000)
	OpRun   = byte(0b11000000)

	// opMask is the mask for 2-bit op codes
	opMask = byte(0b11000000)
	mask6  = byte(0b00111111)
	mask4  = byte(0b00001111)

	// Magic is the magic code used for files of the QuiteOk image format.
	Magic = "qoif"

	headerSize = 14
	cacheSize  = 64
)

var (
	ErrBadMagic     = errors.New("bad magic")
	ErrShortRead    = errors.New("short read")
	ErrUnknownChunk = errors.New("unknown chunk")
)

// hashPixel maps a pixel to its cache slot. It is a number between 0 and 63.
// Computed in int arithmetic; uint8 arithmetic picks the same slot for every
// pixel because 64 divides 256 (see TestHashPixelWraparound).
func hashPixel(px color.NRGBA) int {
	return (int(px.R)*3 + int(px.G)*5 + int(px.B)*7 + int(px.A)*11) % cacheSize
}
