package qoi

import (
	"fmt"
	"image"
	"image/color"
)

// Image is the decoded pixel grid of a QuiteOk image. Pixels are stored in
// row-major order. It implements the image.Image interface.
type Image struct {
	header Header
	pixels []color.NRGBA
}

// Header is the header data of a QuiteOk image. Channels and colorspace are
// carried through from the stream but not interpreted by the decoder.
type Header struct {
	Width      uint32
	Height     uint32
	Channels   uint8
	Colorspace uint8
}

func newImage(header Header) *Image {
	return &Image{
		header: header,
		pixels: make([]color.NRGBA, uint64(header.Width)*uint64(header.Height)),
	}
}

// Header returns the header the image was decoded from.
func (img *Image) Header() Header {
	return img.header
}

// Get returns the pixel at the given position. Calling it with row >= height
// or col >= width is a programming error and panics.
func (img *Image) Get(row, col int) color.NRGBA {
	img.check(row, col)
	return img.pixels[row*int(img.header.Width)+col]
}

// Set overwrites the pixel at the given position. Calling it with
// row >= height or col >= width is a programming error and panics.
func (img *Image) Set(row, col int, px color.NRGBA) {
	img.check(row, col)
	img.pixels[row*int(img.header.Width)+col] = px
}

func (img *Image) check(row, col int) {
	if row < 0 || row >= int(img.header.Height) || col < 0 || col >= int(img.header.Width) {
		panic(fmt.Sprintf("qoi: pixel (%d, %d) out of bounds %dx%d",
			row, col, img.header.Width, img.header.Height))
	}
}

func (img *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rectangle{
		Min: image.Point{},
		Max: image.Point{
			X: int(img.header.Width),
			Y: int(img.header.Height),
		},
	}
}

func (img *Image) At(x, y int) color.Color {
	return img.pixels[y*int(img.header.Width)+x]
}
