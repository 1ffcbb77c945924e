// Package pnm writes images as binary pixmaps (PNM type P6).
package pnm

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// Encode writes the image to the writer as a binary pixmap: a text header
// with the dimensions and the maximum channel value, followed by one red,
// green and blue byte per pixel in row-major order. The alpha channel is
// dropped.
func Encode(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}

	rgb := make([]byte, 3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			rgb[0], rgb[1], rgb[2] = px.R, px.G, px.B
			if _, err := bw.Write(rgb); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
