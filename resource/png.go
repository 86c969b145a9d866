// Copyright 2026 The pdfkit Authors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package resource

import (
	"bytes"
	"image"
	"image/png"
)

// DecodedImage is the collaborator output a PNG decode needs to produce: RGB pixels
// plus an optional alpha plane, both tightly packed and row-major.
type DecodedImage struct {
	Width, Height int
	RGB           []byte // 3 bytes/pixel
	Alpha         []byte // 1 byte/pixel, nil if the source has no alpha
}

// PNGDecoder is the external collaborator described as
// "parse(bytes) -> { width, height, bit_depth, color_type, rgb_pixels,
// alpha_pixels? }". The core only ever consumes RGB + optional alpha;
// palette and grayscale inputs are converted to that pair by the decoder,
// per the "PNG palette and grayscale+alpha" design note.
type PNGDecoder interface {
	Decode(data []byte) (DecodedImage, error)
}

// DefaultPNGDecoder implements PNGDecoder with the standard library's
// image/png, converting whatever color model it reports to RGB(+A).
type DefaultPNGDecoder struct{}

func (DefaultPNGDecoder) Decode(data []byte) (DecodedImage, error) {
	var img image.Image
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return DecodedImage{}, err
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rgb := make([]byte, 0, w*h*3)

	_, hasAlpha := img.(interface{ Opaque() bool })
	opaque := true
	if hasAlpha {
		opaque = img.(interface{ Opaque() bool }).Opaque()
	}

	var alpha []byte
	if !opaque {
		alpha = make([]byte, 0, w*h)
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			rgb = append(rgb, byte(r>>8), byte(g>>8), byte(bl>>8))
			if alpha != nil {
				alpha = append(alpha, byte(a>>8))
			}
		}
	}

	return DecodedImage{Width: w, Height: h, RGB: rgb, Alpha: alpha}, nil
}
