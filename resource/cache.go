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
	"crypto/sha256"
	"fmt"
	"math"

	"github.com/paperglyph/pdfkit/pdfobj"
)

type entry struct {
	ref  pdfobj.Reference
	name string
}

// ShadingKind distinguishes axial (linear) from radial gradients.
type ShadingKind int

const (
	ShadingAxial ShadingKind = iota
	ShadingRadial
)

// Stop is one gradient color stop.
type Stop struct {
	Offset   float64
	R, G, B float64
}

type shadingKey struct {
	kind   ShadingKind
	coords [6]float64
	stops  string
}

// Cache interns images, shadings and ExtGStates for a single document.
// Create one with NewCache: the zero value has no maps or decoder, and its
// Add methods panic.
type Cache struct {
	decoder PNGDecoder

	images   map[string]entry // keyed by sha256 of the source bytes
	shadings map[shadingKey]entry
	opacity  map[int]entry // keyed by opacity rounded to whole percent

	imageCount   int
	shadingCount int
	gsCount      int
}

// NewCache returns a cache using decoder to inspect PNG bytes. Pass nil to
// use DefaultPNGDecoder.
func NewCache(decoder PNGDecoder) *Cache {
	if decoder == nil {
		decoder = DefaultPNGDecoder{}
	}
	return &Cache{
		decoder:  decoder,
		images:   make(map[string]entry),
		shadings: make(map[shadingKey]entry),
		opacity:  make(map[int]entry),
	}
}

// AddPNG interns a PNG image. Adding the same bytes twice returns the same
// name. If the image has an alpha channel, a second /DeviceGray soft-mask
// stream is written and referenced from the main image's /SMask.
func (c *Cache) AddPNG(w pdfobj.Writer, data []byte) (string, error) {
	hash := contentHash(data)
	if e, ok := c.images[hash]; ok {
		return e.name, nil
	}

	img, err := c.decoder.Decode(data)
	if err != nil {
		return "", &pdfobj.Error{Kind: pdfobj.KindImageDecode, Op: "resource.Cache.AddPNG", Err: err}
	}

	dict := pdfobj.Dict{
		"Type":             pdfobj.Name("XObject"),
		"Subtype":          pdfobj.Name("Image"),
		"Width":            pdfobj.Integer(img.Width),
		"Height":           pdfobj.Integer(img.Height),
		"ColorSpace":       pdfobj.Name("DeviceRGB"),
		"BitsPerComponent": pdfobj.Integer(8),
	}

	if img.Alpha != nil {
		smaskRef := w.Alloc()
		w.AddStream(smaskRef, pdfobj.Dict{
			"Type":             pdfobj.Name("XObject"),
			"Subtype":          pdfobj.Name("Image"),
			"Width":            pdfobj.Integer(img.Width),
			"Height":           pdfobj.Integer(img.Height),
			"ColorSpace":       pdfobj.Name("DeviceGray"),
			"BitsPerComponent": pdfobj.Integer(8),
		}, img.Alpha, false)
		dict["SMask"] = smaskRef
	}

	ref := w.AddStream(0, dict, img.RGB, false)

	c.imageCount++
	name := fmt.Sprintf("I%d", c.imageCount)
	c.images[hash] = entry{ref: ref, name: name}
	return name, nil
}

// AddJPEG interns a JPEG image verbatim, embedding it with /DCTDecode
// rather than deflating the already-compressed body again.
func (c *Cache) AddJPEG(w pdfobj.Writer, data []byte, width, height int) (string, error) {
	hash := contentHash(data)
	if e, ok := c.images[hash]; ok {
		return e.name, nil
	}

	ref := w.AddStream(0, pdfobj.Dict{
		"Type":             pdfobj.Name("XObject"),
		"Subtype":          pdfobj.Name("Image"),
		"Width":            pdfobj.Integer(width),
		"Height":           pdfobj.Integer(height),
		"ColorSpace":       pdfobj.Name("DeviceRGB"),
		"BitsPerComponent": pdfobj.Integer(8),
		"Filter":           pdfobj.Name("DCTDecode"),
	}, data, true)

	c.imageCount++
	name := fmt.Sprintf("I%d", c.imageCount)
	c.images[hash] = entry{ref: ref, name: name}
	return name, nil
}

// AddShading interns an axial or radial gradient by (kind, coords, stops).
func (c *Cache) AddShading(w pdfobj.Writer, kind ShadingKind, coords []float64, stops []Stop) string {
	key := shadingKeyOf(kind, coords, stops)
	if e, ok := c.shadings[key]; ok {
		return e.name
	}

	functionRef := w.Alloc()
	w.AddDict(functionRef, stitchingFunction(stops))

	shType := pdfobj.Integer(2)
	if kind == ShadingRadial {
		shType = pdfobj.Integer(3)
	}
	coordArr := make(pdfobj.Array, len(coords))
	for i, v := range coords {
		coordArr[i] = pdfobj.Real(v)
	}

	ref := w.AddDict(0, pdfobj.Dict{
		"ShadingType": shType,
		"ColorSpace":  pdfobj.Name("DeviceRGB"),
		"Coords":      coordArr,
		"Function":    functionRef,
		"Extend":      pdfobj.Array{pdfobj.Boolean(true), pdfobj.Boolean(true)},
	})

	c.shadingCount++
	name := fmt.Sprintf("SH%d", c.shadingCount)
	c.shadings[key] = entry{ref: ref, name: name}
	return name
}

// AddOpacity interns a single ExtGState per opacity value rounded to a
// whole percent, with both ca (fill alpha) and CA (stroke alpha) set.
func (c *Cache) AddOpacity(w pdfobj.Writer, opacity float64) string {
	pct := int(math.Round(opacity * 100))
	if e, ok := c.opacity[pct]; ok {
		return e.name
	}

	alpha := float64(pct) / 100
	ref := w.AddDict(0, pdfobj.Dict{
		"Type": pdfobj.Name("ExtGState"),
		"ca":   pdfobj.Real(alpha),
		"CA":   pdfobj.Real(alpha),
	})

	c.gsCount++
	name := fmt.Sprintf("GS%d", pct)
	c.opacity[pct] = entry{ref: ref, name: name}
	return name
}

// RefByName looks up the indirect reference behind a name previously
// returned by AddPNG, AddJPEG, AddShading or AddOpacity, so a caller
// assembling a page's /Resources dictionary can resolve the names it
// collected from the content stream back to objects.
func (c *Cache) RefByName(name string) (pdfobj.Reference, bool) {
	for _, e := range c.images {
		if e.name == name {
			return e.ref, true
		}
	}
	for _, e := range c.shadings {
		if e.name == name {
			return e.ref, true
		}
	}
	for _, e := range c.opacity {
		if e.name == name {
			return e.ref, true
		}
	}
	return 0, false
}

func contentHash(data []byte) string {
	h := sha256.Sum256(data)
	return string(h[:])
}

func shadingKeyOf(kind ShadingKind, coords []float64, stops []Stop) shadingKey {
	var c [6]float64
	copy(c[:], coords)

	var sb []byte
	for _, s := range stops {
		sb = fmt.Appendf(sb, "%g:%g,%g,%g;", s.Offset, s.R, s.G, s.B)
	}
	return shadingKey{kind: kind, coords: c, stops: string(sb)}
}

// stitchingFunction builds a /FunctionType 3 stitching function across the
// stop list's sampled type-2 exponential pieces, the conventional way to
// express a multi-stop PDF gradient.
func stitchingFunction(stops []Stop) pdfobj.Dict {
	if len(stops) < 2 {
		// Degenerate gradient: a single constant color everywhere.
		var r, g, b float64
		if len(stops) == 1 {
			r, g, b = stops[0].R, stops[0].G, stops[0].B
		}
		return pdfobj.Dict{
			"FunctionType": pdfobj.Integer(2),
			"Domain":       pdfobj.Array{pdfobj.Real(0), pdfobj.Real(1)},
			"C0":           pdfobj.Array{pdfobj.Real(r), pdfobj.Real(g), pdfobj.Real(b)},
			"C1":           pdfobj.Array{pdfobj.Real(r), pdfobj.Real(g), pdfobj.Real(b)},
			"N":            pdfobj.Integer(1),
		}
	}

	functions := make(pdfobj.Array, 0, len(stops)-1)
	bounds := make(pdfobj.Array, 0, len(stops)-2)
	encode := make(pdfobj.Array, 0, 2*(len(stops)-1))
	for i := 0; i < len(stops)-1; i++ {
		a, b := stops[i], stops[i+1]
		functions = append(functions, pdfobj.Dict{
			"FunctionType": pdfobj.Integer(2),
			"Domain":       pdfobj.Array{pdfobj.Real(0), pdfobj.Real(1)},
			"C0":           pdfobj.Array{pdfobj.Real(a.R), pdfobj.Real(a.G), pdfobj.Real(a.B)},
			"C1":           pdfobj.Array{pdfobj.Real(b.R), pdfobj.Real(b.G), pdfobj.Real(b.B)},
			"N":            pdfobj.Integer(1),
		})
		encode = append(encode, pdfobj.Real(0), pdfobj.Real(1))
		if i < len(stops)-2 {
			bounds = append(bounds, pdfobj.Real(b.Offset))
		}
	}

	return pdfobj.Dict{
		"FunctionType": pdfobj.Integer(3),
		"Domain":       pdfobj.Array{pdfobj.Real(0), pdfobj.Real(1)},
		"Functions":    functions,
		"Bounds":       bounds,
		"Encode":       encode,
	}
}
