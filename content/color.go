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

package content

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a fill or stroke color in one of the PDF device color spaces.
// setFill/setStroke return the bare content-stream operator (no trailing
// newline); Stream.SetFillColor/SetStrokeColor append it.
type Color interface {
	setFill() string
	setStroke() string
}

type gray float64

// Gray returns a /DeviceGray color; g must be in [0,1].
func Gray(g float64) Color { return gray(g) }

func (c gray) setFill() string   { return fmt.Sprintf("%s g", formatComponent(float64(c))) }
func (c gray) setStroke() string { return fmt.Sprintf("%s G", formatComponent(float64(c))) }

type rgb struct{ r, g, b float64 }

// RGB returns a /DeviceRGB color; each component must be in [0,1].
func RGB(r, g, b float64) Color { return rgb{r, g, b} }

func (c rgb) setFill() string {
	return fmt.Sprintf("%s %s %s rg", formatComponent(c.r), formatComponent(c.g), formatComponent(c.b))
}

func (c rgb) setStroke() string {
	return fmt.Sprintf("%s %s %s RG", formatComponent(c.r), formatComponent(c.g), formatComponent(c.b))
}

type cmyk struct{ c, m, y, k float64 }

// CMYK returns a /DeviceCMYK color; each component must be in [0,1].
func CMYK(c, m, y, k float64) Color { return cmyk{c, m, y, k} }

func (c cmyk) setFill() string {
	return fmt.Sprintf("%s %s %s %s k", formatComponent(c.c), formatComponent(c.m), formatComponent(c.y), formatComponent(c.k))
}

func (c cmyk) setStroke() string {
	return fmt.Sprintf("%s %s %s %s K", formatComponent(c.c), formatComponent(c.m), formatComponent(c.y), formatComponent(c.k))
}

func formatComponent(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-0" {
		s = "0"
	}
	return s
}

var namedColors = map[string]Color{
	"red":   RGB(1, 0, 0),
	"green": RGB(0, 0.5, 0),
	"blue":  RGB(0, 0, 1),
	"black": Gray(0),
	"white": Gray(1),
	"gold":  RGB(1, 0.843, 0),
}

// ParseColor accepts "#RGB", "#RRGGBB", one of the named colors (red,
// green, blue, black, white, gold), or "cmyk(c%, m%, y%, k%)". An invalid
// input resolves to (nil, false) rather than an error: the
// caller leaves the inherited color state in place.
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}

	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, true
	}
	if strings.HasPrefix(strings.ToLower(s), "cmyk(") && strings.HasSuffix(s, ")") {
		return parseCMYKFunc(s[5 : len(s)-1])
	}
	return nil, false
}

func parseHexColor(hex string) (Color, bool) {
	expand := func(c byte) (byte, bool) {
		v, err := strconv.ParseUint(string(c), 16, 8)
		if err != nil {
			return 0, false
		}
		return byte(v)*17, true // e.g. 'f' -> 0xff
	}

	switch len(hex) {
	case 3:
		r, ok1 := expand(hex[0])
		g, ok2 := expand(hex[1])
		b, ok3 := expand(hex[2])
		if !ok1 || !ok2 || !ok3 {
			return nil, false
		}
		return RGB(float64(r)/255, float64(g)/255, float64(b)/255), true
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, false
		}
		r := float64((v>>16)&0xff) / 255
		g := float64((v>>8)&0xff) / 255
		b := float64(v&0xff) / 255
		return RGB(r, g, b), true
	default:
		return nil, false
	}
}

func parseCMYKFunc(args string) (Color, bool) {
	parts := strings.Split(args, ",")
	if len(parts) != 4 {
		return nil, false
	}
	var vals [4]float64
	for i, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.TrimSuffix(p, "%")
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, false
		}
		vals[i] = v / 100
	}
	return CMYK(vals[0], vals[1], vals[2], vals[3]), true
}
