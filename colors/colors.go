// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors parses and formats the hex colors used
// in configuration files and flags.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/glsample/base/errors"
)

// FromHex parses the given hex color string, with or without a
// leading #, in the #rgb, #rrggbb or #rrggbbaa forms. Hex colors
// are not premultiplied, so the result is a [color.NRGBA].
func FromHex(hex string) (color.NRGBA, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	var r, g, b, a int
	a = 255
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.NRGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	return color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// AsHex returns the color as a standard 2-hexadecimal-digits-per-component
// string, with the alpha component only included if it is not 255.
// The components are not premultiplied, as in [FromHex].
func AsHex(c color.Color) string {
	r := color.NRGBAModel.Convert(c).(color.NRGBA)
	if r.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
}
