// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromHex(t *testing.T) {
	tests := map[string]color.NRGBA{
		"#000000":   {0, 0, 0, 255},
		"334d4d":    {0x33, 0x4d, 0x4d, 255},
		"#fff":      {255, 255, 255, 255},
		"#f80":      {255, 0x88, 0, 255},
		"#FF000080": {255, 0, 0, 0x80},
		"#40000080": {0x40, 0, 0, 0x80},
	}
	for hex, want := range tests {
		c, err := FromHex(hex)
		assert.NoError(t, err, hex)
		assert.Equal(t, want, c, hex)
	}
	for _, bad := range []string{"", "#12", "#12345", "#gggggg", "red"} {
		_, err := FromHex(bad)
		assert.Error(t, err, bad)
	}
}

func TestFromHexPremultiplied(t *testing.T) {
	c, err := FromHex("#ff000080")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{0x80, 0, 0, 0x80}, color.RGBAModel.Convert(c))
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#334D4D", AsHex(color.RGBA{0x33, 0x4d, 0x4d, 255}))
	assert.Equal(t, "#FF000080", AsHex(color.NRGBA{255, 0, 0, 0x80}))
	assert.Equal(t, "#FF000080", AsHex(color.RGBA{0x80, 0, 0, 0x80}))
	for _, hex := range []string{"#40000080", "#334D4D"} {
		c, err := FromHex(hex)
		assert.NoError(t, err)
		assert.Equal(t, hex, AsHex(c))
	}
}
