// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type inner struct {
	Level int `default:"3"`
}

type defaults struct {
	Name    string    `default:"triangle"`
	On      bool      `default:"true"`
	Count   int       `default:"0x10"`
	Rate    float64   `default:"2.5"`
	Offset  []float32 `default:"0.5, 0 1"`
	NoTag   int
	Inner   inner
	private int `default:"9"`
}

func TestSetFromDefaultTags(t *testing.T) {
	d := &defaults{NoTag: 7}
	assert.NoError(t, SetFromDefaultTags(d))
	assert.Equal(t, "triangle", d.Name)
	assert.True(t, d.On)
	assert.Equal(t, 16, d.Count)
	assert.Equal(t, 2.5, d.Rate)
	assert.Equal(t, []float32{0.5, 0, 1}, d.Offset)
	assert.Equal(t, 7, d.NoTag)
	assert.Equal(t, 3, d.Inner.Level)
	assert.Equal(t, 0, d.private)

	assert.Error(t, SetFromDefaultTags(defaults{}))
	assert.NoError(t, SetFromDefaultTags(nil))
}

func TestSetFromDefaultTagsError(t *testing.T) {
	type bad struct {
		A int     `default:"x"`
		B float32 `default:"y"`
	}
	err := SetFromDefaultTags(&bad{})
	assert.ErrorContains(t, err, "field A")
	assert.ErrorContains(t, err, "field B")
}

func TestSetFromString(t *testing.T) {
	var u uint8
	assert.NoError(t, SetFromString(reflect.ValueOf(&u).Elem(), "200"))
	assert.Equal(t, uint8(200), u)
	assert.Error(t, SetFromString(reflect.ValueOf(&u).Elem(), "300"))

	var m map[string]int
	assert.ErrorContains(t, SetFromString(reflect.ValueOf(&m).Elem(), "a"), "unsupported kind")

	var sl []int
	assert.ErrorContains(t, SetFromString(reflect.ValueOf(&sl).Elem(), "1 a"), "element 1")

	assert.Equal(t, []string{"1", "2", "3"}, SplitList(" 1, 2\t3 "))
	assert.Empty(t, SplitList(""))
}
