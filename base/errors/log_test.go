// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("boom")
	assert.Equal(t, err, Log(err))
	assert.Equal(t, 3, Log1(3, err))
	assert.Equal(t, "x", Log1("x", nil))
}

func TestMust(t *testing.T) {
	assert.Equal(t, 2, Must1(2, nil))
	assert.Panics(t, func() { Must1(2, New("boom")) })
}

func TestWrapping(t *testing.T) {
	base := New("base")
	wrapped := fmt.Errorf("outer: %w", base)
	assert.True(t, Is(wrapped, base))
	assert.Equal(t, base, Unwrap(wrapped))
	joined := Join(nil, base, nil)
	assert.True(t, Is(joined, base))
	assert.Nil(t, Join(nil, nil))
}
