// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import "github.com/go-gl/glfw/v3.3/glfw"

// IsQuitKey returns whether the given key event requests
// the application to quit: a press of the Escape key.
func IsQuitKey(key glfw.Key, action glfw.Action) bool {
	return key == glfw.KeyEscape && action == glfw.Press
}
