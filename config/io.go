// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/glsample/base/iox/tomlx"
	"cogentcore.org/glsample/base/iox/yamlx"
)

// Open reads the given config object from the given file,
// using toml or yaml depending on the file extension.
func Open(cfg any, file string) error {
	switch ext(file) {
	case ".toml":
		return tomlx.Open(cfg, file)
	case ".yaml", ".yml":
		return yamlx.Open(cfg, file)
	}
	return fmt.Errorf("config.Open: unsupported config file type %q; must be .toml or .yaml", file)
}

// Save writes the given config object to the given file,
// using toml or yaml depending on the file extension.
func Save(cfg any, file string) error {
	switch ext(file) {
	case ".toml":
		return tomlx.Save(cfg, file)
	case ".yaml", ".yml":
		return yamlx.Save(cfg, file)
	}
	return fmt.Errorf("config.Save: unsupported config file type %q; must be .toml or .yaml", file)
}

func ext(file string) string {
	return strings.ToLower(filepath.Ext(file))
}
