// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"flag"
	"fmt"
	"reflect"
	"strings"

	"cogentcore.org/glsample/base/reflectx"
	"github.com/mitchellh/go-homedir"
)

// AddFlags adds a flag to the given flag set for every field of the
// given struct pointer that has a `flag:` struct tag, using the
// `desc:` tag as the usage. The flags set the fields directly.
func AddFlags(fs *flag.FlagSet, cfg any) {
	val := reflectx.NonPointerValue(reflect.ValueOf(cfg))
	typ := val.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		name, ok := f.Tag.Lookup("flag")
		if !ok || name == "" {
			continue
		}
		fs.Var(&fieldValue{val.Field(i)}, name, f.Tag.Get("desc"))
	}
}

// fieldValue is a [flag.Value] for a struct field.
type fieldValue struct {
	v reflect.Value
}

func (f *fieldValue) String() string {
	if !f.v.IsValid() {
		return ""
	}
	if f.v.Kind() == reflect.Slice {
		s := make([]string, f.v.Len())
		for i := range s {
			s[i] = fmt.Sprint(f.v.Index(i).Interface())
		}
		return strings.Join(s, " ")
	}
	return fmt.Sprint(f.v.Interface())
}

func (f *fieldValue) Set(s string) error {
	return reflectx.SetFromString(f.v, s)
}

func (f *fieldValue) IsBoolFlag() bool {
	return f.v.IsValid() && f.v.Kind() == reflect.Bool
}

// Load returns the config for the given command line arguments
// (without the program name). The defaults are set first, then the
// config file named by the -config flag, if any, and then the flags,
// which override the config file. A single positional argument
// selects the sample. Paths are expanded and the result is validated.
func Load(name string, args []string) (*Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	AddFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.Config != "" {
		file, err := homedir.Expand(cfg.Config)
		if err != nil {
			return nil, err
		}
		if err := Open(cfg, file); err != nil {
			return nil, err
		}
		// flags override the config file
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}
	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Sample = fs.Arg(0)
	default:
		return nil, fmt.Errorf("config.Load: expected at most one sample name argument, not %v", fs.Args())
	}
	if err := cfg.ExpandPaths(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
