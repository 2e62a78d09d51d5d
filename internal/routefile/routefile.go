// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/waypoint/blob/master/LICENSE.txt.

// Package routefile loads a route table from a YAML document.
//
//	maxParamValueLength: 20
//	placeholder: '\{(.*?)\}'
//	routes:
//	  - key: product-detail
//	    template: /product/{id}
package routefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/tigerwill90/waypoint"
	"gopkg.in/yaml.v3"
)

var ErrInvalidFile = errors.New("invalid route file")

// File is a route table.
type File struct {
	MaxParamValueLength int     `yaml:"maxParamValueLength"`
	Placeholder         string  `yaml:"placeholder"`
	Routes              []Route `yaml:"routes"`
}

type Route struct {
	Key      string `yaml:"key"`
	Template string `yaml:"template"`
}

// Load decodes and validates a route table from r.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	f := new(File)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	if err := f.validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// LoadFile decodes and validates the route table stored at path.
func LoadFile(path string) (*File, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return Load(fd)
}

func (f *File) validate() error {
	if f.MaxParamValueLength < 0 {
		return fmt.Errorf("%w: maxParamValueLength cannot be negative", ErrInvalidFile)
	}

	seen := make(map[string]int, len(f.Routes))
	for i, route := range f.Routes {
		if route.Key == "" {
			return fmt.Errorf("%w: route at index %d has no key", ErrInvalidFile, i)
		}
		if j, ok := seen[route.Key]; ok {
			return fmt.Errorf("%w: route key %q is used at index %d and %d", ErrInvalidFile, route.Key, j, i)
		}
		seen[route.Key] = i
	}
	return nil
}

// Options returns the router options described by the file.
func (f *File) Options() ([]waypoint.Option, error) {
	var opts []waypoint.Option
	if f.MaxParamValueLength > 0 {
		opts = append(opts, waypoint.WithMaxParamValueLength(f.MaxParamValueLength))
	}
	if f.Placeholder != "" {
		re, err := regexp.Compile(f.Placeholder)
		if err != nil {
			return nil, fmt.Errorf("%w: placeholder: %w", ErrInvalidFile, err)
		}
		opts = append(opts, waypoint.WithPlaceholderPattern(re))
	}
	return opts, nil
}

// Build returns a router holding every route of the file. Routes are inserted within a single
// transaction, so the first invalid or ambiguous route fails the whole table. Additional options
// are applied after the ones described by the file.
func (f *File) Build(opts ...waypoint.Option) (*waypoint.Router[string], error) {
	fileOpts, err := f.Options()
	if err != nil {
		return nil, err
	}

	r, err := waypoint.New[string](append(fileOpts, opts...)...)
	if err != nil {
		return nil, err
	}

	err = r.Updates(func(tx *waypoint.Tx[string]) error {
		for _, route := range f.Routes {
			if err := tx.Insert(route.Key, route.Template); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}
