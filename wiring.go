// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alusim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// W is a set of wires, connecting a part's I/O pins (the map key) to signals
// in its container.
//
type W map[string]*Signal

// Bus connects the pins name[0], name[1], ... to the signals of b and
// returns w.
//
func (w W) Bus(name string, b Bus) W {
	for i, s := range b {
		w[BusPinName(name, i)] = s
	}
	return w
}

// IO expands a pin specification string like "a, b, in[8]" to individual pin
// names: []string{"a", "b", "in[0]", ..., "in[7]"}.
//
// It panics if the specification is malformed. Use ParseIO to get an error
// instead.
//
func IO(spec string) []string {
	names, err := ParseIO(spec)
	if err != nil {
		panic(err)
	}
	return names
}

// ParseIO parses the pin specification string and returns individual pin
// names in a slice, also expanding bus declarations to individual pin names.
//
func ParseIO(spec string) ([]string, error) {
	var out []string
	for pos, f := range strings.Split(spec, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			if pos == 0 && strings.TrimSpace(spec) == "" {
				return nil, nil
			}
			return nil, errors.Errorf("in %q: empty pin name at field %d", spec, pos+1)
		}
		i := strings.IndexRune(f, '[')
		if i < 0 {
			out = append(out, f)
			continue
		}
		name := f[:i]
		if name == "" {
			return nil, errors.Errorf("in %q: empty bus name at field %d", spec, pos+1)
		}
		if !strings.HasSuffix(f, "]") {
			return nil, errors.Errorf("in %q: missing close bracket at field %d", spec, pos+1)
		}
		n, err := strconv.Atoi(f[i+1 : len(f)-1])
		if err != nil {
			return nil, errors.Wrapf(err, "in %q: bad bus size at field %d", spec, pos+1)
		}
		if n < 1 {
			return nil, errors.Wrapf(ErrInvalidWidth, "in %q: bus %s", spec, name)
		}
		for j := 0; j < n; j++ {
			out = append(out, BusPinName(name, j))
		}
	}
	return out, nil
}
