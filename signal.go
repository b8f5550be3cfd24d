// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alusim

// A Signal is a wire carrying a single boolean value.
//
// A Signal has no history and no notion of being driven: Set overwrites the
// current value unconditionally, last write wins.
//
type Signal struct {
	name string
	v    bool
}

// NewSignal returns a new signal with the given name, initially false.
//
func NewSignal(name string) *Signal {
	return &Signal{name: name}
}

// Name returns the signal name.
//
func (s *Signal) Name() string { return s.name }

// Get returns the last value set on s.
//
func (s *Signal) Get() bool { return s.v }

// Set sets the value of s.
//
func (s *Signal) Set(v bool) { s.v = v }

func (s *Signal) String() string {
	if s.v {
		return s.name + "=1"
	}
	return s.name + "=0"
}
