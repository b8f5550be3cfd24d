// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alusim

// A Socket maps a part's pin names to the signals they are connected to.
//
type Socket struct {
	m W
}

func newSocket(w W) *Socket {
	return &Socket{m: w}
}

// Pin returns the signal connected to the given pin name.
// This function panics if the pin does not exist.
//
func (s *Socket) Pin(name string) *Signal {
	n, ok := s.m[name]
	if !ok {
		panic("pin " + name + " does not exist")
	}
	return n
}

// Bus returns the signals connected to pins name[0] through name[width-1].
// This function panics if any of these pins does not exist.
//
func (s *Socket) Bus(name string, width int) Bus {
	out := make(Bus, width)
	for i := range out {
		out[i] = s.Pin(BusPinName(name, i))
	}
	return out
}
