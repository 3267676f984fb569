package huffman

import (
	"errors"
	"fmt"
)

var ErrTruncated = errors.New("huffman: encoded stream cut short mid-code")

// Encode concatenates each input byte's code, MSB-first, and zero-pads
// the last byte. padding is how many filler bits were appended, 0-7.
// Every input byte has a code when codes came from the same data's
// histogram; a missing one is a caller bug, not an input problem.
func Encode(data []byte, codes *[256]Code) (payload []byte, padding int) {
	payload = make([]byte, 0, len(data)/2+1)
	var acc byte
	width := 0
	for _, b := range data {
		c := codes[b]
		if c.Len == 0 {
			panic(fmt.Sprintf("huffman: no code for byte %#02x", b))
		}
		for i := int(c.Len) - 1; i >= 0; i-- {
			acc = acc<<1 | byte(c.Bits>>i)&1
			width++
			if width == 8 {
				payload = append(payload, acc)
				acc, width = 0, 0
			}
		}
	}
	if width > 0 {
		padding = 8 - width
		payload = append(payload, acc<<padding)
	}
	return payload, padding
}

// Decode walks the tree one bit at a time, zero branch left, emitting a
// symbol and restarting at the root whenever a leaf is reached. The
// last padding bits of payload are filler and are not consumed.
//
// The stream is malformed if it runs out mid-walk or if the number of
// decoded bytes disagrees with the histogram the tree was built from
// (a whole number of walks can still survive a truncated payload).
func (t *Tree) Decode(payload []byte, padding int) ([]byte, error) {
	nbits := len(payload)*8 - padding
	out := make([]byte, 0, t.total)

	if t.nodes[t.root].zero < 0 {
		// Sole symbol, one bit each; there is no branch to follow.
		sym := t.nodes[t.root].sym
		for i := 0; i < nbits; i++ {
			out = append(out, sym)
		}
		if uint64(len(out)) != t.total {
			return nil, ErrTruncated
		}
		return out, nil
	}

	n := t.root
	for i := 0; i < nbits; i++ {
		if payload[i>>3]>>(7-i&7)&1 == 0 {
			n = t.nodes[n].zero
		} else {
			n = t.nodes[n].one
		}
		if t.nodes[n].zero < 0 {
			out = append(out, t.nodes[n].sym)
			n = t.root
		}
	}
	if n != t.root || uint64(len(out)) != t.total {
		return nil, ErrTruncated
	}
	return out, nil
}
