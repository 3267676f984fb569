// Package container reads and writes the compressed file format:
//
//	u16   frequency table entry count
//	(u8 symbol, u32 count) per entry, ascending by symbol
//	u8    padding bit count, 0-7
//	packed payload bytes until end of file
//
// All multi-byte integers are little-endian. Entries are written in
// ascending symbol order so that the same input always produces a
// byte-identical file.
package container

import (
	"encoding/binary"
	"errors"
)

var (
	ErrFormat  = errors.New("container: not a valid compressed file")
	ErrPadding = errors.New("container: padding length out of range")
)

const entrySize = 1 + 4

// Marshal serializes the histogram's non-zero entries and the packed
// payload into a single buffer ready to hit the disk.
func Marshal(hist *[256]uint32, payload []byte, padding int) []byte {
	entries := 0
	for _, count := range hist {
		if count != 0 {
			entries++
		}
	}
	buf := make([]byte, 0, 2+entries*entrySize+1+len(payload))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(entries))
	for sym, count := range hist {
		if count == 0 {
			continue
		}
		buf = append(buf, byte(sym))
		buf = binary.LittleEndian.AppendUint32(buf, count)
	}
	buf = append(buf, byte(padding))
	return append(buf, payload...)
}

// Unmarshal parses a compressed file. The header is validated before
// any payload byte is interpreted; the individual counts are trusted
// as written. payload aliases file rather than copying it.
func Unmarshal(file []byte) (hist [256]uint32, payload []byte, padding int, err error) {
	if len(file) < 2 {
		err = ErrFormat
		return
	}
	entries := int(binary.LittleEndian.Uint16(file))
	file = file[2:]
	if entries > 256 || len(file) < entries*entrySize+1 {
		err = ErrFormat
		return
	}
	for i := 0; i < entries; i++ {
		hist[file[0]] = binary.LittleEndian.Uint32(file[1:])
		file = file[entrySize:]
	}
	padding, payload = int(file[0]), file[1:]
	switch {
	case padding > 7:
		err = ErrPadding
	case padding > 0 && len(payload) == 0:
		err = ErrPadding
	case entries == 0 && len(payload) > 0:
		err = ErrFormat
	}
	return
}
