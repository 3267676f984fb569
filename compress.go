package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"

	"huffpack/internal/container"
	"huffpack/internal/huffman"
)

var errVerify = errors.New("self-check failed: compressed data does not decode back to the input")

func compressFile(inPath, outPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	blob, err := compress(data)
	if err != nil {
		return err
	}
	return writeAtomic(outPath, blob)
}

func decompressFile(inPath, outPath string) error {
	blob, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	data, err := decompress(blob)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	return writeAtomic(outPath, data)
}

func compress(data []byte) ([]byte, error) {
	hist := huffman.Histogram(data)
	tree := huffman.Build(&hist)
	if tree == nil {
		// Nothing to encode; an empty table and payload still round-trip.
		return container.Marshal(&hist, nil, 0), nil
	}
	codes := tree.Codes()
	payload, padding := huffman.Encode(data, &codes)
	blob := container.Marshal(&hist, payload, padding)

	// Decode the finished container and compare digests before anything
	// reaches the disk, so a bad write can only ever be an I/O failure.
	back, err := decompress(blob)
	if err != nil || xxhash.Sum64(back) != xxhash.Sum64(data) {
		return nil, errVerify
	}
	return blob, nil
}

func decompress(blob []byte) ([]byte, error) {
	hist, payload, padding, err := container.Unmarshal(blob)
	if err != nil {
		return nil, err
	}
	tree := huffman.Build(&hist)
	if tree == nil {
		// A table of all-zero counts can only come from a forged file;
		// Unmarshal already rejects a missing table with a payload.
		if len(payload) > 0 {
			return nil, container.ErrFormat
		}
		return nil, nil
	}
	return tree.Decode(payload, padding)
}

// writeAtomic stages the output next to its destination and renames it
// into place, so a failed run never leaves a partial output file.
func writeAtomic(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if err == nil {
		err = os.Chmod(f.Name(), 0o644) // CreateTemp is 0600-only
	}
	if err == nil {
		err = os.Rename(f.Name(), path)
	}
	if err != nil {
		os.Remove(f.Name())
	}
	return err
}
