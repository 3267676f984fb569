// Command huffpack is a whole-file Huffman compressor.
//
//	huffpack -c input output    compress input into output
//	huffpack -d input output    decompress output back from input
//
// The compressed file carries its own frequency table, so decompression
// needs nothing beyond the file itself.
package main

import (
	"fmt"
	"os"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s -c|-d <input_file> <output_file>\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  -c    Compress the input file")
	fmt.Fprintln(os.Stderr, "  -d    Decompress the input file")
	os.Exit(1)
}

func main() {
	if len(os.Args) != 4 {
		usage()
	}
	mode, input, output := os.Args[1], os.Args[2], os.Args[3]

	switch mode {
	case "-c":
		if err := compressFile(input, output); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Println("File compressed successfully. Output file:", output)
	case "-d":
		if err := decompressFile(input, output); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Println("File decompressed successfully. Output file:", output)
	default:
		fmt.Fprintln(os.Stderr, "Invalid option. Use -c to compress or -d to decompress.")
		os.Exit(1)
	}
}
