//go:build gen64

// Command gen64 renders internal/bitpack64/pack_gen.go: one packW/unpackW
// function pair per bit width W in [1, 63], each specialized for a single
// width's register-accumulator bit-packing schedule, with W substituted as
// a per-function Go constant so width-dependent masks fold at compile time.
//
// Generating one function per width rather than writing a single
// width-parameterized routine is what lets numBits/mask stay compile-time
// constants across 64 distinct widths; see DESIGN.md for the rationale
// behind generating Go source here instead of assembly.
//
// Invoke via:
//
//	go run -tags gen64 ./internal/gen64 > internal/bitpack64/pack_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"text/template"
)

const maxGeneratedWidth = 63

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by internal/gen64/main.go via "go generate"; DO NOT EDIT.
//
// Each packW/unpackW pair below is specialized for a single bit width W in
// [1, 63] so bitsFilled/mask arithmetic that depends only on W folds to a
// compile-time constant inside the loop body. Width 64 is handled in
// bitpack64.go as a straight little-endian copy of 64 lanes; width 0 carries
// no bytes and has no routine at all (callers special-case it).

package bitpack64

import "encoding/binary"
{{range .}}
func pack{{.}}(input *[64]uint64, output []byte) int {
	const numBits = {{.}}
	const numBytes = numBits * 64 / 8

	outRegister := input[0]
	outIdx := 0
	for i := 1; i < 63; i++ {
		bitsFilled := i * numBits
		innerCursor := bitsFilled % 64
		remaining := 64 - innerCursor

		inRegister := input[i]
		if innerCursor > 0 {
			outRegister |= inRegister << uint(innerCursor)
		} else {
			outRegister = inRegister
		}

		if remaining <= numBits {
			binary.LittleEndian.PutUint64(output[outIdx:outIdx+8], outRegister)
			outIdx += 8
			if remaining > 0 && remaining < numBits {
				outRegister = inRegister >> uint(remaining)
			}
		}
	}

	inRegister := input[63]
	if 64-numBits > 0 {
		outRegister |= inRegister << uint(64-numBits)
	} else {
		outRegister |= inRegister
	}
	binary.LittleEndian.PutUint64(output[outIdx:outIdx+8], outRegister)

	return numBytes
}

func unpack{{.}}(input []byte, output *[64]uint64) int {
	const numBits = {{.}}
	const numBytes = numBits * 64 / 8
	const mask = (uint64(1) << numBits) - 1

	inIdx := 0
	inRegister := binary.LittleEndian.Uint64(input[inIdx : inIdx+8])
	output[0] = inRegister & mask

	for i := 1; i < 64; i++ {
		innerCursor := (i * numBits) % 64
		innerCapacity := 64 - innerCursor

		var shifted uint64
		if innerCursor != 0 {
			shifted = inRegister >> uint(innerCursor)
		} else {
			shifted = inRegister
		}
		outRegister := shifted & mask

		if innerCapacity <= numBits && i != 63 {
			inIdx += 8
			inRegister = binary.LittleEndian.Uint64(input[inIdx : inIdx+8])
			if innerCapacity < numBits {
				var high uint64
				if innerCapacity != 0 {
					high = inRegister << uint(innerCapacity)
				} else {
					high = inRegister
				}
				outRegister |= high & mask
			}
		}

		output[i] = outRegister
	}

	return numBytes
}
{{end}}`))

func main() {
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	widths := make([]int, maxGeneratedWidth)
	for i := range widths {
		widths[i] = i + 1
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, widths); err != nil {
		fmt.Fprintln(os.Stderr, "gen64:", err)
		os.Exit(1)
	}

	if *out == "" {
		os.Stdout.Write(buf.Bytes())
		return
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "gen64:", err)
		os.Exit(1)
	}
}
