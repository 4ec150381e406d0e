package output

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

const hexdumpWidth = 16

// Hexdump writes data in the canonical "hexdump -C" layout: offset, sixteen
// hex bytes split into two groups of eight, and the printable ASCII column.
// Runs of identical lines are collapsed to a single "*", and the final line
// holds the total length.
func Hexdump(w io.Writer, data []byte) error {
	bw := bufio.NewWriter(w)

	var prev []byte
	skipping := false
	for off := 0; off < len(data); off += hexdumpWidth {
		line := data[off:min(off+hexdumpWidth, len(data))]

		if prev != nil && len(line) == hexdumpWidth && bytes.Equal(line, prev) {
			if !skipping {
				fmt.Fprintln(bw, "*")
				skipping = true
			}
			continue
		}
		skipping = false
		prev = line

		fmt.Fprintf(bw, "%08x  ", off)
		for i := 0; i < hexdumpWidth; i++ {
			if i < len(line) {
				fmt.Fprintf(bw, "%02x ", line[i])
			} else {
				bw.WriteString("   ")
			}
			if i == 7 {
				bw.WriteByte(' ')
			}
		}
		bw.WriteString(" |")
		for _, c := range line {
			if c < 0x20 || c > 0x7e {
				c = '.'
			}
			bw.WriteByte(c)
		}
		bw.WriteString("|\n")
	}
	fmt.Fprintf(bw, "%08x\n", len(data))

	return bw.Flush()
}
