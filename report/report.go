// Package report writes headword frequency tables as aligned text columns.
package report

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"strconv"

	"github.com/npillmayer/headword"
)

// LineSeparator returns the line separator of the host platform.
func LineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Width returns the width of the count column, i.e. the number of digits of
// the largest count.
func Width(counts []headword.Count) int {
	width := 0
	for _, c := range counts {
		width = max(width, len(strconv.Itoa(c.N)))
	}
	return width
}

// Write writes one line per count, "<count> <headword>", with counts right
// aligned. Every line is terminated by sep. Counts are written in the order
// given; an empty slice produces no output.
func Write(w io.Writer, counts []headword.Count, sep string) error {
	if len(counts) == 0 {
		return nil
	}
	width := Width(counts)
	bw := bufio.NewWriter(w)
	for _, c := range counts {
		if _, err := fmt.Fprintf(bw, "%*d %s%s", width, c.N, c.Headword, sep); err != nil {
			return err
		}
	}
	return bw.Flush()
}
