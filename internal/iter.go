package internal

import (
	"bufio"
	"io"
	"iter"
)

// Lines iterates over the lines of a reader, without line terminators.
// A read error is yielded once, with an empty line, and ends the iteration.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(line string, err error) bool) {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if !yield(scanner.Text(), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", err)
		}
	}
}
