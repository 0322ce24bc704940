package export

import (
	"fmt"
	"io"
)

// Progress is invoked once per processed frame.
type Progress func(frame, total int)

// PrintProgress returns a Progress that rewrites a percentage on a
// single output line.
func PrintProgress(w io.Writer) Progress {
	return func(frame, total int) {
		fmt.Fprintf(w, "%.2f %%\r", float64(frame)/float64(total)*100)
	}
}
