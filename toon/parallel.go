package toon

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// tabularMinRows is the row count at or above which parallel encode of a
// tabular array's rows is worth the goroutine overhead. Configurable via
// TOON_TABULAR_MIN_ROWS, read once and memoized per §5/§9.
var tabularMinRows = sync.OnceValue(func() int {
	if v := os.Getenv("TOON_TABULAR_MIN_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 500
})

// parallelRowChunks splits rowCount rows into up to workers contiguous, ordered
// chunks for worker distribution. Chunk boundaries never split a row.
func parallelRowChunks(rowCount, workers int) [][2]int {
	if workers < 1 {
		workers = 1
	}
	if workers > rowCount {
		workers = rowCount
	}
	chunks := make([][2]int, 0, workers)
	base := rowCount / workers
	rem := rowCount % workers
	start := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < rem {
			size++
		}
		if size == 0 {
			continue
		}
		chunks = append(chunks, [2]int{start, start + size})
		start += size
	}
	return chunks
}

// emitTabularRowsParallel renders a tabular array's rows across worker
// goroutines and concatenates their output in row-index order, producing
// output byte-identical to the serial writeTabularHeaderAndBody path.
func (e *emitter) emitTabularRowsParallel(n *node, delim byte, rowIndent string) string {
	fields := e.a.tabularFields(n)
	rows := e.a.tabularRows(n)
	fieldCount := len(fields)
	rowCount := 0
	if fieldCount > 0 {
		rowCount = len(rows) / fieldCount
	}

	workers := 4
	chunks := parallelRowChunks(rowCount, workers)
	results := make([]string, len(chunks))

	var g errgroup.Group
	for ci, chunk := range chunks {
		ci, chunk := ci, chunk
		g.Go(func() error {
			var b strings.Builder
			for r := chunk[0]; r < chunk[1]; r++ {
				b.WriteString(rowIndent)
				base := r * fieldCount
				for c := 0; c < fieldCount; c++ {
					if c > 0 {
						b.WriteByte(delim)
					}
					b.WriteString(e.scalarText(rows[base+c], delim))
				}
				b.WriteByte('\n')
			}
			results[ci] = b.String()
			return nil
		})
	}
	_ = g.Wait()

	var out strings.Builder
	for _, r := range results {
		out.WriteString(r)
	}
	return out.String()
}
