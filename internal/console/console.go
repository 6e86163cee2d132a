// Package console provides the line-oriented output sink used for
// operator-facing messages.
package console

import (
	"fmt"
	"io"
	"sync"
)

// Printer writes whole lines to the operator.
type Printer interface {
	Println(line string)
}

// WriterPrinter writes lines to an io.Writer.
type WriterPrinter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *WriterPrinter {
	return &WriterPrinter{w: w}
}

// Println writes line followed by a newline. Write errors are dropped, as
// with fmt.Println on stdout.
func (p *WriterPrinter) Println(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintln(p.w, line)
}

var _ Printer = (*WriterPrinter)(nil)
