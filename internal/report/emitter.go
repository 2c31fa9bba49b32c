package report

import (
	"fmt"
	"io"

	"github.com/skarn/mdxwrap/internal/parser"
)

// Emitter writes the orchestrator wire protocol. Only STATUS lines and
// result records may reach the writer; diagnostics belong on stderr.
// Writes come from the single supervisor goroutine, so lines never
// interleave mid-record.
type Emitter struct {
	w          io.Writer
	finalDone  bool
	statusSent int
}

// NewEmitter creates an emitter targeting w, normally os.Stdout.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Status emits one periodic status line: STATUS <0-10000> <speed>.
func (e *Emitter) Status(percentage, speed int64) {
	fmt.Fprintf(e.w, "STATUS %d %d\n", percentage, speed)
	e.statusSent++
}

// FinalStatus emits the terminal status line exactly once; later calls
// are no-ops.
func (e *Emitter) FinalStatus(percentage, speed int64) {
	if e.finalDone {
		return
	}
	e.finalDone = true
	e.Status(percentage, speed)
}

// Result forwards one cracked record immediately, interleaved with status
// lines as results are classified.
func (e *Emitter) Result(ev parser.ResultEvent) {
	fmt.Fprintln(e.w, ev.Record())
}

// StatusCount returns how many status lines were emitted.
func (e *Emitter) StatusCount() int {
	return e.statusSent
}
