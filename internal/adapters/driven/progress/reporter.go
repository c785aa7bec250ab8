// Package progress renders split progress as an indented list on a
// terminal stream, coloured when the stream is a TTY.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/json-split/internal/core/domain"
	"github.com/custodia-labs/json-split/internal/core/ports/driven"
)

// Ensure Reporter implements the interface.
var _ driven.ProgressReporter = (*Reporter)(nil)

// DupeMarker is appended to the line of a tolerated duplicate ID.
const DupeMarker = " (DUPE!)"

// Reporter writes progress in the layout:
//
//	* Files
//	    * "in.json"
//	        * IDs
//	            * "a"
//	            * "a" (DUPE!)
//
//	Done!
type Reporter struct {
	out    io.Writer
	color  bool
	styles *Styles
}

// NewReporter creates a reporter writing to w. Colour is used only when
// color is true.
func NewReporter(w io.Writer, color bool) *Reporter {
	return &Reporter{
		out:    w,
		color:  color,
		styles: NewStyles(lipgloss.NewRenderer(w), nil),
	}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (r *Reporter) render(style lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}

// Begin writes the file list heading.
func (r *Reporter) Begin() {
	fmt.Fprintln(r.out, r.render(r.styles.Heading, "* Files"))
}

// FileStarted writes the input file entry and the ID list heading.
func (r *Reporter) FileStarted(path string) {
	fmt.Fprintf(r.out, "    * %s\n", r.render(r.styles.Path, fmt.Sprintf("%q", path)))
	fmt.Fprintf(r.out, "        %s\n", r.render(r.styles.Heading, "* IDs"))
}

// ElementWritten writes one ID line, marked when it was a duplicate.
func (r *Reporter) ElementWritten(id string, duplicate bool) {
	line := "            * " + r.render(r.styles.ID, fmt.Sprintf("%q", id))
	if duplicate {
		line += r.render(r.styles.Dupe, DupeMarker)
	}
	fmt.Fprintln(r.out, line)
}

// Finished writes the completion marker.
func (r *Reporter) Finished(_ *domain.SplitReport) {
	fmt.Fprintf(r.out, "\n%s\n", r.render(r.styles.Done, "Done!"))
}
