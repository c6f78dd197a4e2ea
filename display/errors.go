package display

import (
	"io"

	"github.com/pterm/pterm"

	"github.com/teranos/sculpt/errors"
)

const (
	graphNote = "nothing was written; fix the declarations and run again"
	emitNote  = "internal generator bug, please report it along with the declaration file"
)

// Error prints err followed by its details and hints. Declaration defects
// and generator bugs get a closing note telling the user which side to fix.
func Error(w io.Writer, err error) {
	if err == nil {
		return
	}
	pterm.Error.WithWriter(w).Println(err.Error())
	for _, d := range errors.GetAllDetails(err) {
		pterm.Fprintln(w, "  "+d)
	}
	for _, h := range errors.GetAllHints(err) {
		pterm.Info.WithWriter(w).Println(h)
	}

	switch {
	case errors.IsEmitError(err):
		pterm.Warning.WithWriter(w).Println(emitNote)
	case errors.IsGraphError(err):
		pterm.Info.WithWriter(w).Println(graphNote)
	}
}
