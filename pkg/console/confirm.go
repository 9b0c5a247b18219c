package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/actdeck/pkg/actions"
)

// Confirmer asks the user whether an action may run
type Confirmer interface {
	Confirm(action *actions.Action) (bool, error)
}

// StaticConfirmer answers every confirmation with the same value
type StaticConfirmer bool

// Confirm implements Confirmer
func (s StaticConfirmer) Confirm(*actions.Action) (bool, error) {
	return bool(s), nil
}

// PtermConfirmer shows an interactive yes/no prompt on the terminal
type PtermConfirmer struct {
	Default bool
}

// Confirm implements Confirmer
func (p PtermConfirmer) Confirm(action *actions.Action) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultValue(p.Default).
		Show(fmt.Sprintf("Run action '%s'?", action.Name()))
}

// ReaderConfirmer reads a y/N answer line by line. Share the reader with
// any other consumer of the same input so buffered lines are not lost.
type ReaderConfirmer struct {
	in      *bufio.Reader
	out     io.Writer
	Default bool
}

// NewReaderConfirmer creates a confirmer reading answers from in and
// writing prompts to out
func NewReaderConfirmer(in *bufio.Reader, out io.Writer) *ReaderConfirmer {
	return &ReaderConfirmer{in: in, out: out}
}

// Confirm implements Confirmer
func (r *ReaderConfirmer) Confirm(action *actions.Action) (bool, error) {
	marker := "[y/N]"
	if r.Default {
		marker = "[Y/n]"
	}
	fmt.Fprintf(r.out, "Run action '%s'? %s: ", action.Name(), marker)

	line, err := r.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	response := strings.ToLower(strings.TrimSpace(line))
	if response == "" {
		return r.Default, nil
	}
	return response == "y" || response == "yes", nil
}
