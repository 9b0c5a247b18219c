package actdeck

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/actdeck/pkg/console"
	"github.com/arthur-debert/actdeck/pkg/output"
)

// runConsole starts the interactive loop: a pterm menu when both ends are
// terminals, a line prompt otherwise
func (a *app) runConsole(cmd *cobra.Command) error {
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	interactive := isTerminal(in) && isTerminal(out)

	reader := bufio.NewReader(in)
	var confirmer console.Confirmer = console.NewReaderConfirmer(reader, out)
	if interactive {
		confirmer = console.PtermConfirmer{}
	}

	c, err := a.newConsole(cmd, confirmer)
	if err != nil {
		return err
	}

	r, err := a.renderer(cmd)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, MsgConsoleWelcome+"\n", c.Count())

	if interactive {
		err = selectLoop(c, r)
	} else {
		prompt := "> "
		if cfg, cerr := a.settings(); cerr == nil {
			prompt = cfg.Console.Prompt
		}
		err = lineLoop(c, r, reader, out, prompt)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, MsgConsoleBye)
	return nil
}

// lineLoop reads one reference per line until quit or end of input
func lineLoop(c *console.Console, r *output.Renderer, reader *bufio.Reader, out io.Writer, prompt string) error {
	for {
		fmt.Fprint(out, prompt)

		line, err := reader.ReadString('\n')
		if ref := strings.TrimSpace(line); ref != "" {
			if quit := dispatch(c, r, ref); quit {
				return nil
			}
		}

		if err == io.EOF {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// selectLoop shows a menu of the registered actions until quit is picked
func selectLoop(c *console.Console, r *output.Renderer) error {
	for {
		entries := c.Entries()
		options := make([]string, 0, len(entries)+1)
		for _, action := range entries {
			options = append(options, fmt.Sprintf("%d  %s", action.ID(), action.Name()))
		}
		options = append(options, MsgQuitOption)

		choice, err := pterm.DefaultInteractiveSelect.
			WithOptions(options).
			WithDefaultText(MsgSelectPrompt).
			Show()
		if err != nil {
			return err
		}
		if choice == MsgQuitOption {
			return nil
		}

		invoke(c, r, strings.Fields(choice)[0])
	}
}

// dispatch handles one console command and reports whether to quit
func dispatch(c *console.Console, r *output.Renderer, ref string) bool {
	switch ref {
	case "quit", "exit":
		return true
	case "list", "ls":
		if err := r.Render(c.Entries()); err != nil {
			_ = r.RenderError(err)
		}
	default:
		invoke(c, r, ref)
	}
	return false
}

func invoke(c *console.Console, r *output.Renderer, ref string) {
	action, err := c.Lookup(ref)
	if err != nil {
		_ = r.RenderError(withSuggestion(err))
		return
	}

	handled, err := c.InvokeAction(action)
	if err != nil {
		_ = r.RenderError(err)
		return
	}
	report(r, action, handled)
}
