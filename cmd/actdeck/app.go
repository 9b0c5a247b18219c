package actdeck

import (
	stderrors "errors"
	"fmt"
	"os"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/actdeck/pkg/actionfile"
	"github.com/arthur-debert/actdeck/pkg/actions"
	"github.com/arthur-debert/actdeck/pkg/config"
	"github.com/arthur-debert/actdeck/pkg/console"
	"github.com/arthur-debert/actdeck/pkg/errors"
	"github.com/arthur-debert/actdeck/pkg/logging"
	"github.com/arthur-debert/actdeck/pkg/output"
)

// app holds the global flag values and the configuration they resolve to
type app struct {
	verbosity   int
	configPath  string
	actionFiles []string
	noBuiltins  bool
	format      string
	assumeYes   bool
	sort        string

	cfg *config.Config
}

// init loads configuration and sets up logging before any command runs
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		logging.SetupLogger(a.verbosity)
		return err
	}
	a.cfg = cfg

	logging.SetupLogger(max(a.verbosity, cfg.Logging.Verbosity))
	log.Debug().
		Str("command", cmd.Name()).
		Str("config", a.configPath).
		Msg("Command started")
	return nil
}

// settings returns the loaded configuration, falling back to the defaults
// when a command runs without the root's pre-run hook
func (a *app) settings() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	cfg, err := config.LoadMap(nil)
	if err != nil {
		return nil, err
	}
	a.cfg = cfg
	return cfg, nil
}

// newConsole builds a console with the builtins and every configured
// action file registered
func (a *app) newConsole(cmd *cobra.Command, confirmer console.Confirmer) (*console.Console, error) {
	cfg, err := a.settings()
	if err != nil {
		return nil, err
	}

	sort := cfg.Console.Sort
	if a.sort != "" {
		if a.sort != config.SortByName && a.sort != config.SortByRegistration {
			return nil, errors.Newf(errors.ErrInvalidArgument, "unknown sort order %q", a.sort).
				WithDetail("sort", a.sort)
		}
		sort = a.sort
	}

	c := console.New(console.Options{
		Confirmer: confirmer,
		AssumeYes: a.assumeYes || cfg.Console.AssumeYes,
		Sort:      console.SortOrder(sort),
	})

	out := cmd.OutOrStdout()
	if cfg.Console.Builtins && !a.noBuiltins {
		if err := console.RegisterBuiltins(c, out); err != nil {
			return nil, err
		}
	}

	files := append(slices.Clone(cfg.Actions.Files), a.actionFiles...)
	if err := actionfile.LoadAndRegister(c, files, out, cmd.ErrOrStderr()); err != nil {
		return nil, err
	}

	log.Debug().
		Str("session", c.SessionID()).
		Int("actions", c.Count()).
		Strs("files", files).
		Msg("Console ready")
	return c, nil
}

// confirmer picks the pterm prompt on a terminal and refuses otherwise
func (a *app) confirmer(cmd *cobra.Command) console.Confirmer {
	if isTerminal(cmd.InOrStdin()) {
		return console.PtermConfirmer{}
	}
	return refuseConfirmer{}
}

// renderer resolves the output format from the flag, then configuration,
// then terminal detection
func (a *app) renderer(cmd *cobra.Command) (*output.Renderer, error) {
	cfg, err := a.settings()
	if err != nil {
		return nil, err
	}

	name := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		name = a.format
	}

	format, err := output.ParseFormat(name)
	if err != nil {
		return nil, err
	}

	if format == output.FormatAuto {
		format = output.FormatText
		if f, ok := cmd.OutOrStdout().(*os.File); ok {
			format = output.DetectFormat(f)
		}
	}
	return output.NewRenderer(cmd.OutOrStdout(), format), nil
}

// refuseConfirmer stands in for a prompt when there is no terminal to ask on
type refuseConfirmer struct{}

func (refuseConfirmer) Confirm(*actions.Action) (bool, error) {
	return false, stderrors.New(MsgErrConfirmNoTTY)
}

// withSuggestion appends the "did you mean" hint of a lookup failure
func withSuggestion(err error) error {
	if suggestion, ok := errors.GetErrorDetails(err)["suggestion"].(string); ok {
		return fmt.Errorf("%w, "+MsgDidYouMean, err, suggestion)
	}
	return err
}

// report prints the outcome of one invocation
func report(r *output.Renderer, action *actions.Action, handled bool) {
	if handled {
		_ = r.RenderMessage("Success", fmt.Sprintf(MsgActionCompleted, action.Name()))
		return
	}
	_ = r.RenderMessage("Warning", fmt.Sprintf(MsgActionNotCompleted, action.Name()))
}
