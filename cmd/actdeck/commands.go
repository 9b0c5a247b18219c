package actdeck

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/actdeck/internal/version"
	"github.com/arthur-debert/actdeck/pkg/actions"
	"github.com/arthur-debert/actdeck/pkg/cobrax/topics"
	"github.com/arthur-debert/actdeck/pkg/errors"
)

//go:embed topics
var topicsFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "actdeck",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&a.configPath, "config", "", MsgFlagConfig)
	flags.StringArrayVarP(&a.actionFiles, "actions", "a", nil, MsgFlagActions)
	flags.BoolVar(&a.noBuiltins, "no-builtins", false, MsgFlagNoBuiltins)
	flags.StringVarP(&a.format, "format", "f", "auto", MsgFlagFormat)
	flags.BoolVarP(&a.assumeYes, "yes", "y", false, MsgFlagYes)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newConsoleCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	helpFS, err := fs.Sub(topicsFS, "topics")
	if err == nil {
		opts := topics.Options{
			Renderer: topics.RendererFor(isTerminal(rootCmd.OutOrStdout())),
		}
		_ = topics.InitializeWithOptions(rootCmd, helpFS, opts)
	}

	return rootCmd
}

// actionNamesCompletion completes action names for run
func actionNamesCompletion(a *app) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		c, err := a.newConsole(cmd, refuseConfirmer{})
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var names []string
		for _, action := range c.Entries() {
			names = append(names, action.Name())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.newConsole(cmd, refuseConfirmer{})
			if err != nil {
				return err
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.Render(c.Entries())
		},
	}

	cmd.Flags().StringVar(&a.sort, "sort", "", MsgFlagSort)
	return cmd
}

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "run <id|name>...",
		Short:             MsgRunShort,
		Long:              MsgRunLong,
		Example:           MsgRunExample,
		GroupID:           "core",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: actionNamesCompletion(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.newConsole(cmd, a.confirmer(cmd))
			if err != nil {
				return err
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			// Resolve everything first so a typo does not leave a half-run batch
			resolved := make([]*actions.Action, 0, len(args))
			for _, ref := range args {
				action, err := c.Lookup(ref)
				if err != nil {
					return withSuggestion(err)
				}
				resolved = append(resolved, action)
			}

			failed := 0
			for _, action := range resolved {
				handled, err := c.InvokeAction(action)
				if err != nil {
					return err
				}
				report(r, action, handled)
				if !handled {
					failed++
				}
			}

			if failed > 0 {
				return errors.Newf(errors.ErrHandlerFailure, MsgErrNotCompleted, failed, len(resolved))
			}
			return nil
		},
	}
}

func newConsoleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "console",
		Aliases: []string{"repl"},
		Short:   MsgConsoleShort,
		Long:    MsgConsoleLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConsole(cmd)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil || helpCmd == nil || helpCmd.RunE == nil {
				return fmt.Errorf(MsgErrHelpNotFound)
			}
			return helpCmd.RunE(helpCmd, []string{"topics"})
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
