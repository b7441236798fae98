package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/flaskext/make-flaskext/internal/branding"
	"github.com/flaskext/make-flaskext/internal/config"
	"github.com/flaskext/make-flaskext/internal/logging"
	"github.com/flaskext/make-flaskext/internal/prompt"
	"github.com/flaskext/make-flaskext/internal/tools"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [output-folder]",
	Short: branding.Description(),
	Long: fmt.Sprintf(`%s asks a few questions about a new Flask extension and
generates its skeleton: the flaskext namespace package, a module stub, LICENSE,
README and setup.py. Optionally it runs sphinx-quickstart for documentation and
initialises a git or Mercurial repository.

Defaults for the author, sphinx theme and initial version can be set in
~/%s/config.yaml or with the environment variables %s, %s,
%s and %s. The version must be quoted in YAML.`,
		branding.DisplayName(), branding.HomeDir(),
		branding.EnvVar(config.KeyAuthor), branding.EnvVar(config.KeyDocsTheme),
		branding.EnvVar(config.KeyVersion), branding.EnvVar(config.KeyThemeRepo)),
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWizard,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every rewritten conf.py line and other debug detail")
}

func runWizard(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		fmt.Fprintf(cmd.OutOrStdout(), "usage: %s [output-folder]\n", branding.CLIName())
		return nil
	}
	outputArg := ""
	if len(args) == 1 {
		outputArg = args[0]
	}

	settings, err := config.Load()
	if err != nil {
		return err
	}

	w := &Wizard{
		Prompter: prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()),
		Out:      cmd.OutOrStdout(),
		Settings: settings,
		Identity: osIdentity{},
		Runner:   &tools.ExecRunner{},
		Log:      logging.New(cmd.ErrOrStderr(), verbose),
		Now:      time.Now,
	}
	_, err = w.Run(cmd.Context(), outputArg)
	return err
}

// Execute runs the root command with build info injected via ldflags and
// prints any fatal error once.
func Execute(version, commit, date string) error {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	err := rootCmd.Execute()
	switch {
	case err == nil:
	case isAbort(err):
		fmt.Fprintln(os.Stderr, "\nAborted.")
	default:
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
	}
	return err
}
