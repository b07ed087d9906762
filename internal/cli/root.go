package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/crosslink-dev/crosslink/internal/branding"
	"github.com/crosslink-dev/crosslink/internal/config"
	"github.com/crosslink-dev/crosslink/internal/executor"
	"github.com/crosslink-dev/crosslink/internal/logging"
	"github.com/crosslink-dev/crosslink/internal/plan"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	rootGlobals    []string
	rootUninstall  bool
	rootExecute    bool
	rootFormat     string
	rootPeerPolicy string
	rootVerbose    int
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [dirs...]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` links interdependent local packages against each other.

Every immediate subdirectory of the given directories (default: the current
directory) that holds a package.json joins the working set. Packages are
ordered so each is installed and linked only after the local packages it
depends on, and declared peer dependencies are checked first.

By default the npm commands are printed. Use -e to run them.

Example:
  crosslink packages
  crosslink packages -g typescript -e
  crosslink packages plugins -u -e
  crosslink packages --format json`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetupLogger(rootVerbose)
		config.Load()
	},
	RunE: runRoot,
}

func init() {
	rootCmd.Flags().StringSliceVarP(&rootGlobals, "global", "g", nil, "Link this globally installed package where it is a dependency (repeatable)")
	rootCmd.Flags().BoolVarP(&rootUninstall, "uninstall", "u", false, "Tear down links and installs in reverse order")
	rootCmd.Flags().BoolVarP(&rootExecute, "execute", "e", false, "Run the commands instead of printing them")
	rootCmd.Flags().StringVar(&rootFormat, "format", "text", "Dry-run output format: text, json or yaml")
	rootCmd.PersistentFlags().StringVar(&rootPeerPolicy, "peer-policy", "", "Peer check policy: strict or lenient (default from config)")
	rootCmd.PersistentFlags().CountVarP(&rootVerbose, "verbose", "v", "Increase log verbosity (-v info, -vv debug, -vvv trace)")
}

func runRoot(cmd *cobra.Command, args []string) error {
	format, err := executor.ParseFormat(rootFormat)
	if err != nil {
		return err
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	p, err := buildPlan(cmd.Context(), args, settings, rootGlobals, rootUninstall)
	if err != nil {
		return err
	}

	opts := plan.CommandOptions{NPM: settings.NPM, SaveExact: settings.SaveExact}
	if rootExecute {
		return executor.New(cmd.OutOrStdout(), opts).Execute(cmd.Context(), p)
	}
	return executor.Print(cmd.OutOrStdout(), p, opts, format)
}

// Execute runs the root command with build info injected via ldflags.
// An interrupt cancels the context so a running plan stops before its next
// command.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
