package cli

import (
	"context"
	"fmt"

	"github.com/crosslink-dev/crosslink/internal/config"
	"github.com/crosslink-dev/crosslink/internal/manifest"
	"github.com/crosslink-dev/crosslink/internal/peers"
	"github.com/crosslink-dev/crosslink/internal/plan"
	"github.com/crosslink-dev/crosslink/internal/workset"
	"github.com/spf13/cobra"
)

// resolveSettings folds the --peer-policy flag over the loaded config.
func resolveSettings(cmd *cobra.Command) (*config.Settings, error) {
	settings, err := config.Resolve()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("peer-policy") {
		policy, err := peers.ParsePolicy(rootPeerPolicy)
		if err != nil {
			return nil, err
		}
		settings.PeerPolicy = policy
	}
	return settings, nil
}

// loadWorkingSet reads the packages under dirs (default ".").
func loadWorkingSet(ctx context.Context, dirs []string, settings *config.Settings) (*workset.WorkingSet, error) {
	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	pkgs, err := manifest.Load(ctx, dirs, manifest.Options{
		FileName:    settings.Manifest,
		Concurrency: settings.Concurrency,
	})
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages with %s found under %v", settings.Manifest, dirs)
	}

	return workset.New(pkgs)
}

// buildPlan loads the working set and analyzes it. Globals from config and
// flags are merged.
func buildPlan(ctx context.Context, dirs []string, settings *config.Settings, globals []string, uninstall bool) (*plan.Plan, error) {
	ws, err := loadWorkingSet(ctx, dirs, settings)
	if err != nil {
		return nil, err
	}

	return plan.Analyze(ws, plan.Options{
		Globals:   config.SplitList(append(append([]string{}, settings.Globals...), globals...)),
		Uninstall: uninstall,
		Policy:    settings.PeerPolicy,
	})
}
