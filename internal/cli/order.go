package cli

import (
	"fmt"

	"github.com/crosslink-dev/crosslink/internal/workset"
	"github.com/spf13/cobra"
)

var orderCmd = &cobra.Command{
	Use:   "order [dirs...]",
	Short: "Print the dependency order of the local packages",
	Long: `Print the local package names, one per line, in the order they would be
linked: every package after the local packages it depends on.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings(cmd)
		if err != nil {
			return err
		}

		ws, err := loadWorkingSet(cmd.Context(), args, settings)
		if err != nil {
			return err
		}

		order, err := workset.Order(ws, workset.Classify(ws))
		if err != nil {
			return err
		}

		for _, name := range order {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(orderCmd)
}
