package cmd

import (
	"fmt"

	"GardenTrack/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var pruneDryRun bool

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete harvests whose plant no longer exists",
	Long: `Deleting a plant removes the plant first and its harvests second. If the
process dies in between, the harvests are left pointing at nothing. prune
finds those harvests and deletes them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		e, err := setup(ctx)
		if err != nil {
			return err
		}
		defer e.close(ctx)

		res, err := store.PruneOrphanHarvests(ctx, e.store, pruneDryRun)
		if err != nil {
			return err
		}

		e.logger.Info("Pruned orphan harvests",
			zap.Strings("plant_ids", res.OrphanPlantIDs),
			zap.Int64("deleted", res.Deleted),
			zap.Bool("dry_run", pruneDryRun))
		fmt.Fprintf(cmd.OutOrStdout(), "%d orphaned plant id(s), %d harvest(s) deleted\n",
			len(res.OrphanPlantIDs), res.Deleted)
		return nil
	},
}

func init() {
	pruneCmd.Flags().BoolVar(&pruneDryRun, "dry-run", false, "report orphans without deleting them")
	rootCmd.AddCommand(pruneCmd)
}
