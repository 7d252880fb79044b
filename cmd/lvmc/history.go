package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/lvmc/store"
	"github.com/spf13/cobra"
)

var errHistoryDisabled = errors.New("run history is disabled: set --db or db.path")

func newHistoryCmd(env *cmdEnv) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded estimation runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := env.load(cmd)
			if err != nil {
				return err
			}
			repo, err := openStore(cfg, logger)
			if err != nil {
				return err
			}
			if repo == nil {
				return errHistoryDisabled
			}
			defer repo.Close()

			runs, err := repo.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return printRuns(cmd, runs)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", store.DefaultListLimit, "maximum runs to show")
	return cmd
}

func printRuns(cmd *cobra.Command, runs []store.Record) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tSAMPLES\tESTIMATE\tABS ERROR\tSEED\tDURATION")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.6f\t%.6f\t%d\t%s\n",
			r.ID, r.CreatedAt.Format(time.RFC3339), r.Samples, r.Estimate, r.AbsError, r.Seed,
			r.Duration.Round(time.Microsecond))
	}
	return tw.Flush()
}
