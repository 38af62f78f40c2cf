package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/analytics"
)

func newMigrateCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending analytics schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(root)
			if err != nil {
				return err
			}
			db, err := analytics.Open(cfg.Analytics.Path)
			if err != nil {
				return err
			}
			defer db.Close()

			version, err := analytics.Migrate(db)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "analytics schema at version %d (%s)\n", version, cfg.Analytics.Path)
			return nil
		},
	}
}
