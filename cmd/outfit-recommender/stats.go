package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/i474232898/outfit-recommender/internal/config"
)

// requirePersistentStore rejects commands that read or write stored data when no
// DATA_DIR is set, since each run would start from an empty in-memory store.
func requirePersistentStore(cfg *config.AppConfig, command string) error {
	if cfg.DataDir == "" {
		return fmt.Errorf("%s needs DATA_DIR or --data-dir; the in-memory store starts empty on every run", command)
	}
	return nil
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show document counts per collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requirePersistentStore(cfg, "stats"); err != nil {
				return err
			}
			st, err := openStore(cmd.Context(), cfg, false)
			if err != nil {
				return err
			}
			defer st.Close()

			stats, err := st.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderStats(stats))
			return nil
		},
	}
}

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the most recent recommendations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requirePersistentStore(cfg, "history"); err != nil {
				return err
			}
			st, err := openStore(cmd.Context(), cfg, false)
			if err != nil {
				return err
			}
			defer st.Close()

			if limit <= 0 {
				limit = cfg.HistoryLimit
			}
			records, err := st.RecentRecommendations(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderHistory(records))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of records (default HISTORY_LIMIT)")
	return cmd
}
