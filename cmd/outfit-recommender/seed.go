package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/i474232898/outfit-recommender/internal/store"
)

func seedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed [csv]",
		Short: "Load the clothing catalog from a CSV file",
		Long: `Load the clothing catalog from a CSV file (default CATALOG_CSV). The catalog is only
loaded when empty unless --force is given. A missing file loads a small sample catalog.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePersistentStore(cfg, "seed"); err != nil {
				return err
			}
			path := cfg.CatalogCSV
			if len(args) == 1 {
				path = args[0]
			}

			st, err := openStore(cmd.Context(), cfg, false)
			if err != nil {
				return err
			}
			defer st.Close()

			if force {
				removed, err := st.Clear(cmd.Context(), store.Outfits)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d catalog items\n", removed)
			}

			n, err := st.SeedCatalog(cmd.Context(), path)
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Catalog already loaded; use --force to reload")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d catalog items\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "clear the existing catalog before loading")
	return cmd
}
