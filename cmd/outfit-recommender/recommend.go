package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/i474232898/outfit-recommender/internal/outfit"
)

func recommendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recommend <city>[,<country>]",
		Short: "Fetch the weather for a city and print outfit recommendations",
		Example: `  outfit-recommender recommend London,GB
  outfit-recommender recommend New York`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			res := a.service.GetWeatherAndRecommend(cmd.Context(), strings.Join(args, " "))
			if res.Success && res.Weather != nil {
				res.Advice = outfit.Advice(*res.Weather)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderResult(res))
			if !res.Success {
				return fmt.Errorf("recommendation failed")
			}
			return nil
		},
	}
}
