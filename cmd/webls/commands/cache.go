package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and maintain the listing cache",
	}

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show cache statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			return c.app.CacheStats(cmd.Context(), asJSON)
		},
	}
	stats.Flags().Bool("json", false, "Emit statistics as JSON")

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Delete all cached listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.CacheClear(cmd.Context())
		},
	}

	purge := &cobra.Command{
		Use:   "purge",
		Short: "Remove expired entries from the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.CachePurge(cmd.Context())
		},
	}

	cmd.AddCommand(stats, clear, purge)
	return cmd
}
