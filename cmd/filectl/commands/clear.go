package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCacheCmd(load AppLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-cache",
		Short: "Clear the local upload cache and the catalog summary cache",
		Long:  `Empties the local upload cache and removes the cached catalog summary. Remote files are kept; the next chat turn uploads a fresh catalog.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			if err := app.Cache.Clear(); err != nil {
				return fmt.Errorf("clear upload cache: %w", err)
			}
			if err := app.Product.ClearCache(); err != nil {
				return fmt.Errorf("clear catalog cache: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "caches cleared")
			return nil
		},
	}
}
