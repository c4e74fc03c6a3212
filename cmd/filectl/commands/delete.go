package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errConfirmRequired = errors.New("refusing to delete every file without --yes")

func newDeleteCmd(load AppLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete one remote file",
		Long:  `Deletes one file from the Gemini File API. name is the resource name, e.g. files/abc-123.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			if err := app.Files.DeleteFile(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func newDeleteAllCmd(load AppLoader) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete-all",
		Short: "Delete every remote file and clear the local upload cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errConfirmRequired
			}
			app, err := load()
			if err != nil {
				return err
			}
			files, err := app.Files.ListFiles(cmd.Context())
			if err != nil {
				return fmt.Errorf("list files: %w", err)
			}

			var failed int
			for _, f := range files {
				if err := app.Files.DeleteFile(cmd.Context(), f.Name); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "delete %s: %v\n", f.Name, err)
					failed++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", f.Name)
			}

			// Cached entries point at files that no longer exist.
			if err := app.Cache.Clear(); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d deletions failed", failed, len(files))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d files\n", len(files))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm deletion of every file")
	return cmd
}
