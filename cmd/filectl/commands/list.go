package commands

import (
	"fmt"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newListCmd(load AppLoader) *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List uploaded files",
		Long:  `Lists the files stored in the Gemini File API, or with --local the entries of the local upload cache.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer w.Flush()

			if local {
				entries, err := app.Cache.Entries()
				if err != nil {
					return fmt.Errorf("read cache: %w", err)
				}
				keys := make([]string, 0, len(entries))
				for k := range entries {
					keys = append(keys, k)
				}
				sort.Strings(keys)

				fmt.Fprintln(w, "KEY\tNAME\tHASH\tSIZE\tUPLOADED")
				for _, k := range keys {
					e := entries[k]
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", k, e.Name, e.ContentHash, e.ContentSize,
						time.Unix(e.UploadedAt, 0).UTC().Format(time.RFC3339))
				}
				return nil
			}

			files, err := app.Files.ListFiles(cmd.Context())
			if err != nil {
				return fmt.Errorf("list files: %w", err)
			}
			fmt.Fprintln(w, "NAME\tDISPLAY NAME\tSIZE\tSTATE\tEXPIRES")
			for _, f := range files {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", f.Name, f.DisplayName, f.SizeBytes, f.State, f.ExpirationTime)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "list the local upload cache instead of remote files")
	return cmd
}
