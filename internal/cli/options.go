package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rickdex/internal/domain"
	"rickdex/internal/fetcher"
)

func newOptionsCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "options",
		GroupID: queryGroup.ID,
		Short:   "Print the category filter options",
		Long: `Prints the values offered by the category filter. Type, gender and status
come from the first page of characters; locations from the location listing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := root.setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()

			opts, err := fetcher.LoadOptions(cmd.Context(), e.client, e.cfg.API.Timeout(), e.logger)
			if err != nil {
				return fmt.Errorf("load options: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, c := range domain.Categories {
				if _, err := fmt.Fprintf(out, "%s: %s\n", c, strings.Join(opts.For(c), ", ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
