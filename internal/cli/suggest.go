package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rickdex/internal/api"
)

func newSuggestCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "suggest <text>",
		GroupID: queryGroup.ID,
		Short:   "Print name suggestions for a partial name",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := root.setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()

			names, err := e.client.SuggestNames(cmd.Context(), args[0], e.cfg.UI.SuggestionLimit)
			if err != nil && !errors.Is(err, api.ErrNoResults) {
				return fmt.Errorf("suggest: %w", err)
			}
			for _, n := range names {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), n); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
