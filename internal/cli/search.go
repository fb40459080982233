package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rickdex/internal/api"
	"rickdex/internal/domain"
	"rickdex/internal/ui/logic"
	"rickdex/internal/ui/state"
)

type searchOptions struct {
	page   int
	json   bool
	filter string
}

// searchResult is the --json document
type searchResult struct {
	Query      string             `json:"query"`
	Page       int                `json:"page"`
	Pages      int                `json:"pages"`
	Count      int                `json:"count"`
	Window     []int              `json:"window"`
	Characters []domain.Character `json:"characters"`
	Message    string             `json:"message,omitempty"`
}

func newSearchCommand(root *rootOptions) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:     "search [name]",
		GroupID: queryGroup.ID,
		Short:   "Print one page of characters",
		Long: `Prints one page of characters whose name contains [name], followed by the
page window. Without a name the unfiltered listing is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := root.setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()

			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return runSearch(cmd, e, name, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "page number, starting at 1")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON instead of a table")
	cmd.Flags().StringVar(&opts.filter, "filter", "", "category filter as Category=Value, e.g. Status=Dead")
	return cmd
}

func runSearch(cmd *cobra.Command, e *env, name string, opts *searchOptions) error {
	ctx := cmd.Context()
	category, value, err := parseFilter(opts.filter)
	if err != nil {
		return err
	}

	page := max(1, opts.page)
	result := searchResult{Query: name, Page: page, Pages: 1}

	res, err := e.client.SearchCharacters(ctx, name, page)
	switch {
	case errors.Is(err, api.ErrNoResults):
		// The no-match message lists what the user may have meant
		suggestions, serr := e.client.SuggestNames(ctx, name, e.cfg.UI.SuggestionLimit)
		if serr != nil && !errors.Is(serr, api.ErrNoResults) {
			e.logger.Warn("suggestions failed", zap.Error(serr))
		}
		result.Message = state.NoMatchMessage(name, suggestions)
	case err != nil:
		return errors.New(state.FailureMessage(err))
	default:
		result.Pages = max(1, res.Pages)
		result.Count = res.Count
		result.Characters = logic.FilterByCategory(res.Characters, category, value)
		if len(result.Characters) == 0 {
			result.Message = state.CategoryMessage(category)
		}
	}
	result.Window = logic.PageWindow(page, result.Pages, e.cfg.UI.PageWindow)

	if opts.json {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return printSearch(cmd.OutOrStdout(), result)
}

func printSearch(out io.Writer, r searchResult) error {
	if r.Message != "" {
		_, err := fmt.Fprintln(out, r.Message)
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tSPECIES\tGENDER\tTYPE\tLOCATION")
	for _, c := range r.Characters {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, c.Status, c.Species, c.Gender, dash(c.Type), c.LocationName())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	pages := make([]string, 0, len(r.Window))
	for _, p := range r.Window {
		if p == r.Page {
			pages = append(pages, fmt.Sprintf("[%d]", p))
		} else {
			pages = append(pages, fmt.Sprintf("%d", p))
		}
	}
	_, err := fmt.Fprintf(out, "\npage %d of %d: %s\n", r.Page, r.Pages, strings.Join(pages, " "))
	return err
}

// parseFilter parses Category=Value; the category name is case-insensitive
func parseFilter(s string) (domain.Category, string, error) {
	if s == "" {
		return "", "", nil
	}
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return "", "", fmt.Errorf("invalid filter %q, want Category=Value", s)
	}
	for _, c := range domain.Categories {
		if strings.EqualFold(string(c), strings.TrimSpace(name)) {
			return c, value, nil
		}
	}
	return "", "", fmt.Errorf("unknown category %q", name)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
