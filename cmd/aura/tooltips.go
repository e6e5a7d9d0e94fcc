package main

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shhac/aura/internal/tooltip/content"
)

// Shared color printers for tooltip reports.
var (
	colorRed   = color.New(color.FgRed)
	colorGreen = color.New(color.FgGreen)
	colorBold  = color.New(color.Bold)
	colorFaint = color.New(color.Faint)
)

// Tooltip flag values.
var (
	listCategory string
	listPage     string
)

var tooltipsCmd = &cobra.Command{
	Use:   "tooltips",
	Short: "Inspect the tooltip catalog",
}

var tooltipsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tooltip ids with their titles",
	Long: `List every tooltip in the embedded catalog.

Filter with --category (risk, shap, campaign, metric, field) or with
--page (dashboard, customer-detail, calculator, simulation).`,
	Args: cobra.NoArgs,
	RunE: runTooltipsList,
}

var tooltipsValidateCmd = &cobra.Command{
	Use:   "validate [ids...]",
	Short: "Check that tooltip ids have content",
	Long: `Check that every given tooltip id has an entry in the catalog. With no
ids, every id used by the dashboard pages is checked.`,
	RunE: runTooltipsValidate,
}

func init() {
	tooltipsListCmd.Flags().StringVar(&listCategory, "category", "", "only list this category")
	tooltipsListCmd.Flags().StringVar(&listPage, "page", "", "only list ids used by this page")

	tooltipsCmd.AddCommand(tooltipsListCmd)
	tooltipsCmd.AddCommand(tooltipsValidateCmd)
}

func loadStore() (*content.Store, error) {
	store, err := content.Default(cliLogger)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "aura: tooltip catalog is invalid (%v)", err)
	}
	return store, nil
}

func runTooltipsList(cmd *cobra.Command, _ []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	var ids []string
	switch {
	case listCategory != "" && listPage != "":
		return exitError(ExitInvalidArgs, "aura: --category and --page are mutually exclusive")
	case listCategory != "":
		c := content.Category(listCategory)
		if !c.Valid() {
			return exitError(ExitInvalidArgs, "aura: unknown category %q", listCategory)
		}
		ids = store.IDsByCategory(c)
	case listPage != "":
		pageIDs, ok := content.Pages[listPage]
		if !ok {
			return exitError(ExitInvalidArgs, "aura: unknown page %q (known: %s)", listPage, strings.Join(pageNames(), ", "))
		}
		ids = pageIDs
	default:
		ids = store.IDs()
	}

	out := cmd.OutOrStdout()
	width := 0
	for _, id := range ids {
		width = max(width, len(id))
	}
	for _, id := range ids {
		entry := store.Lookup(id)
		_, _ = fmt.Fprintf(out, "%-*s  %-8s  %s\n", width, id, entry.Category, entry.Title)
	}
	cliLogger.Debug("listed tooltips", slog.Int("count", len(ids)))
	return nil
}

func runTooltipsValidate(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	ids := args
	if len(ids) == 0 {
		ids = content.PageIDs()
	}
	result := store.Validate(ids)

	out := cmd.OutOrStdout()
	missing := make(map[string]bool, len(result.Missing))
	for _, id := range result.Missing {
		missing[id] = true
	}
	for _, id := range ids {
		if missing[id] {
			_, _ = fmt.Fprintf(out, "%s %s\n", colorRed.Sprint("missing"), id)
			continue
		}
		if !quiet {
			_, _ = fmt.Fprintf(out, "%s      %s %s\n", colorGreen.Sprint("ok"), id, colorFaint.Sprint(store.Lookup(id).Title))
		}
	}

	if !result.Valid() {
		_, _ = fmt.Fprintf(out, "\n%s\n", colorBold.Sprintf("%d of %d tooltip id(s) have no content", len(result.Missing), result.Checked))
		return exitError(ExitMissingContent, "")
	}
	_, _ = fmt.Fprintf(out, "\n%s\n", colorBold.Sprintf("all %d tooltip id(s) have content", result.Checked))
	return nil
}

func pageNames() []string {
	names := make([]string, 0, len(content.Pages))
	for name := range content.Pages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
