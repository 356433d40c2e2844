package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/harborview/lens/internal/model"
	"github.com/harborview/lens/internal/ui"
)

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func printSearchTable(s *model.SavedSearch) {
	fmt.Printf("ID:          %s\n", ui.RenderAccent(s.ID))
	fmt.Printf("Name:        %s\n", s.Name)
	fmt.Printf("Visibility:  %s\n", s.Visibility)
	fmt.Printf("Created By:  %s\n", s.CreatedBy)
	if !s.CreatedAt.IsZero() {
		fmt.Printf("Created At:  %s\n", s.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	if !s.UpdatedAt.IsZero() {
		fmt.Printf("Updated At:  %s\n", s.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	if len(s.Filters) > 0 {
		fmt.Printf("Filters:     %s\n", ui.RenderMuted(string(s.Filters)))
	}
}

func printSearchListTable(searches []*model.SavedSearch, total int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tVISIBILITY\tCREATED BY\tUPDATED")
	for _, s := range searches {
		name := s.Name
		if len(name) > 50 {
			name = name[:47] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			s.ID,
			name,
			s.Visibility,
			s.CreatedBy,
			s.UpdatedAt.Format("2006-01-02"),
		)
	}
	w.Flush()
	fmt.Printf("\n%d searches (%d total)\n", len(searches), total)
}

func printResultsTable(results []model.SearchResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tID\tNAME\tMETADATA")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Type, r.ID, r.Name, formatMetadata(r.Metadata))
	}
	w.Flush()
	fmt.Printf("\n%d results\n", len(results))
}

// formatMetadata renders result metadata as stable key=value pairs.
func formatMetadata(meta map[string]string) string {
	if len(meta) == 0 {
		return ""
	}
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+meta[k])
	}
	return strings.Join(pairs, " ")
}
