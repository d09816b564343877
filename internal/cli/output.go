package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"insight-srv/pkg/util"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, it := range items {
		fmt.Fprintf(w, "  - %s\n", it)
	}
}

func printRule(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("-", 48))
}

// formatCount renders a counter the way the analysis does.
func formatCount(n int64) string {
	return util.FormatNumber(n)
}
