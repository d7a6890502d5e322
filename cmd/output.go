package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
)

// render prints v as indented JSON or hands a tab writer to table
func render(v any, table func(w io.Writer)) error {
	if cfg.Output.Format == "json" {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	table(w)
	return w.Flush()
}

// row writes one tab separated line
func row(w io.Writer, cells ...any) {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprint(c)
	}
	fmt.Fprintln(w, strings.Join(parts, "\t"))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// plural picks the singular or plural noun for n
func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

func pageFooter(w io.Writer, page, totalPages, totalResults int) {
	fmt.Fprintf(w, "\nPage %d of %d (%d %s)\n", page, totalPages, totalResults, plural(totalResults, "result", "results"))
}

func yearOrDash(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return "-"
}
