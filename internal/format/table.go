package format

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
)

// WriteTable renders v as aligned text. Slices become one row per element;
// everything else becomes a key/value listing.
//
// Implementation note: like the EDN writer this was adapted from, values are
// first round-tripped through JSON so existing json tags drive the column
// names. Map key order is not stable in Go, so columns are sorted.
func WriteTable(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}

	switch t := x.(type) {
	case []any:
		return writeRows(w, t)
	case map[string]any:
		return writeKV(w, t)
	default:
		_, err := fmt.Fprintln(w, cellText(x))
		return err
	}
}

func writeRows(w io.Writer, rows []any) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No records were found.")
		return err
	}

	first, ok := rows[0].(map[string]any)
	if !ok {
		// Slice of scalars: one per line.
		for _, r := range rows {
			if _, err := fmt.Fprintln(w, cellText(r)); err != nil {
				return err
			}
		}
		return nil
	}

	cols := make([]string, 0, len(first))
	for k := range first {
		cols = append(cols, k)
	}
	sort.Strings(cols)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = Humanize(c)
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, r := range rows {
		m, _ := r.(map[string]any)
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = cellText(m[c])
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func writeKV(w io.Writer, m map[string]any) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%s\n", Humanize(k), cellText(m[k]))
	}
	return tw.Flush()
}

func cellText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			parts = append(parts, cellText(e))
		}
		return strings.Join(parts, ", ")
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	}
}

// Humanize turns a snake_case field name into a display label
// ("incident_id" -> "Incident Id").
func Humanize(label string) string {
	words := strings.Split(strings.ReplaceAll(label, "_", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
