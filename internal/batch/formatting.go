package batch

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FormatResults renders the batch result in the given format ("text", "json",
// or "csv").
func (r *Result) FormatResults(format string, precision int) (string, error) {
	switch format {
	case "json":
		bts, err := json.MarshalIndent(r, "", "  ")
		return string(bts), err
	case "csv":
		return r.formatCSV(precision)
	case "text":
		return r.formatText(precision), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

func (r *Result) formatText(precision int) string {
	var b strings.Builder
	for _, f := range r.Files {
		if f.Error != "" {
			fmt.Fprintf(&b, "%s: error: %s\n", f.Path, f.Error)
			continue
		}
		fmt.Fprintf(&b, "%s: %s", f.Path, f.Language)
		if len(f.Confidences) > 0 {
			fmt.Fprintf(&b, " (%.*f)", precision, f.Confidences[0].Value)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Result) formatCSV(precision int) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"file", "language", "code", "confidence", "error"}); err != nil {
		return "", err
	}
	for _, f := range r.Files {
		confidence := ""
		if len(f.Confidences) > 0 {
			confidence = strconv.FormatFloat(f.Confidences[0].Value, 'f', precision, 64)
		}
		if err := w.Write([]string{f.Path, f.Language, f.Code, confidence, f.Error}); err != nil {
			return "", err
		}
	}
	w.Flush()
	return b.String(), w.Error()
}
