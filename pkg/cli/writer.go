package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type Writer interface {
	Write(w io.Writer, results []QueryResult) error
}

// newWriter returns the Writer for a --format value.
func newWriter(format string) (Writer, error) {
	switch format {
	case "text", "":
		return TextWriter{}, nil
	case "json":
		return JsonWriter{}, nil
	case "csv":
		return CsvWriter{}, nil
	case "tsv":
		return CsvWriter{isTSV: true}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// TextWriter prints one result per line.
type TextWriter struct{}

func (TextWriter) Write(w io.Writer, results []QueryResult) error {
	for _, result := range results {
		if _, err := fmt.Fprintln(w, result.String()); err != nil {
			return err
		}
	}
	return nil
}

// JsonWriter encodes the results as one JSON array.
type JsonWriter struct{}

func (JsonWriter) Write(w io.Writer, results []QueryResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

// CsvWriter writes a header row then one row per result, parents separated by spaces.
type CsvWriter struct {
	isTSV bool
}

func (cw CsvWriter) Write(w io.Writer, results []QueryResult) error {
	writer := csv.NewWriter(w)
	if cw.isTSV {
		writer.Comma = '\t'
	}

	if err := writer.Write([]string{"query", "found", "key", "parents"}); err != nil {
		return err
	}
	for _, result := range results {
		record := []string{
			result.Query,
			strconv.FormatBool(result.Found),
			result.Key,
			strings.Join(result.Parents, " "),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
