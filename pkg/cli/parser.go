package cli

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Record map[string]string

// parseFile reads the raw keys of a file, choosing the format by extension:
// .csv and .tsv files need a header row, .json files hold an array of objects,
// anything else is plain text with one key per line.
func parseFile(path string, column string, onEachKey func(raw string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		err = parseCsv(file, ',', column, onEachKey)
	case ".tsv":
		err = parseCsv(file, '\t', column, onEachKey)
	case ".json":
		err = parseJson(file, column, onEachKey)
	default:
		err = parseText(file, onEachKey)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func parseJson(r io.Reader, column string, onEachKey func(raw string) error) error {
	decoder := json.NewDecoder(r)
	// keep numbers as written, 12345678901234567890 must not become 1.2345678901234567e+19
	decoder.UseNumber()

	// Read opening bracket of the array
	if _, err := decoder.Token(); err != nil {
		return err
	}

	// Decode each element of the array
	for decoder.More() {
		data := map[string]any{}
		if err := decoder.Decode(&data); err != nil {
			return err
		}
		record := Record{}
		for key, value := range data {
			record[key] = fmt.Sprint(value)
		}
		raw, err := keyOf(record, column)
		if err != nil {
			return err
		}
		if err := onEachKey(raw); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	_, err := decoder.Token()
	return err
}

func parseCsv(r io.Reader, separator rune, column string, onEachKey func(raw string) error) error {
	reader := csv.NewReader(r)
	reader.Comma = separator
	reader.Comment = '#'

	// Read the header to build the key mapping
	headers, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	for {
		recordData, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		record := make(Record)
		for i, value := range recordData {
			record[headers[i]] = value
		}

		raw, err := keyOf(record, column)
		if err != nil {
			return err
		}
		if err := onEachKey(raw); err != nil {
			return err
		}
	}
}

// parseText reads one key per line, skipping blank lines and # comments.
func parseText(r io.Reader, onEachKey func(raw string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := onEachKey(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func keyOf(record Record, column string) (string, error) {
	raw, found := record[column]
	if !found {
		return "", fmt.Errorf("no %q column in record: %v", column, record)
	}
	return raw, nil
}
