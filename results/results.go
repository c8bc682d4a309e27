// Package results persists classification records as delimited text. The
// sweep tooling writes CSV and JSONL side by side; the analysis layer
// reads either back. Storage format is a presentation concern: the record
// schema itself lives in the valueset package.
package results

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"dickson-valuesets/valueset"
)

// Header is the CSV column layout, one row per (p, a, n) triple.
var Header = []string{"p", "a", "n", "cardinality", "is_permutation", "value_set"}

// Writer streams records to a CSV file, a JSONL file, or both. A zero
// path disables the corresponding sink.
type Writer struct {
	csvFile       *os.File
	csvW          *csv.Writer
	headerWritten bool

	jsonFile *os.File
	jsonBuf  *bufio.Writer
	jsonEnc  *json.Encoder
}

// NewWriter opens the requested sinks. At least one path must be given.
func NewWriter(csvPath, jsonlPath string) (*Writer, error) {
	if csvPath == "" && jsonlPath == "" {
		return nil, fmt.Errorf("no output path configured")
	}
	w := &Writer{}
	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", csvPath, err)
		}
		w.csvFile = f
		w.csvW = csv.NewWriter(f)
	}
	if jsonlPath != "" {
		f, err := os.Create(jsonlPath)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("create %s: %w", jsonlPath, err)
		}
		w.jsonFile = f
		w.jsonBuf = bufio.NewWriter(f)
		w.jsonEnc = json.NewEncoder(w.jsonBuf)
	}
	return w, nil
}

// Append writes one record to every open sink.
func (w *Writer) Append(rec valueset.Record) error {
	if w.csvW != nil {
		if !w.headerWritten {
			if err := w.csvW.Write(Header); err != nil {
				return fmt.Errorf("write csv header: %w", err)
			}
			w.headerWritten = true
		}
		row := []string{
			strconv.FormatUint(rec.P, 10),
			strconv.FormatUint(rec.A, 10),
			strconv.Itoa(rec.N),
			strconv.Itoa(rec.Cardinality),
			strconv.FormatBool(rec.IsPermutation),
			encodeValues(rec.Values),
		}
		if err := w.csvW.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	if w.jsonEnc != nil {
		if err := w.jsonEnc.Encode(rec); err != nil {
			return fmt.Errorf("write jsonl row: %w", err)
		}
	}
	return nil
}

// Close flushes and closes every open sink, reporting the first error.
func (w *Writer) Close() error {
	var first error
	if w.csvW != nil {
		w.csvW.Flush()
		if err := w.csvW.Error(); err != nil && first == nil {
			first = err
		}
	}
	if w.csvFile != nil {
		if err := w.csvFile.Close(); err != nil && first == nil {
			first = err
		}
	}
	if w.jsonBuf != nil {
		if err := w.jsonBuf.Flush(); err != nil && first == nil {
			first = err
		}
	}
	if w.jsonFile != nil {
		if err := w.jsonFile.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func encodeValues(values []uint64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatUint(v, 10)
	}
	return strings.Join(parts, "|")
}

func decodeValues(s string) ([]uint64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, "|")
	values := make([]uint64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("value set entry %q: %w", part, err)
		}
		values[i] = v
	}
	return values, nil
}

// LoadCSV reads a records table written by Writer.
func LoadCSV(path string) ([]valueset.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}
	records := make([]valueset.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := decodeRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeRow(row []string) (valueset.Record, error) {
	if len(row) != len(Header) {
		return valueset.Record{}, fmt.Errorf("got %d columns want %d", len(row), len(Header))
	}
	p, err := strconv.ParseUint(row[0], 10, 64)
	if err != nil {
		return valueset.Record{}, fmt.Errorf("column p: %w", err)
	}
	a, err := strconv.ParseUint(row[1], 10, 64)
	if err != nil {
		return valueset.Record{}, fmt.Errorf("column a: %w", err)
	}
	n, err := strconv.Atoi(row[2])
	if err != nil {
		return valueset.Record{}, fmt.Errorf("column n: %w", err)
	}
	card, err := strconv.Atoi(row[3])
	if err != nil {
		return valueset.Record{}, fmt.Errorf("column cardinality: %w", err)
	}
	perm, err := strconv.ParseBool(row[4])
	if err != nil {
		return valueset.Record{}, fmt.Errorf("column is_permutation: %w", err)
	}
	values, err := decodeValues(row[5])
	if err != nil {
		return valueset.Record{}, err
	}
	return valueset.Record{
		P:             p,
		A:             a,
		N:             n,
		Cardinality:   card,
		IsPermutation: perm,
		Values:        values,
	}, nil
}

// LoadJSONL reads a records stream written by Writer.
func LoadJSONL(path string) ([]valueset.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var records []valueset.Record
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 1<<16), 1<<22)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var rec valueset.Record
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}
	return records, nil
}

// Load sniffs the format from the file extension: .csv goes through
// LoadCSV, everything else through LoadJSONL.
func Load(path string) ([]valueset.Record, error) {
	if strings.HasSuffix(path, ".csv") {
		return LoadCSV(path)
	}
	return LoadJSONL(path)
}
