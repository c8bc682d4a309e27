package results

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"dickson-valuesets/valueset"
)

func writeSample(t *testing.T, csvPath, jsonlPath string) []valueset.Record {
	t.Helper()
	records, err := valueset.Sweep(5, 1)
	require.NoError(t, err)

	w, err := NewWriter(csvPath, jsonlPath)
	require.NoError(t, err)
	for _, rec := range records {
		require.NoError(t, w.Append(rec))
	}
	require.NoError(t, w.Close())
	return records
}

func TestCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "records.csv")
	records := writeSample(t, csvPath, "")

	loaded, err := LoadCSV(csvPath)
	require.NoError(t, err)
	require.Equal(t, records, loaded)
	require.Equal(t, valueset.Digest(records), valueset.Digest(loaded))
}

func TestJSONLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	jsonlPath := filepath.Join(dir, "records.jsonl")
	records := writeSample(t, "", jsonlPath)

	loaded, err := LoadJSONL(jsonlPath)
	require.NoError(t, err)
	require.Equal(t, records, loaded)
}

func TestLoadSniffsFormat(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "records.csv")
	jsonlPath := filepath.Join(dir, "records.jsonl")
	records := writeSample(t, csvPath, jsonlPath)

	fromCSV, err := Load(csvPath)
	require.NoError(t, err)
	fromJSONL, err := Load(jsonlPath)
	require.NoError(t, err)
	require.Equal(t, records, fromCSV)
	require.Equal(t, records, fromJSONL)
}

func TestWriterRequiresAPath(t *testing.T) {
	_, err := NewWriter("", "")
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}
