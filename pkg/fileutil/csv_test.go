package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tirasundara/banking-ledger/pkg/fileutil"
)

func TestCSVReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	content := "a,b\n# comment\n1,2\n3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	reader := fileutil.NewCSVReader(path)

	header, err := reader.ReadHeader()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(header) != 2 || header[0] != "a" || header[1] != "b" {
		t.Errorf("Unexpected header: %v", header)
	}

	var lines []int
	var rows [][]string
	err = reader.ReadAndProcessByRow(func(line int, row []string) error {
		lines = append(lines, line)
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(rows) != 2 || len(rows[1]) != 1 {
		t.Fatalf("Expected 2 rows of varying length, got %v", rows)
	}

	if lines[0] != 3 || lines[1] != 4 {
		t.Errorf("Expected line numbers 3 and 4, got %v", lines)
	}

	stop := errors.New("stop")
	if err := reader.ReadAndProcessByRow(func(int, []string) error { return stop }); !errors.Is(err, stop) {
		t.Errorf("Expected processor error to be returned, got %v", err)
	}
}

func TestCSVReader_MissingFile(t *testing.T) {
	reader := fileutil.NewCSVReader(filepath.Join(t.TempDir(), "missing.csv"))

	if _, err := reader.ReadHeader(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}
