package scout

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadExcludeList reads channel names/IDs/URLs from the first column of a
// CSV or XLSX file into a membership set. The first row is a header and is
// skipped. Malformed or unreadable files degrade to an empty set — a bad
// exclude list must never block a search.
func LoadExcludeList(path string) map[string]struct{} {
	if path == "" {
		return nil
	}
	var values []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		values = readXLSXColumn(path)
	default:
		values = readCSVColumn(path)
	}

	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

func readCSVColumn(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		slog.Warn("exclude: cannot open file", slog.String("path", path), slog.Any("error", err))
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // column counts vary across exported sheets
	var out []string
	first := true
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Warn("exclude: csv parse failed, using rows read so far", slog.Any("error", err))
			break
		}
		if first {
			first = false
			continue
		}
		if len(record) > 0 {
			out = append(out, record[0])
		}
	}
	return out
}

func readXLSXColumn(path string) []string {
	f, err := excelize.OpenFile(path)
	if err != nil {
		slog.Warn("exclude: cannot open spreadsheet", slog.String("path", path), slog.Any("error", err))
		return nil
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		slog.Warn("exclude: cannot read sheet", slog.Any("error", err))
		return nil
	}
	var out []string
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		out = append(out, row[0])
	}
	return out
}
