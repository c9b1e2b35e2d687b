package deck

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ImportConfig describes the spreadsheet layout. Columns are zero-based.
type ImportConfig struct {
	Sheet             string // xlsx only; empty means the first sheet
	TextColumn        int
	TranslationColumn int
	TopicColumn       int
	LevelColumn       int
	SkipHeader        bool
	DefaultTopic      string
	DefaultLevel      Level
}

// DefaultImportConfig expects text, translation, topic, level in columns
// A to D with a header row.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		TextColumn:        0,
		TranslationColumn: 1,
		TopicColumn:       2,
		LevelColumn:       3,
		SkipHeader:        true,
		DefaultTopic:      "import",
		DefaultLevel:      LevelA1,
	}
}

// ImportResult summarizes a spreadsheet import.
type ImportResult struct {
	Processed int
	Imported  int
	Skipped   int
	Errors    []string
	Deck      *Deck
}

// ImportSpreadsheet reads phrases from an .xlsx or .csv file. Rows with
// problems are skipped and reported in Errors; the import itself only
// fails if the file cannot be read.
func ImportSpreadsheet(path string, cfg ImportConfig) (*ImportResult, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(path, cfg.Sheet)
	default:
		return nil, fmt.Errorf("deck: unsupported spreadsheet type %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return importRows(name, rows, cfg), nil
}

func importRows(name string, rows [][]string, cfg ImportConfig) *ImportResult {
	res := &ImportResult{}
	seen := make(map[string]bool)
	var phrases []Phrase

	for i, row := range rows {
		if i == 0 && cfg.SkipHeader {
			continue
		}
		rowNum := i + 1

		p := Phrase{
			Text:        cell(row, cfg.TextColumn),
			Translation: cell(row, cfg.TranslationColumn),
			Topic:       cell(row, cfg.TopicColumn),
			Level:       Level(cell(row, cfg.LevelColumn)),
		}
		if p.Text == "" && p.Translation == "" {
			// Blank spacer rows are common in hand-made sheets.
			continue
		}
		res.Processed++

		if p.Topic == "" {
			p.Topic = cfg.DefaultTopic
		}
		if p.Level == "" {
			p.Level = cfg.DefaultLevel
		}

		if err := normalizePhrase(&p, i); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				err = errors.New(verr.Message)
			}
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		if seen[p.ID] {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: duplicate phrase %q", rowNum, p.Text))
			continue
		}
		seen[p.ID] = true
		phrases = append(phrases, p)
		res.Imported++
	}

	// Every phrase was normalized and de-duplicated above, so New cannot fail.
	res.Deck, _ = New(name, phrases)
	return res
}

func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("deck: open spreadsheet %q: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("deck: spreadsheet %q has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("deck: read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("deck: open csv %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("deck: read csv %q: %w", path, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
