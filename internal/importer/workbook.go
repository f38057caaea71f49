package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// Sheet is one grid of cell text. Rows may be ragged.
type Sheet struct {
	Name string
	Rows [][]string
}

// Workbook hides the file format from the layout heuristics.
type Workbook interface {
	Sheets() ([]Sheet, error)
}

// OpenWorkbook picks an adapter by file extension.
func OpenWorkbook(filename string, data []byte) (Workbook, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return csvWorkbook{name: strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)), data: data}, nil
	case ".xlsx":
		return xlsxWorkbook{data: data}, nil
	case ".xls":
		return xlsWorkbook{data: data}, nil
	default:
		return nil, fmt.Errorf("unsupported file type %q, expected .csv, .xlsx or .xls", filepath.Ext(filename))
	}
}

type csvWorkbook struct {
	name string
	data []byte
}

func (w csvWorkbook) Sheets() ([]Sheet, error) {
	r := csv.NewReader(bytes.NewReader(w.data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return []Sheet{{Name: w.name, Rows: rows}}, nil
}

type xlsxWorkbook struct {
	data []byte
}

func (w xlsxWorkbook) Sheets() ([]Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(w.data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	var sheets []Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		sheets = append(sheets, Sheet{Name: name, Rows: rows})
	}
	return sheets, nil
}

type xlsWorkbook struct {
	data []byte
}

func (w xlsWorkbook) Sheets() ([]Sheet, error) {
	book, err := xls.OpenReader(bytes.NewReader(w.data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}

	var sheets []Sheet
	for i := 0; i < book.NumSheets(); i++ {
		ws := book.GetSheet(i)
		if ws == nil {
			continue
		}
		rows := make([][]string, 0, int(ws.MaxRow)+1)
		for r := 0; r <= int(ws.MaxRow); r++ {
			row := ws.Row(r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			cells := make([]string, 0, row.LastCol())
			for c := 0; c < row.LastCol(); c++ {
				cells = append(cells, row.Col(c))
			}
			rows = append(rows, cells)
		}
		sheets = append(sheets, Sheet{Name: ws.Name, Rows: rows})
	}
	return sheets, nil
}
