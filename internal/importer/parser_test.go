package importer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes a single-sheet workbook with the given cell rows, the
// first row being the header.
func buildWorkbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue("Sheet1", cell, value); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return &buf
}

func TestParseWorkbook(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		{"BRAND/COMPANY", "PRODUCT NAME", "WEIGHT/PACK"},
		{"Nestle", "KitKat", "37 Gm"},
		{"Cadbury", "Perk", "14 Gm"},
	})

	rows, err := ParseWorkbook(buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["BRAND/COMPANY"] != "Nestle" || rows[1]["PRODUCT NAME"] != "Perk" {
		t.Errorf("unexpected rows: %v", rows)
	}
}

func TestParseWorkbookTrimsValuesAndHeaders(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		{"  BRAND  ", "PRODUCT NAME", "WEIGHT/PACK"},
		{"  Parle ", " Monaco", "63.6 Gm "},
	})

	rows, err := ParseWorkbook(buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if rows[0]["BRAND"] != "Parle" {
		t.Errorf("expected trimmed header and value, got %v", rows[0])
	}
	if rows[0]["PRODUCT NAME"] != "Monaco" || rows[0]["WEIGHT/PACK"] != "63.6 Gm" {
		t.Errorf("expected trimmed values, got %v", rows[0])
	}
}

func TestParseWorkbookPreservesHeaderCase(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		{"Brand", "Product Name", "Weight/Pack"},
		{"Veeba", "Mint Mayo", "255 Gm"},
	})

	rows, err := ParseWorkbook(buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := rows[0]["Brand"]; !ok {
		t.Errorf("expected header case preserved, got keys %v", rows[0])
	}
	if _, ok := rows[0]["brand"]; ok {
		t.Errorf("headers must not be lowercased")
	}
}

func TestParseWorkbookShortRowsOmitTrailingColumns(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		{"BRAND/COMPANY", "PRODUCT NAME", "WEIGHT/PACK"},
		{"Nestle", "Maggi"},
	})

	rows, err := ParseWorkbook(buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if _, ok := rows[0]["WEIGHT/PACK"]; ok {
		t.Errorf("missing trailing cell must be absent, got %v", rows[0])
	}
}

func TestParseWorkbookRejectsGarbage(t *testing.T) {
	_, err := ParseWorkbook(strings.NewReader("definitely not a spreadsheet"))
	if err == nil {
		t.Fatal("expected parse error for non-workbook payload")
	}
}
