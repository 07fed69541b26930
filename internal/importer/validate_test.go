package importer

import (
	"testing"
)

func TestValidateResolvesAliasesByPriority(t *testing.T) {
	rows := []Row{
		{
			"BRAND":        "UPPER",
			"Brand":        "Mixed",
			"PRODUCT NAME": "KitKat",
			"WEIGHT/PACK":  "37 Gm",
		},
	}

	records, errs := Validate(rows)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %d", len(errs))
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Brand != "UPPER" {
		t.Errorf("expected BRAND to win over Brand, got %q", records[0].Brand)
	}
}

func TestValidateFullAliasFallback(t *testing.T) {
	rows := []Row{
		{"Company": "Parle", "Product": "Monaco", "Pack": "63.6 Gm"},
	}

	records, errs := Validate(rows)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if records[0].Brand != "Parle" || records[0].ProductName != "Monaco" || records[0].WeightPack != "63.6 Gm" {
		t.Errorf("unexpected record: %+v", records[0])
	}
}

func TestValidateReportsRowNumberWithHeaderOffset(t *testing.T) {
	rows := []Row{
		{"BRAND/COMPANY": "Nestle", "PRODUCT NAME": "KitKat", "WEIGHT/PACK": "37 Gm"},
		{"BRAND/COMPANY": "Cadbury", "PRODUCT NAME": "Perk", "WEIGHT/PACK": "14 Gm"},
		{"BRAND/COMPANY": "Britannia", "WEIGHT/PACK": "200 Gm"}, // no product name
	}

	records, errs := Validate(rows)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	// Header is spreadsheet row 1, so the 3rd data row is row 4.
	if errs[0].Row != 4 {
		t.Errorf("expected error on row 4, got %d", errs[0].Row)
	}
	if errs[0].Data["BRAND/COMPANY"] != "Britannia" {
		t.Errorf("expected original row data attached, got %v", errs[0].Data)
	}
}

func TestValidateCollectsAllErrorsInOrder(t *testing.T) {
	rows := []Row{
		{"BRAND": "A"},
		{"BRAND": "B", "PRODUCT NAME": "P", "WEIGHT/PACK": "1 Gm"},
		{"PRODUCT NAME": "C"},
		{"WEIGHT/PACK": "2 Gm"},
	}

	records, errs := Validate(rows)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d", len(errs))
	}
	want := []int{2, 4, 5}
	for i, e := range errs {
		if e.Row != want[i] {
			t.Errorf("error %d: expected row %d, got %d", i, want[i], e.Row)
		}
	}
}

func TestValidatePresenceOfEmptyCellCountsAsValid(t *testing.T) {
	// An empty cell under a matching header is present; only absent columns
	// fail validation.
	rows := []Row{
		{"BRAND/COMPANY": "", "PRODUCT NAME": "Maggi", "WEIGHT/PACK": "70 Gm"},
	}

	records, errs := Validate(rows)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if records[0].Brand != "" {
		t.Errorf("expected empty brand preserved, got %q", records[0].Brand)
	}
}

func TestValidateEmptyInput(t *testing.T) {
	records, errs := Validate(nil)
	if len(records) != 0 || len(errs) != 0 {
		t.Fatalf("expected empty results, got %d records %d errors", len(records), len(errs))
	}
}
