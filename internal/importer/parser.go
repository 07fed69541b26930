package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is one non-header spreadsheet row, keyed by header cell text. Header
// case is preserved because alias resolution is case-sensitive.
type Row map[string]string

// ParseWorkbook decodes an uploaded workbook into rows. The first sheet is
// used, its first row is treated as the header, and every following row
// becomes one Row. Cell values are trimmed. An undecodable payload fails the
// whole upload.
func ParseWorkbook(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in workbook")
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("workbook has no header row")
	}

	headers := cells[0]
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	rows := make([]Row, 0, len(cells)-1)
	for _, cellRow := range cells[1:] {
		row := make(Row)
		for i, value := range cellRow {
			if i < len(headers) && headers[i] != "" {
				row[headers[i]] = strings.TrimSpace(value)
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
