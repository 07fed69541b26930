package importer

import (
	"catalog-service/internal/models"
)

// Header aliases accepted for each canonical field, in priority order. The
// lookup is case-sensitive: a sheet carrying both "BRAND" and "Brand" columns
// resolves to the "BRAND" value.
var (
	brandAliases       = []string{"BRAND/COMPANY", "BRAND", "COMPANY", "Brand", "Company"}
	productNameAliases = []string{"PRODUCT NAME", "Product Name", "PRODUCT_NAME", "Product"}
	weightPackAliases  = []string{"WEIGHT/PACK", "Weight/Pack", "WEIGHT_PACK", "Weight", "Pack"}
)

// Record is a validated, normalized catalog row ready for insertion.
type Record struct {
	Brand       string
	ProductName string
	WeightPack  string
}

// resolve returns the value of the first alias present in the row. Presence is
// what counts: an empty cell under a matching header still resolves.
func resolve(row Row, aliases []string) (string, bool) {
	for _, alias := range aliases {
		if value, ok := row[alias]; ok {
			return value, true
		}
	}
	return "", false
}

// Validate evaluates every row independently and returns the valid records
// plus one RowError per invalid row, both in original order. Row numbers are
// 1-based spreadsheet rows: data row i reports as row i+2 since the header
// occupies row 1.
func Validate(rows []Row) ([]Record, []models.RowError) {
	records := make([]Record, 0, len(rows))
	var errs []models.RowError

	for i, row := range rows {
		brand, brandOK := resolve(row, brandAliases)
		name, nameOK := resolve(row, productNameAliases)
		pack, packOK := resolve(row, weightPackAliases)

		if !brandOK || !nameOK || !packOK {
			errs = append(errs, models.RowError{
				Row:     i + 2,
				Message: "Missing required fields (brand, product name, weight/pack)",
				Data:    row,
			})
			continue
		}

		records = append(records, Record{
			Brand:       brand,
			ProductName: name,
			WeightPack:  pack,
		})
	}

	return records, errs
}
