package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"catalog-service/internal/events"
	"catalog-service/internal/importer"
	"catalog-service/internal/models"
	"catalog-service/internal/repository"
)

// canonicalHeaders are the column names used for the template and export.
// Uploads may use any of the accepted aliases.
var canonicalHeaders = []string{"BRAND/COMPANY", "PRODUCT NAME", "WEIGHT/PACK"}

type ImportHandler struct {
	store          repository.CatalogStore
	publisher      *events.Publisher
	logger         *logrus.Entry
	maxUploadBytes int64

	// replaceMu serializes catalog replacements. Overlapping uploads fail
	// fast instead of interleaving their delete/insert phases.
	replaceMu sync.Mutex
}

func NewImportHandler(store repository.CatalogStore, publisher *events.Publisher, maxUploadBytes int64, logger *logrus.Logger) *ImportHandler {
	return &ImportHandler{
		store:          store,
		publisher:      publisher,
		logger:         logger.WithField("component", "import"),
		maxUploadBytes: maxUploadBytes,
	}
}

// isSpreadsheetFile accepts only Excel workbooks, by extension.
func isSpreadsheetFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return true
	}
	return false
}

// UploadExcel replaces the entire catalog from an uploaded workbook
// POST /api/admin/upload-excel (multipart field "excel")
//
// Rows failing validation are collected and reported; they abort the upload
// only when no row at all is valid. The replacement itself is atomic: readers
// see the full old catalog or the full new one, never a partial state.
func (h *ImportHandler) UploadExcel(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	file, header, err := c.Request.FormFile("excel")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
				Success: false,
				Error: models.Error{
					Code:    "FILE_TOO_LARGE",
					Message: fmt.Sprintf("Uploaded file exceeds the %d byte limit", maxBytesErr.Limit),
				},
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "FILE_REQUIRED",
				Message: "Please upload an Excel file",
			},
		})
		return
	}
	defer file.Close()

	if !isSpreadsheetFile(header.Filename) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "INVALID_FILE_TYPE",
				Message: "Invalid file type. Only .xlsx and .xls files are accepted",
			},
		})
		return
	}

	rows, err := importer.ParseWorkbook(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "PARSE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	records, rowErrors := importer.Validate(rows)

	if len(records) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "NO_VALID_ROWS",
				Message: "No valid rows found in the uploaded file",
			},
			Errors: capErrors(rowErrors, models.MaxFatalErrors),
		})
		return
	}

	if !h.replaceMu.TryLock() {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "REPLACEMENT_IN_PROGRESS",
				Message: "Another catalog upload is in progress",
			},
		})
		return
	}
	defer h.replaceMu.Unlock()

	inserted, err := h.store.ReplaceAll(c.Request.Context(), records)
	if err != nil {
		h.logger.WithError(err).Error("Catalog replacement failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "REPLACE_FAILED",
				Message: "Failed to replace catalog",
			},
		})
		return
	}

	h.logger.WithFields(logrus.Fields{
		"imported": len(inserted),
		"skipped":  len(rowErrors),
		"file":     header.Filename,
	}).Info("Catalog replaced")

	h.publisher.PublishCatalogReplaced(len(inserted), len(rowErrors))

	c.JSON(http.StatusOK, models.ImportResult{
		Message:       fmt.Sprintf("Successfully imported %d products", len(inserted)),
		ImportedCount: len(inserted),
		Errors:        capErrors(rowErrors, models.MaxWarningErrors),
	})
}

// capErrors bounds the reported error list. The result is never nil so the
// response always carries an errors array.
func capErrors(errs []models.RowError, limit int) []models.RowError {
	if len(errs) > limit {
		errs = errs[:limit]
	}
	if errs == nil {
		errs = []models.RowError{}
	}
	return errs
}

// GetImportTemplate downloads an empty workbook with the canonical headers
// GET /api/admin/import-template
func (h *ImportHandler) GetImportTemplate(c *gin.Context) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Products"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, name := range canonicalHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, name)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)

		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 25)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=catalog_import_template.xlsx")

	f.Write(c.Writer)
}

// ExportExcel downloads the current catalog as a workbook
// GET /api/admin/export-excel
func (h *ImportHandler) ExportExcel(c *gin.Context) {
	products, err := h.store.GetAllProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "STORE_ERROR",
				Message: "Failed to fetch products",
			},
		})
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Products"
	f.SetSheetName("Sheet1", sheetName)

	for i, name := range canonicalHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, name)
	}

	for i, product := range products {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), product.Brand)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), product.ProductName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), product.WeightPack)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=catalog_export.xlsx")

	f.Write(c.Writer)
}
