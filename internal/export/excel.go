// Package export writes catalog lists as Excel workbooks. The core hands it
// a plain, already filtered and sorted entity list; no query logic lives
// here.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/tealeg/xlsx"

	"futurewear/internal/models"
)

// WriteProducts writes the product list as an xlsx workbook.
func WriteProducts(w io.Writer, products []models.Product) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range []string{"ID", "Name", "Category", "Price", "Sale Price", "Is New", "Is Bestseller", "Is On Sale"} {
		headerRow.AddCell().SetValue(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(strings.ToUpper(string(p.Category)))
		row.AddCell().SetValue(p.Price)
		if p.SalePrice != nil {
			row.AddCell().SetValue(*p.SalePrice)
		} else {
			row.AddCell().SetValue("")
		}
		row.AddCell().SetValue(yesNo(p.IsNew))
		row.AddCell().SetValue(yesNo(p.IsBestseller))
		row.AddCell().SetValue(yesNo(p.IsOnSale))
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteDrops writes the drop list as an xlsx workbook.
func WriteDrops(w io.Writer, drops []models.Drop) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Drops")
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range []string{"ID", "Name", "Price", "Availability"} {
		headerRow.AddCell().SetValue(h)
	}

	for _, d := range drops {
		row := sheet.AddRow()
		row.AddCell().SetValue(d.ID)
		row.AddCell().SetValue(d.Name)
		row.AddCell().SetValue(d.Price)
		if d.Availability == models.AvailabilityAvailable {
			row.AddCell().SetValue("Available")
		} else {
			row.AddCell().SetValue("Coming Soon")
		}
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
