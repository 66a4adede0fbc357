package mandi

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportXLSX renders a price list as a spreadsheet for offline sharing.
func ExportXLSX(prices []Price) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Prices"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Commodity", "Variety", "Market", "District", "State", "Min Price", "Max Price", "Modal Price", "Trend", "Date"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for r, p := range prices {
		row := []any{p.Commodity, p.Variety, p.Market, p.District, p.State, p.MinPrice, p.MaxPrice, p.ModalPrice, p.Trend, p.Date}
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "J", 16); err != nil {
		return nil, fmt.Errorf("set widths: %w", err)
	}
	return f, nil
}
