package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/samadhii99/Shopping-Store/catalog"
)

// GET /products/export
//
// Streams the catalog as an Excel workbook.
func ExportProductsToExcel(src catalog.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Brand", "SalePrice", "InstallmentPrice",
			"Colors", "InStock", "Category", "Image",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range src.Products() {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Brand)
			row.AddCell().SetValue(p.SalePrice)
			row.AddCell().SetValue(p.InstallmentPrice)
			row.AddCell().SetValue(strings.Join(p.Colors, ", "))
			row.AddCell().SetValue(p.InStock)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Image)
		}

		c.Header("Content-Description", "File Transfer")
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}
