package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/samadhii99/Shopping-Store/catalog"
)

// GET /products
//
// Lists the catalog with optional filtering and sorting:
// ?search=, ?category=, ?min_price=, ?max_price=, ?sort_by=price, ?order=asc|desc
func GetProducts(src catalog.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := catalog.Filter{
			Search:   c.Query("search"),
			Category: c.Query("category"),
			SortBy:   c.Query("sort_by"),
		}

		sortOrder := strings.ToLower(c.DefaultQuery("order", "asc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "asc"
		}
		filter.SortOrder = sortOrder

		if raw := c.Query("min_price"); raw != "" {
			mp, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			filter.MinPrice = mp
		}
		if raw := c.Query("max_price"); raw != "" {
			mp, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			filter.MaxPrice = mp
		}

		products := filter.Apply(src.Products())
		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"total":    len(products),
		})
	}
}

// GET /products/categories
func GetCategories(src catalog.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats := catalog.Summarize(src)
		c.JSON(http.StatusOK, gin.H{"categories": stats.Categories})
	}
}
