package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/samadhii99/Shopping-Store/auth"
	productcontroller "github.com/samadhii99/Shopping-Store/controllers/product"
)

// SetupSessionRoutes registers the anonymous session endpoint.
func SetupSessionRoutes(r *gin.Engine) {
	r.POST("/session", auth.CreateSession())
}

// SetupProductRoutes registers the public catalog endpoints.
func SetupProductRoutes(r *gin.Engine, deps Deps) {
	products := r.Group("/products")
	{
		products.GET("/", productcontroller.GetProducts(deps.Catalog))             // GET /products
		products.GET("/categories", productcontroller.GetCategories(deps.Catalog)) // GET /products/categories
		products.GET("/export", productcontroller.ExportProductsToExcel(deps.Catalog))
		products.GET("/:id", productcontroller.GetProductByID(deps.Catalog)) // GET /products/:id
	}
}
