package catalog

import "github.com/samadhii99/Shopping-Store/models"

// envogueProducts is the storefront's product line. IDs are stable; the
// client deep-links to them.
var envogueProducts = []models.Product{
	{
		ID: 1, Name: "Classic T-Shirt", Brand: "Envogue",
		SalePrice: 3250.00, InstallmentPrice: 1083.33,
		Image:  "/images/products/tshirt.jpg",
		Colors: []string{"White"}, InStock: false, Category: "Casual",
	},
	{
		ID: 2, Name: "Denim Jacket", Brand: "Envogue",
		SalePrice: 9750.00, InstallmentPrice: 3250.00,
		Image:  "/images/products/denim-jacket.jpg",
		Colors: []string{"Black", "White"}, InStock: true, Category: "Casual",
	},
	{
		ID: 3, Name: "Sneakers", Brand: "Envogue",
		SalePrice: 8750.00, InstallmentPrice: 2916.67,
		Image:  "/images/products/sneaker.jpg",
		Colors: []string{"Black", "Blue"}, InStock: true, Category: "Casual",
	},
	{
		ID: 4, Name: "Backpack", Brand: "Envogue",
		SalePrice: 6750.00, InstallmentPrice: 2250.00,
		Image:  "/images/products/backpack.jpg",
		Colors: []string{"Black", "Purple"}, InStock: false, Category: "Formal",
	},
	{
		ID: 5, Name: "Hoodie", Brand: "Envogue",
		SalePrice: 5625.00, InstallmentPrice: 1875.00,
		Image:  "/images/products/hoodie.jpg",
		Colors: []string{"Brown"}, InStock: true, Category: "Formal",
	},
	{
		ID: 6, Name: "Running Shoes", Brand: "Envogue",
		SalePrice: 11250.00, InstallmentPrice: 3750.00,
		Image:  "/images/products/running shoes.jpg",
		Colors: []string{"Brown", "Maroon"}, InStock: true, Category: "Formal",
	},
	{
		ID: 7, Name: "Leather Wallet", Brand: "Envogue",
		SalePrice: 4500.00, InstallmentPrice: 1500.00,
		Image:  "/images/products/wallet.jpg",
		Colors: []string{"White"}, InStock: false, Category: "Casual",
	},
	{
		ID: 8, Name: "Sunglasses", Brand: "Envogue",
		SalePrice: 3125.00, InstallmentPrice: 1041.67,
		Image:  "/images/products/sunglasses.jpg",
		Colors: []string{"Black", "Brown"}, InStock: true, Category: "Casual",
	},
	{
		ID: 9, Name: "Smartwatch", Brand: "Envogue",
		SalePrice: 14000.00, InstallmentPrice: 4666.67,
		Image:  "/images/products/Smartwatch.jpg",
		Colors: []string{"Black", "Brown"}, InStock: true, Category: "Casual",
	},
	{
		ID: 10, Name: "Wireless Earbuds", Brand: "Envogue",
		SalePrice: 6750.00, InstallmentPrice: 2250.00,
		Image:  "/images/products/earbuds.jpg",
		Colors: []string{"Black", "Brown"}, InStock: false, Category: "Formal",
	},
	{
		ID: 11, Name: "Gym Bag", Brand: "Envogue",
		SalePrice: 5000.00, InstallmentPrice: 1666.67,
		Image:  "/images/products/gym-bag.jpg",
		Colors: []string{"Brown"}, InStock: true, Category: "Formal",
	},
	{
		ID: 12, Name: "Casual Watch", Brand: "Envogue",
		SalePrice: 8125.00, InstallmentPrice: 2708.33,
		Image:  "/images/products/casual-watch.jpg",
		Colors: []string{"Brown", "Maroon"}, InStock: true, Category: "Formal",
	},
	{
		ID: 13, Name: "Beanie", Brand: "Envogue",
		SalePrice: 2500.00, InstallmentPrice: 833.33,
		Image:  "/images/products/beanie.jpg",
		Colors: []string{"Black", "Brown"}, InStock: true, Category: "Casual",
	},
	{
		ID: 14, Name: "Laptop Sleeve", Brand: "Envogue",
		SalePrice: 2000.00, InstallmentPrice: 666.67,
		Image:  "/images/products/laptop-sleeve.jpg",
		Colors: []string{"Black", "Brown"}, InStock: false, Category: "Formal",
	},
	{
		ID: 15, Name: "Water Bottle", Brand: "Envogue",
		SalePrice: 2000.00, InstallmentPrice: 666.67,
		Image:  "/images/products/water-bottle.jpg",
		Colors: []string{"Brown"}, InStock: true, Category: "Formal",
	},
	{
		ID: 16, Name: "Leather Belt", Brand: "Envogue",
		SalePrice: 3250.00, InstallmentPrice: 1083.33,
		Image:  "/images/products/leather-belt.jpg",
		Colors: []string{"Brown", "Maroon"}, InStock: true, Category: "Casual",
	},
}
