package config

import "sqlgenie/models"

// SampleSchema is the schema shown next to the query box. Table order is the
// display order.
var SampleSchema = []models.DatabaseTable{
	{
		Name: "customers",
		Columns: []models.DatabaseColumn{
			{Name: "id", Type: "INT", Primary: true},
			{Name: "name", Type: "VARCHAR(255)"},
			{Name: "email", Type: "VARCHAR(255)"},
			{Name: "city", Type: "VARCHAR(100)"},
			{Name: "created_at", Type: "TIMESTAMP"},
		},
	},
	{
		Name: "orders",
		Columns: []models.DatabaseColumn{
			{Name: "id", Type: "INT", Primary: true},
			{Name: "customer_id", Type: "INT"},
			{Name: "total_amount", Type: "DECIMAL(10,2)"},
			{Name: "status", Type: "VARCHAR(50)"},
			{Name: "created_at", Type: "TIMESTAMP"},
		},
	},
	{
		Name: "products",
		Columns: []models.DatabaseColumn{
			{Name: "id", Type: "INT", Primary: true},
			{Name: "product_name", Type: "VARCHAR(255)"},
			{Name: "price", Type: "DECIMAL(10,2)"},
			{Name: "category", Type: "VARCHAR(100)"},
			{Name: "inventory_count", Type: "INT"},
		},
	},
	{
		Name: "order_items",
		Columns: []models.DatabaseColumn{
			{Name: "id", Type: "INT", Primary: true},
			{Name: "order_id", Type: "INT"},
			{Name: "product_id", Type: "INT"},
			{Name: "quantity", Type: "INT"},
			{Name: "unit_price", Type: "DECIMAL(10,2)"},
		},
	},
}

var SampleQueries = []string{
	"Show me all customers from Chennai",
	"Count total orders from last month",
	"What are the top selling products?",
	"Find customers who haven't ordered recently",
	"Show sales by region",
	"List products with low inventory",
}

var QuerySuggestions = []string{
	"Show me all customers from Chennai",
	"What are the top 5 best selling products?",
	"Count orders from last month",
}
