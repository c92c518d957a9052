package ai

import (
	"strings"

	"sqlgenie/models"
)

var templateSQL = map[models.SQLTemplate]string{
	models.TemplateCustomersChennai: "SELECT * FROM customers WHERE city = 'Chennai';",
	models.TemplateSalesLastMonth:   "SELECT * FROM sales WHERE created_at >= DATE_SUB(NOW(), INTERVAL 1 MONTH);",
	models.TemplateCountOrders:      "SELECT COUNT(*) as total_orders FROM orders;",
	models.TemplateTopProducts:      "SELECT product_name, SUM(quantity) as total_sold FROM order_items GROUP BY product_name ORDER BY total_sold DESC LIMIT 10;",
	models.TemplateDefault:          "SELECT * FROM customers LIMIT 10;",
}

type rule struct {
	keywords [2]string
	template models.SQLTemplate
}

// Order matters: a question can contain several keyword pairs and the first
// pair found wins.
var rules = []rule{
	{keywords: [2]string{"customers", "chennai"}, template: models.TemplateCustomersChennai},
	{keywords: [2]string{"sales", "last month"}, template: models.TemplateSalesLastMonth},
	{keywords: [2]string{"count", "orders"}, template: models.TemplateCountOrders},
	{keywords: [2]string{"top", "products"}, template: models.TemplateTopProducts},
}

// Match maps a question to a template. Both keywords of a rule must appear
// somewhere in the lower-cased question; anything else gets the default.
func Match(query string) models.SQLTemplate {
	lowerQuery := strings.ToLower(query)

	for _, r := range rules {
		if strings.Contains(lowerQuery, r.keywords[0]) && strings.Contains(lowerQuery, r.keywords[1]) {
			return r.template
		}
	}

	return models.TemplateDefault
}

// SQLFor returns the SQL text of a template, or the default template's text
// for unknown names.
func SQLFor(t models.SQLTemplate) string {
	if sql, ok := templateSQL[t]; ok {
		return sql
	}
	return templateSQL[models.TemplateDefault]
}
