// Package graphql defines the read-only query root served at /api/graphql.
package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/stockwise/app/services"
	gql "github.com/shashiranjanraj/stockwise/pkg/graphql"
)

var itemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "InventoryItem",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.Int},
		"name":       &graphql.Field{Type: graphql.String},
		"category":   &graphql.Field{Type: graphql.String},
		"quantity":   &graphql.Field{Type: graphql.Int},
		"unit_price": &graphql.Field{Type: graphql.Float},
		"notes":      &graphql.Field{Type: graphql.String},
	},
})

var summaryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "InventorySummary",
	Fields: graphql.Fields{
		"total_items":      &graphql.Field{Type: graphql.Int},
		"total_quantity":   &graphql.Field{Type: graphql.Int},
		"total_value":      &graphql.Field{Type: graphql.Float},
		"categories_count": &graphql.Field{Type: graphql.Int},
	},
})

var categoryStatusType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CategoryStatus",
	Fields: graphql.Fields{
		"category":        &graphql.Field{Type: graphql.String},
		"total":           &graphql.Field{Type: graphql.Int},
		"min_stock_level": &graphql.Field{Type: graphql.Int},
		"max_stock_level": &graphql.Field{Type: graphql.Int},
		"status":          &graphql.Field{Type: graphql.String},
	},
})

// NewSchema builds the read-only query root: items, summary and
// categoryStatus.
func NewSchema() (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"items": &graphql.Field{
				Type: graphql.NewList(itemType),
				Args: graphql.FieldConfigArgument{
					"search":   &graphql.ArgumentConfig{Type: graphql.String},
					"category": &graphql.ArgumentConfig{Type: graphql.String},
					"page":     &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 1},
					"per_page": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					search, _ := p.Args["search"].(string)
					category, _ := p.Args["category"].(string)
					page, _ := p.Args["page"].(int)
					perPage, _ := p.Args["per_page"].(int)

					items, _, err := services.NewInventoryService().List(search, category, page, perPage)
					return items, err
				},
			},
			"summary": &graphql.Field{
				Type: summaryType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return services.NewReportService().Summary()
				},
			},
			"categoryStatus": &graphql.Field{
				Type: graphql.NewList(categoryStatusType),
				Args: graphql.FieldConfigArgument{
					"category": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					svc := services.NewStockStatusService()
					if category, ok := p.Args["category"].(string); ok && category != "" {
						status, err := svc.EvaluateCategory(category)
						if err != nil {
							return nil, err
						}
						return []services.CategoryStatus{status}, nil
					}
					return svc.EvaluateAll()
				},
			},
		},
	})

	return gql.NewSchema(query)
}
