// Package routes registers the full HTTP surface on the router.
package routes

import (
	"net/http"

	"github.com/shashiranjanraj/stockwise/app/controllers"
	appgraphql "github.com/shashiranjanraj/stockwise/app/graphql"
	"github.com/shashiranjanraj/stockwise/app/listeners"
	"github.com/shashiranjanraj/stockwise/pkg/graphql"
	"github.com/shashiranjanraj/stockwise/pkg/logger"
	"github.com/shashiranjanraj/stockwise/pkg/metrics"
	"github.com/shashiranjanraj/stockwise/pkg/middleware"
	"github.com/shashiranjanraj/stockwise/pkg/rbac"
	"github.com/shashiranjanraj/stockwise/pkg/router"
	"github.com/shashiranjanraj/stockwise/pkg/ws"
)

// RegisterAPI mounts every route. CRUD endpoints require a valid token but
// are not gated by role; only user management is Admin-only.
func RegisterAPI(r *router.Router) {
	authController := controllers.NewAuthController()
	inventory := controllers.NewInventoryController()
	categoryLevels := controllers.NewCategoryStockLevelController()
	dashboard := controllers.NewDashboardController()
	users := controllers.NewUserController()

	api := r.Group("/api")

	api.Post("/register", "auth.register", authController.Register)
	api.Post("/login", "auth.login", authController.Login)
	api.Post("/logout", "auth.logout", authController.Logout)

	protected := api.Group("", middleware.Auth)

	protected.Get("/inventory", "inventory.index", inventory.Index)
	protected.Post("/inventory", "inventory.store", inventory.Store)
	protected.Get("/inventory/recent-logs", "inventory.recent_logs", inventory.RecentLogs)
	protected.Get("/inventory/{id}", "inventory.show", inventory.Show)
	protected.Put("/inventory/{id}", "inventory.update", inventory.Update)
	protected.Delete("/inventory/{id}", "inventory.delete", inventory.Delete)

	protected.Get("/category-levels", "category_levels.index", categoryLevels.Index)
	protected.Post("/category-levels", "category_levels.store", categoryLevels.Store)
	protected.Get("/category-levels/status", "category_levels.status", categoryLevels.Status)
	protected.Put("/category-levels/{id}", "category_levels.update", categoryLevels.Update)
	protected.Delete("/category-levels/{id}", "category_levels.delete", categoryLevels.Delete)

	// The reference client fetches this feed under a longer alias.
	protected.Get("/category-stock-levels/recent-logs", "category_levels.recent_logs", categoryLevels.RecentLogs)

	protected.Get("/inventory/dashboard/stats", "dashboard.stats", dashboard.Stats)
	protected.Get("/inventory/dashboard/stock-movement", "dashboard.stock_movement", dashboard.StockMovement)
	protected.Get("/inventory/dashboard/category-distribution", "dashboard.category_distribution", dashboard.CategoryDistribution)
	protected.Get("/inventory/dashboard/critical-stock", "dashboard.critical_stock", dashboard.CriticalStock)
	protected.Get("/inventory/dashboard/total-quantity", "dashboard.total_quantity", dashboard.TotalQuantity)
	protected.Get("/inventory/dashboard/total-stock-value", "dashboard.total_stock_value", dashboard.TotalStockValue)
	protected.Get("/inventory/dashboard/summary", "dashboard.summary", dashboard.Summary)
	protected.Get("/inventory/dashboard/details", "dashboard.details", dashboard.Details)
	protected.Post("/inventory/dashboard/export", "dashboard.export", dashboard.Export)

	admin := api.Group("/users", middleware.Auth, rbac.HasRole(rbac.RoleAdmin))
	admin.Get("", "users.index", users.Index)
	admin.Post("", "users.store", users.Store)
	admin.Put("/{id}", "users.update", users.Update)
	admin.Delete("/{id}", "users.delete", users.Delete)

	registerGraphQL(r)

	r.HandleFunc("/ws/dashboard", func(w http.ResponseWriter, req *http.Request) {
		ws.Upgrade(w, req, listeners.Hub)
	})

	r.Handle("/metrics", metrics.Handler())
}

func registerGraphQL(r *router.Router) {
	schema, err := appgraphql.NewSchema()
	if err != nil {
		logger.Error("graphql schema build failed", "error", err)
		return
	}
	r.Handle("/api/graphql", graphql.Handler(schema))
}
