package http

import "github.com/labstack/echo/v4"

type Handlers struct {
	Health     *Handler
	Statuses   *StatusHandler
	Customers  *CustomerHandler
	Tracker    *TrackerJobHandler
	RepairJobs *RepairJobHandler
	Analytics  *AnalyticsHandler
}

// Register mounts every route. mutating wraps the /api group (idempotency);
// it only acts on non-GET requests.
func Register(e *echo.Echo, h Handlers, mutating ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health.Health)

	api := e.Group("/api", mutating...)

	api.GET("/statuses", h.Statuses.List)
	api.POST("/statuses", h.Statuses.Create)
	api.GET("/statuses/:id", h.Statuses.Get)
	api.PUT("/statuses/:id", h.Statuses.Update)
	api.DELETE("/statuses/:id", h.Statuses.Delete)

	api.GET("/insurers", h.Customers.ListInsurers)
	api.POST("/insurers", h.Customers.CreateInsurer)

	api.POST("/customers", h.Customers.Upsert)
	api.GET("/customers/unsynced", h.Customers.ListUnsynced)
	api.POST("/customers/:id/sync", h.Customers.MarkSynced)
	api.POST("/customers/:id/vehicles", h.Customers.AddVehicle)

	api.GET("/tracker-jobs", h.Tracker.List)
	api.POST("/tracker-jobs", h.Tracker.Create)
	api.GET("/tracker-jobs/:id", h.Tracker.Get)
	api.PATCH("/tracker-jobs/:id", h.Tracker.UpdateDetails)
	api.PATCH("/tracker-jobs/:id/transition", h.Tracker.Transition)
	api.GET("/tracker-jobs/:id/history", h.Tracker.History)

	api.GET("/jobs", h.RepairJobs.List)
	api.POST("/jobs", h.RepairJobs.Create)
	api.GET("/jobs/:uid", h.RepairJobs.Get)
	api.PUT("/jobs/:uid/estimate", h.RepairJobs.UpdateEstimate)
	api.PUT("/jobs/:uid/approval", h.RepairJobs.Approve)
	api.PATCH("/jobs/:uid/transition", h.RepairJobs.Transition)
	api.GET("/jobs/:uid/history", h.RepairJobs.History)

	api.GET("/analytics", h.Analytics.Dashboard)
	api.GET("/analytics/jobs", h.Analytics.Jobs)
	api.GET("/analytics/shop", h.Analytics.Shop)
	api.GET("/analytics/export", h.Analytics.Export)
}
