package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sergioLiiD/yaavs-v5-sub002/internal/api/handlers"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/api/middleware"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Tickets       *handlers.TicketHandler
	Budgets       *handlers.BudgetHandler
	Payments      *handlers.PaymentHandler
	Parts         *handlers.PartHandler
	Customers     *handlers.CustomerHandler
	Notifications *handlers.NotificationHandler
	Audit         *handlers.AuditHandler
	Health        *handlers.HealthHandler
}

// NewRouter builds the gin engine with the full route table.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(cors.Default())

	r.GET("/healthz", deps.Health.Live)
	r.GET("/readyz", deps.Health.Ready)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RequireActor())
	{
		tickets := v1.Group("/tickets")
		{
			tickets.POST("", deps.Tickets.Create)
			tickets.GET("", deps.Tickets.List)
			tickets.GET("/:id", deps.Tickets.Get)
			tickets.GET("/:id/balance", deps.Tickets.Balance)
			tickets.PUT("/:id/technician", deps.Tickets.AssignTechnician)

			tickets.POST("/:id/start-diagnosis", deps.Tickets.StartDiagnosis)
			tickets.POST("/:id/complete-diagnosis", deps.Tickets.CompleteDiagnosis)
			tickets.POST("/:id/start-repair", deps.Tickets.StartRepair)
			tickets.POST("/:id/complete-repair", deps.Tickets.CompleteRepair)
			tickets.POST("/:id/ready", deps.Tickets.MarkReady)
			tickets.POST("/:id/deliver", deps.Tickets.Deliver)
			tickets.POST("/:id/cancel", deps.Tickets.Cancel)

			tickets.GET("/:id/budget", deps.Budgets.Get)
			tickets.PUT("/:id/budget/items", deps.Budgets.ReplaceItems)
			tickets.POST("/:id/budget/submit", deps.Budgets.Submit)
			tickets.POST("/:id/budget/approve", deps.Budgets.Approve)

			tickets.POST("/:id/payments", deps.Payments.Register)
			tickets.GET("/:id/payments", deps.Payments.List)
		}

		v1.POST("/payments/:id/void", deps.Payments.Void)

		parts := v1.Group("/parts")
		{
			parts.POST("", deps.Parts.Create)
			parts.GET("", deps.Parts.List)
			parts.GET("/low-stock", deps.Parts.ListLowStock)
			parts.GET("/:id", deps.Parts.Get)
			parts.PATCH("/:id", deps.Parts.Update)
			parts.GET("/:id/ledger", deps.Parts.Ledger)
			parts.POST("/:id/restock", deps.Parts.Restock)
			parts.POST("/:id/sell", deps.Parts.Sell)
			parts.POST("/:id/adjust", deps.Parts.Adjust)
		}

		customers := v1.Group("/customers")
		{
			customers.POST("", deps.Customers.Create)
			customers.GET("", deps.Customers.List)
			customers.GET("/:id", deps.Customers.Get)
			customers.POST("/:id/devices", deps.Customers.CreateDevice)
			customers.GET("/:id/devices", deps.Customers.ListDevices)
		}

		v1.GET("/notifications", deps.Notifications.ListUnread)
		v1.POST("/notifications/read", deps.Notifications.MarkRead)

		v1.GET("/audit", deps.Audit.Query)
	}

	return r
}
