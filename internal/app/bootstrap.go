// Package app assembles the service: database, worker pools, services,
// usecases, background jobs, and the HTTP router.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"github.com/sergioLiiD/yaavs-v5-sub002/internal/api/handlers"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/config"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/domain"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/governance/audit"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/infrastructure"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/jobs"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/matcher"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/notification"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/payments"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/logger"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/worker"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/service"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/usecase"
)

// App holds the assembled service.
type App struct {
	cfg    *config.Config
	db     *infrastructure.Database
	pools  *worker.Pools
	server *http.Server
}

// Build wires the whole service together.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := infrastructure.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close(ctx)
			return nil, err
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize: cfg.Worker.GeneralPoolSize,
	})
	if err != nil {
		db.Close(ctx)
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	dispatcher := domain.NewDispatcher(pools)
	auditLog := audit.NewLogger(db.Ent, pools)
	sender := notification.NewInboxSender(db.Ent)
	dispatcher.Subscribe(notification.NewTriggers(sender))

	var gateway payments.Gateway
	if cfg.Payments.MercadoPagoAccessToken != "" {
		gateway, err = payments.NewMercadoPagoGateway(cfg.Payments.MercadoPagoAccessToken)
		if err != nil {
			pools.Shutdown()
			db.Close(ctx)
			return nil, fmt.Errorf("init payment gateway: %w", err)
		}
	} else {
		logger.Warn("No Mercado Pago access token configured, provider payments disabled")
	}

	// Services.
	tickets := service.NewTicketService(db.Ent, dispatcher)
	budgets := service.NewBudgetService(db.Ent, tickets)
	consumption := service.NewConsumptionService(db.Ent, budgets, matcher.NewNameMatcher())
	validator := service.NewStockValidator(db.Ent)
	balance := service.NewBalanceService(db.Ent, budgets)
	inventory := usecase.NewInventoryAtomicWriter(db.Pool)
	parts := service.NewPartService(db.Ent, inventory)
	paymentSvc := service.NewPaymentService(db.Ent, tickets, gateway)
	customers := service.NewCustomerService(db.Ent)

	// Usecases.
	completeRepair := usecase.NewCompleteRepairUsecase(db.Ent, db.Pool, consumption, validator, inventory, tickets, dispatcher)
	deliver := usecase.NewDeliverUsecase(db.Ent, db.Pool, balance, tickets, dispatcher)
	cancel := usecase.NewCancelTicketUsecase(db.Ent, db.Pool, inventory, tickets, dispatcher)

	// Background jobs.
	workers := river.NewWorkers()
	river.AddWorker(workers, jobs.NewLowStockScanWorker(parts, sender))
	river.AddWorker(workers, jobs.NewNotificationCleanupWorker(sender, cfg.Inventory.NotificationRetention))

	periodic := []*river.PeriodicJob{
		jobs.LowStockPeriodicJob(cfg.Inventory.LowStockScanInterval),
		jobs.NotificationCleanupPeriodicJob(),
	}
	if err := db.InitRiverClient(workers, periodic, cfg.River.MaxWorkers, cfg.River.CompletedJobRetentionPeriod); err != nil {
		pools.Shutdown()
		db.Close(ctx)
		return nil, err
	}

	// HTTP surface.
	router := NewRouter(RouterDeps{
		Tickets:       handlers.NewTicketHandler(tickets, balance, completeRepair, deliver, cancel, auditLog),
		Budgets:       handlers.NewBudgetHandler(budgets, auditLog),
		Payments:      handlers.NewPaymentHandler(paymentSvc, auditLog),
		Parts:         handlers.NewPartHandler(parts, auditLog),
		Customers:     handlers.NewCustomerHandler(customers, auditLog),
		Notifications: handlers.NewNotificationHandler(sender),
		Audit:         handlers.NewAuditHandler(auditLog),
		Health:        handlers.NewHealthHandler(db.Pool, pools),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	logger.Info("Application assembled",
		zap.Int("port", cfg.Server.Port),
		zap.Bool("payments_gateway", gateway != nil),
	)

	return &App{
		cfg:    cfg,
		db:     db,
		pools:  pools,
		server: server,
	}, nil
}
