package cmd

import (
	"log/slog"
	"os"

	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/notify"
	"restaurant/internal/adapters/out/postgres"
	rediscache "restaurant/internal/adapters/out/redis"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/jobs"
	"restaurant/internal/pkg/orderlock"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	router      services.DistributionRouter
	locker      *orderlock.KeyedMutex
	publisher   *notify.ChannelPublisher
	menuCache   *rediscache.MenuCache
	taxRate     decimal.Decimal
	serviceRate decimal.Decimal
	logger      *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *goredis.Client) (CompositionRoot, error) {
	taxRate, err := decimal.NewFromString(config.TaxRatePercent)
	if err != nil {
		return CompositionRoot{}, err
	}
	serviceRate, err := decimal.NewFromString(config.ServiceRatePercent)
	if err != nil {
		return CompositionRoot{}, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		router:      services.NewDistributionRouter(),
		locker:      orderlock.NewKeyedMutex(),
		publisher:   notify.NewChannelPublisher(notify.NewLogSender(logger), logger),
		menuCache:   rediscache.NewMenuCache(redisClient),
		taxRate:     taxRate,
		serviceRate: serviceRate,
		logger:      logger,
	}, nil
}

// Publisher returns the notification pipeline so the entry point can manage
// its lifecycle.
func (c *CompositionRoot) Publisher() *notify.ChannelPublisher {
	return c.publisher
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.router, c.publisher, c.menuCache, c.taxRate, c.serviceRate)
}

func (c *CompositionRoot) CreateAddItemsCommandHandler() commands.AddItemsCommandHandler {
	var f commands.OrderItemsUoWFactory = FuncOrderItemsUoWFactory(func() commands.OrderItemsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddItemsCommandHandler(f, c.router, c.publisher, c.menuCache)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	var f commands.OrderLifecycleUoWFactory = FuncOrderLifecycleUoWFactory(func() commands.OrderLifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderStatusCommandHandler(f, c.locker)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderLifecycleUoWFactory = FuncOrderLifecycleUoWFactory(func() commands.OrderLifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.locker, c.publisher)
}

func (c *CompositionRoot) CreateMarkItemReceivedCommandHandler() commands.MarkItemReceivedCommandHandler {
	var f commands.PrepUoWFactory = FuncPrepUoWFactory(func() commands.PrepUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkItemReceivedCommandHandler(f, c.router, c.locker)
}

func (c *CompositionRoot) CreateMarkItemReadyCommandHandler() commands.MarkItemReadyCommandHandler {
	var f commands.PrepUoWFactory = FuncPrepUoWFactory(func() commands.PrepUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkItemReadyCommandHandler(f, c.router, c.locker, c.publisher)
}

func (c *CompositionRoot) CreateProcessPaymentCommandHandler() commands.ProcessPaymentCommandHandler {
	return commands.NewProcessPaymentCommandHandler(c.paymentUoWFactory(), c.locker, c.publisher)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.paymentUoWFactory(), c.locker, c.publisher)
}

func (c *CompositionRoot) CreateFailPaymentCommandHandler() commands.FailPaymentCommandHandler {
	return commands.NewFailPaymentCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateRefundPaymentCommandHandler() commands.RefundPaymentCommandHandler {
	return commands.NewRefundPaymentCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateSplitPaymentCommandHandler() commands.SplitPaymentCommandHandler {
	return commands.NewSplitPaymentCommandHandler(c.paymentUoWFactory(), c.locker, c.publisher)
}

func (c *CompositionRoot) CreateProcessTipCommandHandler() commands.ProcessTipCommandHandler {
	var f commands.TipUoWFactory = FuncTipUoWFactory(func() commands.TipUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessTipCommandHandler(f)
}

func (c *CompositionRoot) CreateRestockItemCommandHandler() commands.RestockItemCommandHandler {
	return commands.NewRestockItemCommandHandler(c.stockUoWFactory(), c.menuCache)
}

func (c *CompositionRoot) CreateReconcilePaymentsCommandHandler() commands.ReconcilePaymentsCommandHandler {
	return commands.NewReconcilePaymentsCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateReportLowStockCommandHandler() commands.ReportLowStockCommandHandler {
	return commands.NewReportLowStockCommandHandler(c.stockUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingItemsQueryHandler() queries.GetPendingItemsQueryHandler {
	return queries.NewGetPendingItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBillQueryHandler() queries.GetBillQueryHandler {
	return queries.NewGetBillQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentHistoryQueryHandler() queries.GetPaymentHistoryQueryHandler {
	return queries.NewGetPaymentHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuItemQueryHandler() queries.GetMenuItemQueryHandler {
	return queries.NewGetMenuItemQueryHandler(c.gormDB, c.menuCache)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAddItemsCommandHandler(),
		c.CreateTransitionOrderStatusCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateMarkItemReceivedCommandHandler(),
		c.CreateMarkItemReadyCommandHandler(),
		c.CreateProcessPaymentCommandHandler(),
		c.CreateConfirmPaymentCommandHandler(),
		c.CreateFailPaymentCommandHandler(),
		c.CreateRefundPaymentCommandHandler(),
		c.CreateSplitPaymentCommandHandler(),
		c.CreateProcessTipCommandHandler(),
		c.CreateRestockItemCommandHandler(),
		c.CreateGetOrdersByStatusQueryHandler(),
		c.CreateGetPendingItemsQueryHandler(),
		c.CreateGetBillQueryHandler(),
		c.CreateGetPaymentHistoryQueryHandler(),
		c.CreateGetMenuItemQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateReconcilePaymentsCommandHandler(),
		c.CreateReportLowStockCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) stockUoWFactory() commands.StockUoWFactory {
	return FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncOrderItemsUoWFactory func() commands.OrderItemsUoW

func (f FuncOrderItemsUoWFactory) Create() commands.OrderItemsUoW {
	return f()
}

type FuncOrderLifecycleUoWFactory func() commands.OrderLifecycleUoW

func (f FuncOrderLifecycleUoWFactory) Create() commands.OrderLifecycleUoW {
	return f()
}

type FuncPrepUoWFactory func() commands.PrepUoW

func (f FuncPrepUoWFactory) Create() commands.PrepUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncTipUoWFactory func() commands.TipUoW

func (f FuncTipUoWFactory) Create() commands.TipUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}
