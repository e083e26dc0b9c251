package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"
)

// ReportLowStockCommandHandler publishes one notification per menu item at
// or below its low stock threshold. It returns how many alerts were raised.
type ReportLowStockCommandHandler struct {
	uowFactory StockUoWFactory
	publisher  ports.NotificationPublisher
}

// NewReportLowStockCommandHandler creates a handler for the low stock sweep.
func NewReportLowStockCommandHandler(
	uowFactory StockUoWFactory,
	publisher ports.NotificationPublisher,
) ReportLowStockCommandHandler {
	return ReportLowStockCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the sweep command. The read needs no transaction of its
// own, but riding the unit of work keeps every repository access on one
// connection source.
func (h *ReportLowStockCommandHandler) Handle(ctx context.Context, cmd ReportLowStockCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lowStock, err := uow.MenuItemRepository().GetAllLowStock(ctx)
	if err != nil {
		return 0, err
	}
	if err = uow.Rollback(ctx); err != nil {
		return 0, err
	}

	for _, mi := range lowStock {
		_ = h.publisher.Publish(ctx, ports.Notification{
			Kind:    ports.NotificationLowStock,
			OrderID: kernel.UUID{},
			Payload: map[string]any{
				"menu_item_id": mi.ID().String(),
				"name":         mi.Name(),
				"stock":        mi.StockQuantity(),
				"threshold":    mi.LowStockThreshold(),
			},
		})
	}

	return len(lowStock), nil
}
