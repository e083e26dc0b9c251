package commands

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"restaurant/internal/core/domain/model/inventory"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// Opening an order snapshots menu prices onto its items, occupies the table,
// deducts stock for every line and distributes the items to their
// preparation areas, all in one transaction. Station and low stock
// notifications go out only after the transaction commits, and the cache
// entries of deducted menu items are dropped so reads see the new stock.
type CreateOrderCommandHandler struct {
	uowFactory  CreateOrderUoWFactory
	router      services.DistributionRouter
	publisher   ports.NotificationPublisher
	cache       ports.MenuCache
	taxRate     decimal.Decimal
	serviceRate decimal.Decimal
}

// NewCreateOrderCommandHandler creates a handler for order intake.
// The tax and service rates are snapshotted onto each order at creation.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	router services.DistributionRouter,
	publisher ports.NotificationPublisher,
	cache ports.MenuCache,
	taxRate decimal.Decimal,
	serviceRate decimal.Decimal,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		router:      router,
		publisher:   publisher,
		cache:       cache,
		taxRate:     taxRate,
		serviceRate: serviceRate,
	}
}

// Handle processes the order intake command.
// Stock is validated for every line before any deduction happens, so a
// single out-of-stock line rejects the whole order and leaves no partial
// movement behind.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.StaffRepository().Get(ctx, cmd.WaiterID()); err != nil {
		return err
	}

	tableRepo := uow.TableRepository()
	seatedTable, err := tableRepo.Get(ctx, cmd.TableID())
	if err != nil {
		return err
	}

	menuRepo := uow.MenuItemRepository()
	menuItems, err := menuRepo.GetBatch(ctx, menuItemIDs(cmd.Lines()))
	if err != nil {
		return err
	}

	byID := make(map[kernel.UUID]*menu.MenuItem, len(menuItems))
	for _, mi := range menuItems {
		byID[mi.ID()] = mi
	}

	// Validate every line before touching stock. Quantities are summed per
	// menu item so repeated lines cannot slip past the check one by one.
	requested := make(map[kernel.UUID]int, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		requested[line.MenuItemID] += line.Quantity
	}
	for id, quantity := range requested {
		if err = byID[id].CanDeduct(quantity); err != nil {
			return err
		}
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.TableID(),
		cmd.GuestID(),
		cmd.WaiterID(),
		cmd.Source(),
		cmd.Notes(),
		h.taxRate,
		h.serviceRate,
		now,
	)
	if err != nil {
		return err
	}

	inventoryRepo := uow.InventoryRepository()
	orderID := cmd.OrderID()
	var lowStock []*menu.MenuItem

	items := make([]*order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		menuItem := byID[line.MenuItemID]

		item, err := order.NewItem(kernel.NewUUID(), menuItem, line.Quantity, line.SpecialInstructions, now)
		if err != nil {
			return err
		}
		items = append(items, item)

		if err = menuItem.Deduct(line.Quantity); err != nil {
			return err
		}
		if err = menuRepo.Update(ctx, menuItem); err != nil {
			return err
		}

		sale, err := inventory.NewTransaction(
			kernel.NewUUID(),
			menuItem.ID(),
			-line.Quantity,
			inventory.TypeSale,
			&orderID,
			cmd.WaiterID(),
			"",
			now,
		)
		if err != nil {
			return err
		}
		if err = inventoryRepo.Add(ctx, sale); err != nil {
			return err
		}

		if menuItem.IsLowStock() {
			lowStock = append(lowStock, menuItem)
		}
	}

	if err = newOrder.AddItems(items...); err != nil {
		return err
	}

	counts, err := h.router.Distribute(newOrder)
	if err != nil {
		return err
	}

	seatedTable.MarkOccupied()
	if err = tableRepo.Update(ctx, seatedTable); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.cache.Invalidate(ctx, menuItemIDs(cmd.Lines())...)

	h.notify(ctx, newOrder, counts, lowStock)
	return nil
}

func (h *CreateOrderCommandHandler) notify(
	ctx context.Context,
	newOrder *order.Order,
	counts map[menu.PrepArea]int,
	lowStock []*menu.MenuItem,
) {
	areas := make(map[string]any, len(counts))
	for area, count := range counts {
		areas[area.String()] = count
	}
	_ = h.publisher.Publish(ctx, ports.Notification{
		Kind:    ports.NotificationOrderDistributed,
		OrderID: newOrder.ID(),
		Payload: map[string]any{
			"order_number": newOrder.OrderNumber(),
			"areas":        areas,
		},
	})

	for _, mi := range lowStock {
		_ = h.publisher.Publish(ctx, ports.Notification{
			Kind:    ports.NotificationLowStock,
			OrderID: newOrder.ID(),
			Payload: map[string]any{
				"menu_item_id": mi.ID().String(),
				"name":         mi.Name(),
				"stock":        mi.StockQuantity(),
				"threshold":    mi.LowStockThreshold(),
			},
		})
	}
}

func menuItemIDs(lines []OrderLine) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(lines))
	seen := make(map[kernel.UUID]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.MenuItemID]; ok {
			continue
		}
		seen[line.MenuItemID] = struct{}{}
		ids = append(ids, line.MenuItemID)
	}
	return ids
}
