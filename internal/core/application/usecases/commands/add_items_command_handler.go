package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/inventory"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// AddItemsCommandHandler handles adding items to an order that has not yet
// started preparation at the order level. The aggregate rejects amendment
// once the order is past confirmed; here the handler repeats the intake
// steps for the new lines: stock validation, deduction, sale ledger rows
// and distribution of the new items to their areas. Cache entries of the
// deducted menu items are dropped after commit.
type AddItemsCommandHandler struct {
	uowFactory OrderItemsUoWFactory
	router     services.DistributionRouter
	publisher  ports.NotificationPublisher
	cache      ports.MenuCache
}

// NewAddItemsCommandHandler creates a handler for order amendment.
func NewAddItemsCommandHandler(
	uowFactory OrderItemsUoWFactory,
	router services.DistributionRouter,
	publisher ports.NotificationPublisher,
	cache ports.MenuCache,
) AddItemsCommandHandler {
	return AddItemsCommandHandler{
		uowFactory: uowFactory,
		router:     router,
		publisher:  publisher,
		cache:      cache,
	}
}

// Handle processes the amendment command.
func (h *AddItemsCommandHandler) Handle(ctx context.Context, cmd AddItemsCommand) error {
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

	orderRepo := uow.OrderRepository()
	amended, err := orderRepo.Get(ctx, cmd.OrderID())
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

	requested := make(map[kernel.UUID]int, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		requested[line.MenuItemID] += line.Quantity
	}
	for id, quantity := range requested {
		if err = byID[id].CanDeduct(quantity); err != nil {
			return err
		}
	}

	items := make([]*order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		item, err := order.NewItem(
			kernel.NewUUID(), byID[line.MenuItemID], line.Quantity, line.SpecialInstructions, now)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	// The aggregate decides whether the order is still open for amendment
	// before any stock moves.
	if err = amended.AddItems(items...); err != nil {
		return err
	}

	inventoryRepo := uow.InventoryRepository()
	orderID := cmd.OrderID()
	var lowStock []*menu.MenuItem

	for _, line := range cmd.Lines() {
		menuItem := byID[line.MenuItemID]
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
			cmd.StaffID(),
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

	counts, err := h.router.Distribute(amended)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, amended); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.cache.Invalidate(ctx, menuItemIDs(cmd.Lines())...)

	areas := make(map[string]any, len(counts))
	for area, count := range counts {
		if count > 0 {
			areas[area.String()] = count
		}
	}
	_ = h.publisher.Publish(ctx, ports.Notification{
		Kind:    ports.NotificationOrderDistributed,
		OrderID: amended.ID(),
		Payload: map[string]any{
			"order_number": amended.OrderNumber(),
			"areas":        areas,
		},
	})
	for _, mi := range lowStock {
		_ = h.publisher.Publish(ctx, ports.Notification{
			Kind:    ports.NotificationLowStock,
			OrderID: amended.ID(),
			Payload: map[string]any{
				"menu_item_id": mi.ID().String(),
				"name":         mi.Name(),
				"stock":        mi.StockQuantity(),
				"threshold":    mi.LowStockThreshold(),
			},
		})
	}

	return nil
}
