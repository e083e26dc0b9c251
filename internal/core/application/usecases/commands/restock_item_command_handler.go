package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/inventory"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/core/ports"
)

// RestockItemCommandHandler handles stock deliveries. Only managers and
// admins may move stock by hand; the increment and its ledger row commit
// together. The menu cache entry is dropped afterwards so reads pick up the
// fresh stock level.
type RestockItemCommandHandler struct {
	uowFactory StockUoWFactory
	cache      ports.MenuCache
}

// NewRestockItemCommandHandler creates a handler for stock deliveries.
func NewRestockItemCommandHandler(uowFactory StockUoWFactory, cache ports.MenuCache) RestockItemCommandHandler {
	return RestockItemCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes the restock command.
func (h *RestockItemCommandHandler) Handle(ctx context.Context, cmd RestockItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := uow.StaffRepository().Get(ctx, cmd.StaffID())
	if err != nil {
		return err
	}
	if !actor.Role().CanManageStock() {
		return &staff.AuthorizationError{Role: actor.Role()}
	}

	menuRepo := uow.MenuItemRepository()
	menuItems, err := menuRepo.GetBatch(ctx, []kernel.UUID{cmd.MenuItemID()})
	if err != nil {
		return err
	}
	menuItem := menuItems[0]

	if err = menuItem.Restock(cmd.Quantity()); err != nil {
		return err
	}
	if err = menuRepo.Update(ctx, menuItem); err != nil {
		return err
	}

	row, err := inventory.NewTransaction(
		kernel.NewUUID(),
		menuItem.ID(),
		cmd.Quantity(),
		inventory.TypeRestock,
		nil,
		cmd.StaffID(),
		cmd.Notes(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if err = uow.InventoryRepository().Add(ctx, row); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.cache.Invalidate(ctx, menuItem.ID())

	return nil
}
