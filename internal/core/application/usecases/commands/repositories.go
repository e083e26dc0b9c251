// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MenuItemRepoFactory provides access to the menu item repository within a transaction.
	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// TipRepoFactory provides access to the tip repository within a transaction.
	TipRepoFactory interface {
		TipRepository() ports.TipRepository
	}

	// StaffRepoFactory provides access to the staff repository within a transaction.
	StaffRepoFactory interface {
		StaffRepository() ports.StaffRepository
	}

	// TableRepoFactory provides access to the table repository within a transaction.
	TableRepoFactory interface {
		TableRepository() ports.TableRepository
	}

	// InventoryRepoFactory provides access to the inventory ledger within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// CreateOrderUoW manages the transaction for order intake. Creating an
	// order touches the order itself, stock levels, the inventory ledger
	// and the table in one atomic step.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		MenuItemRepoFactory
		InventoryRepoFactory
		TableRepoFactory
		StaffRepoFactory
	}

	// CreateOrderUoWFactory creates new order intake unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// OrderItemsUoW manages the transaction for adding items to an open
	// order, which also moves stock.
	OrderItemsUoW interface {
		TxManager
		OrderRepoFactory
		MenuItemRepoFactory
		InventoryRepoFactory
	}

	// OrderItemsUoWFactory creates new item amendment unit of work instances.
	OrderItemsUoWFactory interface {
		Create() OrderItemsUoW
	}

	// OrderLifecycleUoW manages transactions for order status transitions.
	// Completion reads the payment ledger, and terminal states release the
	// table, so both repositories ride in the same transaction.
	OrderLifecycleUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
		TableRepoFactory
	}

	// OrderLifecycleUoWFactory creates new lifecycle unit of work instances.
	OrderLifecycleUoWFactory interface {
		Create() OrderLifecycleUoW
	}

	// PrepUoW manages transactions for preparation area operations.
	PrepUoW interface {
		TxManager
		OrderRepoFactory
		StaffRepoFactory
	}

	// PrepUoWFactory creates new preparation unit of work instances.
	PrepUoWFactory interface {
		Create() PrepUoW
	}

	// PaymentUoW manages transactions for payment operations. Completing a
	// payment may complete the order and release its table, so all three
	// repositories share the transaction.
	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
		TableRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// TipUoW manages transactions for tip recording.
	TipUoW interface {
		TxManager
		OrderRepoFactory
		TipRepoFactory
		StaffRepoFactory
	}

	// TipUoWFactory creates new tip unit of work instances.
	TipUoWFactory interface {
		Create() TipUoW
	}

	// StockUoW manages transactions for manual stock movements.
	StockUoW interface {
		TxManager
		MenuItemRepoFactory
		InventoryRepoFactory
		StaffRepoFactory
	}

	// StockUoWFactory creates new stock unit of work instances.
	StockUoWFactory interface {
		Create() StockUoW
	}
)
