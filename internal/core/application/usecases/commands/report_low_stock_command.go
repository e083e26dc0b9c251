package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrReportLowStockCommandIsNotConstructed = errors.New(
	"ReportLowStockCommand must be created via NewReportLowStockCommand constructor",
)

// ReportLowStockCommand publishes a stock alert for every menu item at or
// below its threshold. Order intake already alerts on the items it deducts;
// this sweep catches items drained by restock corrections or manual edits.
type ReportLowStockCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewReportLowStockCommand creates a low stock sweep command.
func NewReportLowStockCommand() ReportLowStockCommand {
	return ReportLowStockCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ReportLowStockCommand) Validate() error {
	return c.guard.Validate(ErrReportLowStockCommandIsNotConstructed)
}
