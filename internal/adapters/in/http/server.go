package http

import (
	"errors"
	"log/slog"
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/generated/servers"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	addItemsHandler         commands.AddItemsCommandHandler
	transitionStatusHandler commands.TransitionOrderStatusCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	markItemReceivedHandler commands.MarkItemReceivedCommandHandler
	markItemReadyHandler    commands.MarkItemReadyCommandHandler
	processPaymentHandler   commands.ProcessPaymentCommandHandler
	confirmPaymentHandler   commands.ConfirmPaymentCommandHandler
	failPaymentHandler      commands.FailPaymentCommandHandler
	refundPaymentHandler    commands.RefundPaymentCommandHandler
	splitPaymentHandler     commands.SplitPaymentCommandHandler
	processTipHandler       commands.ProcessTipCommandHandler
	restockItemHandler      commands.RestockItemCommandHandler

	// Query handlers
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
	getPendingItemsHandler   queries.GetPendingItemsQueryHandler
	getBillHandler           queries.GetBillQueryHandler
	getPaymentHistoryHandler queries.GetPaymentHistoryQueryHandler
	getMenuItemHandler       queries.GetMenuItemQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addItemsHandler commands.AddItemsCommandHandler,
	transitionStatusHandler commands.TransitionOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	markItemReceivedHandler commands.MarkItemReceivedCommandHandler,
	markItemReadyHandler commands.MarkItemReadyCommandHandler,
	processPaymentHandler commands.ProcessPaymentCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	failPaymentHandler commands.FailPaymentCommandHandler,
	refundPaymentHandler commands.RefundPaymentCommandHandler,
	splitPaymentHandler commands.SplitPaymentCommandHandler,
	processTipHandler commands.ProcessTipCommandHandler,
	restockItemHandler commands.RestockItemCommandHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getPendingItemsHandler queries.GetPendingItemsQueryHandler,
	getBillHandler queries.GetBillQueryHandler,
	getPaymentHistoryHandler queries.GetPaymentHistoryQueryHandler,
	getMenuItemHandler queries.GetMenuItemQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		addItemsHandler:          addItemsHandler,
		transitionStatusHandler:  transitionStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		markItemReceivedHandler:  markItemReceivedHandler,
		markItemReadyHandler:     markItemReadyHandler,
		processPaymentHandler:    processPaymentHandler,
		confirmPaymentHandler:    confirmPaymentHandler,
		failPaymentHandler:       failPaymentHandler,
		refundPaymentHandler:     refundPaymentHandler,
		splitPaymentHandler:      splitPaymentHandler,
		processTipHandler:        processTipHandler,
		restockItemHandler:       restockItemHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
		getPendingItemsHandler:   getPendingItemsHandler,
		getBillHandler:           getBillHandler,
		getPaymentHistoryHandler: getPaymentHistoryHandler,
		getMenuItemHandler:       getMenuItemHandler,
		logger:                   logger.With("component", "http"),
	}
}

// CreateOrder handles POST /api/v1/orders - opens a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	source, err := order.SourceFromString(string(body.Source))
	if err != nil {
		return s.badRequest(ctx, "Invalid order source: "+err.Error())
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		kernelUUID(body.TableId),
		kernelUUID(body.GuestId),
		kernelUUID(body.WaiterId),
		source,
		derefString(body.Notes),
		toOrderLines(body.Lines),
	)
	if err != nil {
		return s.badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: orderID.Bytes()})
}

// GetOrders handles GET /api/v1/orders - lists orders in a lifecycle status.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	status, err := order.StatusFromString(params.Status)
	if err != nil {
		return s.badRequest(ctx, "Invalid order status: "+err.Error())
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return s.badRequest(ctx, "Invalid query: "+err.Error())
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]servers.OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = servers.OrderSummary{
			Id:          o.OrderID.Bytes(),
			OrderNumber: o.OrderNumber,
			TableId:     o.TableID.Bytes(),
			Total:       o.Total.String(),
			ItemCount:   o.ItemCount,
			CreatedAt:   o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddOrderItems handles POST /api/v1/orders/{orderId}/items - amends an open order.
func (s *Server) AddOrderItems(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.AddOrderItemsJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddItemsCommand(
		kernelUUID(orderId),
		kernelUUID(body.StaffId),
		toOrderLines(body.Lines),
	)
	if err != nil {
		return s.badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.addItemsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransitionOrderStatus handles POST /api/v1/orders/{orderId}/status - moves an
// order along its lifecycle.
func (s *Server) TransitionOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.TransitionOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(body.Target)
	if err != nil {
		return s.badRequest(ctx, "Invalid target status: "+err.Error())
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(
		kernelUUID(orderId),
		target,
		kernelUUID(body.ActorId),
	)
	if err != nil {
		return s.badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if handleErr := s.transitionStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.CancelOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(
		kernelUUID(orderId),
		kernelUUID(body.ActorId),
		body.Reason,
	)
	if err != nil {
		return s.badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetBill handles GET /api/v1/orders/{orderId}/bill.
func (s *Server) GetBill(ctx echo.Context, orderId openapi_types.UUID) error {
	query, err := queries.NewGetBillQuery(kernelUUID(orderId))
	if err != nil {
		return s.badRequest(ctx, "Invalid query: "+err.Error())
	}

	bill, err := s.getBillHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}

	lines := make([]servers.BillLine, len(bill.Lines))
	for i, line := range bill.Lines {
		lines[i] = servers.BillLine{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.String(),
			Subtotal:  line.Subtotal.String(),
		}
	}

	return ctx.JSON(http.StatusOK, servers.Bill{
		OrderId:       bill.OrderID.Bytes(),
		OrderNumber:   bill.OrderNumber,
		Status:        bill.Status,
		Lines:         lines,
		Subtotal:      bill.Subtotal.String(),
		Tax:           bill.Tax.String(),
		ServiceCharge: bill.ServiceCharge.String(),
		Total:         bill.Total.String(),
		AmountPaid:    bill.AmountPaid.String(),
		BalanceDue:    bill.BalanceDue.String(),
	})
}

// GetPaymentHistory handles GET /api/v1/orders/{orderId}/payments.
func (s *Server) GetPaymentHistory(ctx echo.Context, orderId openapi_types.UUID) error {
	query, err := queries.NewGetPaymentHistoryQuery(kernelUUID(orderId))
	if err != nil {
		return s.badRequest(ctx, "Invalid query: "+err.Error())
	}

	payments, err := s.getPaymentHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve payments")
	}

	response := make([]servers.PaymentRecord, len(payments))
	for i, p := range payments {
		response[i] = servers.PaymentRecord{
			Id:            p.PaymentID.Bytes(),
			Amount:        p.Amount.String(),
			Method:        p.Method,
			Status:        p.Status,
			TransactionId: p.TransactionID,
			CreatedAt:     p.CreatedAt,
			CompletedAt:   p.CompletedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ProcessPayment handles POST /api/v1/orders/{orderId}/payments.
func (s *Server) ProcessPayment(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.ProcessPaymentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	amount, err := parseMoney(body.Amount)
	if err != nil {
		return s.badRequest(ctx, "Invalid amount: "+err.Error())
	}

	method, err := payment.MethodFromString(string(body.Method))
	if err != nil {
		return s.badRequest(ctx, "Invalid payment method: "+err.Error())
	}

	var tendered *kernel.Money
	if body.Tendered != nil {
		t, tErr := parseMoney(*body.Tendered)
		if tErr != nil {
			return s.badRequest(ctx, "Invalid tendered amount: "+tErr.Error())
		}
		tendered = &t
	}

	paymentID := kernel.NewUUID()

	cmd, err := commands.NewProcessPaymentCommand(
		paymentID,
		kernelUUID(orderId),
		kernelUUID(body.ActorId),
		amount,
		method,
		tendered,
	)
	if err != nil {
		return s.badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if handleErr := s.processPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.PaymentCreated{Id: paymentID.Bytes()})
}

// SplitPayment handles POST /api/v1/orders/{orderId}/payments/split.
func (s *Server) SplitPayment(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.SplitPaymentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	parts := make([]commands.SplitPart, len(body.Parts))
	for i, part := range body.Parts {
		amount, pErr := parseMoney(part.Amount)
		if pErr != nil {
			return s.badRequest(ctx, "Invalid split amount: "+pErr.Error())
		}
		method, mErr := payment.MethodFromString(string(part.Method))
		if mErr != nil {
			return s.badRequest(ctx, "Invalid payment method: "+mErr.Error())
		}
		parts[i] = commands.SplitPart{Amount: amount, Method: method}
	}

	cmd, err := commands.NewSplitPaymentCommand(
		kernelUUID(orderId),
		kernelUUID(body.ActorId),
		parts,
	)
	if err != nil {
		return s.badRequest(ctx, "Invalid split data: "+err.Error())
	}

	if handleErr := s.splitPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ProcessTip handles POST /api/v1/orders/{orderId}/tips.
func (s *Server) ProcessTip(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.ProcessTipJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	amount, err := parseMoney(body.Amount)
	if err != nil {
		return s.badRequest(ctx, "Invalid amount: "+err.Error())
	}

	method, err := payment.MethodFromString(string(body.Method))
	if err != nil {
		return s.badRequest(ctx, "Invalid payment method: "+err.Error())
	}

	var paymentID *kernel.UUID
	if body.PaymentId != nil {
		id := kernelUUID(*body.PaymentId)
		paymentID = &id
	}

	cmd, err := commands.NewProcessTipCommand(
		kernel.NewUUID(),
		kernelUUID(orderId),
		paymentID,
		amount,
		method,
	)
	if err != nil {
		return s.badRequest(ctx, "Invalid tip data: "+err.Error())
	}

	if handleErr := s.processTipHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPayment handles POST /api/v1/payments/{paymentId}/confirm - records a
// gateway confirmation for a processing payment.
func (s *Server) ConfirmPayment(ctx echo.Context, paymentId openapi_types.UUID) error {
	var body servers.ConfirmPaymentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	var details map[string]any
	if body.Details != nil {
		details = *body.Details
	}

	cmd, err := commands.NewConfirmPaymentCommand(
		kernelUUID(paymentId),
		kernelUUID(body.ActorId),
		details,
	)
	if err != nil {
		return s.badRequest(ctx, "Invalid confirmation data: "+err.Error())
	}

	if handleErr := s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FailPayment handles POST /api/v1/payments/{paymentId}/fail.
func (s *Server) FailPayment(ctx echo.Context, paymentId openapi_types.UUID) error {
	var body servers.FailPaymentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewFailPaymentCommand(kernelUUID(paymentId), body.Reason)
	if err != nil {
		return s.badRequest(ctx, "Invalid failure data: "+err.Error())
	}

	if handleErr := s.failPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RefundPayment handles POST /api/v1/payments/{paymentId}/refund.
func (s *Server) RefundPayment(ctx echo.Context, paymentId openapi_types.UUID) error {
	var body servers.RefundPaymentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRefundPaymentCommand(kernelUUID(paymentId), body.Reason)
	if err != nil {
		return s.badRequest(ctx, "Invalid refund data: "+err.Error())
	}

	if handleErr := s.refundPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkItemReceived handles POST /api/v1/items/{itemId}/received - a prep area
// acknowledges an item.
func (s *Server) MarkItemReceived(ctx echo.Context, itemId openapi_types.UUID) error {
	var body servers.MarkItemReceivedJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewMarkItemReceivedCommand(
		kernelUUID(itemId),
		kernelUUID(body.StaffId),
	)
	if err != nil {
		return s.badRequest(ctx, "Invalid receipt data: "+err.Error())
	}

	if handleErr := s.markItemReceivedHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkItemReady handles POST /api/v1/items/{itemId}/ready - a prep area plates
// an item.
func (s *Server) MarkItemReady(ctx echo.Context, itemId openapi_types.UUID) error {
	cmd, err := commands.NewMarkItemReadyCommand(kernelUUID(itemId))
	if err != nil {
		return s.badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.markItemReadyHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPendingItems handles GET /api/v1/prep-areas/{prepArea}/items - the work
// queue for a kitchen or bar display.
func (s *Server) GetPendingItems(ctx echo.Context, prepArea servers.GetPendingItemsParamsPrepArea) error {
	area, err := menu.PrepAreaFromString(string(prepArea))
	if err != nil {
		return s.badRequest(ctx, "Invalid prep area: "+err.Error())
	}

	query, err := queries.NewGetPendingItemsQuery(area)
	if err != nil {
		return s.badRequest(ctx, "Invalid query: "+err.Error())
	}

	items, err := s.getPendingItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve pending items")
	}

	response := make([]servers.PendingItem, len(items))
	for i, item := range items {
		response[i] = servers.PendingItem{
			Id:                  item.ItemID.Bytes(),
			OrderId:             item.OrderID.Bytes(),
			OrderNumber:         item.OrderNumber,
			Name:                item.Name,
			Quantity:            item.Quantity,
			PrepStatus:          item.PrepStatus,
			SpecialInstructions: optString(item.SpecialInstructions),
			CreatedAt:           item.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMenuItem handles GET /api/v1/menu-items/{menuItemId}.
func (s *Server) GetMenuItem(ctx echo.Context, menuItemId openapi_types.UUID) error {
	query, err := queries.NewGetMenuItemQuery(kernelUUID(menuItemId))
	if err != nil {
		return s.badRequest(ctx, "Invalid query: "+err.Error())
	}

	item, err := s.getMenuItemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.MenuItem{
		Id:                item.MenuItemID.Bytes(),
		Name:              item.Name,
		Price:             item.Price.String(),
		PrepArea:          item.PrepArea,
		StockQuantity:     item.StockQuantity,
		LowStockThreshold: item.LowStockThreshold,
		Unit:              item.Unit,
	})
}

// RestockMenuItem handles POST /api/v1/menu-items/{menuItemId}/restock.
func (s *Server) RestockMenuItem(ctx echo.Context, menuItemId openapi_types.UUID) error {
	var body servers.RestockMenuItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRestockItemCommand(
		kernelUUID(menuItemId),
		kernelUUID(body.StaffId),
		body.Quantity,
		derefString(body.Notes),
	)
	if err != nil {
		return s.badRequest(ctx, "Invalid restock data: "+err.Error())
	}

	if handleErr := s.restockItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// domainError maps a use case failure to an HTTP response. Not-found lookups
// become 404, authorization denials 403 and business rule violations 409;
// anything unrecognized is treated as an internal failure. Business rule
// errors carry a stable errorCode so callers branch on it instead of
// matching message text, and every rejection is logged: rule and
// authorization violations at Error, missed lookups at Warn.
func (s *Server) domainError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		s.logRejection(ctx, slog.LevelWarn, err, "")
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	var denied *staff.AuthorizationError
	if errors.As(err, &denied) {
		s.logRejection(ctx, slog.LevelError, err, denied.Code())
		return ctx.JSON(http.StatusForbidden, servers.Error{
			Code:      http.StatusForbidden,
			ErrorCode: stringPtr(denied.Code()),
			Message:   err.Error(),
		})
	}

	var rule interface{ Code() string }
	if errors.As(err, &rule) {
		s.logRejection(ctx, slog.LevelError, err, rule.Code())
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:      http.StatusConflict,
			ErrorCode: stringPtr(rule.Code()),
			Message:   err.Error(),
		})
	}

	var stale *errs.VersionIsInvalidError
	if errors.As(err, &stale) {
		s.logRejection(ctx, slog.LevelError, err, "")
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	}

	s.logRejection(ctx, slog.LevelError, err, "")
	return s.internalError(ctx, "Request failed")
}

func (s *Server) logRejection(ctx echo.Context, level slog.Level, err error, code string) {
	attrs := []any{
		"method", ctx.Request().Method,
		"path", ctx.Request().URL.Path,
		"error", err,
	}
	if code != "" {
		attrs = append(attrs, "error_code", code)
	}
	s.logger.Log(ctx.Request().Context(), level, "request rejected", attrs...)
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	s.logger.Warn("request rejected",
		"method", ctx.Request().Method,
		"path", ctx.Request().URL.Path,
		"error", message,
	)
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func (s *Server) internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

func stringPtr(s string) *string { return &s }

// kernelUUID converts a bound path or body identifier. A zero or malformed
// value maps to the zero UUID, which every command and query constructor
// rejects during validation.
func kernelUUID(id openapi_types.UUID) kernel.UUID {
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}
	}
	return converted
}

func parseMoney(raw string) (kernel.Money, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return kernel.Money{}, err
	}
	return kernel.NewMoneyFromDecimal(amount)
}

func toOrderLines(lines []servers.OrderLine) []commands.OrderLine {
	converted := make([]commands.OrderLine, len(lines))
	for i, line := range lines {
		converted[i] = commands.OrderLine{
			MenuItemID:          kernelUUID(line.MenuItemId),
			Quantity:            line.Quantity,
			SpecialInstructions: derefString(line.SpecialInstructions),
		}
	}
	return converted
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
