package queries_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/paymentrepo"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {}

type GetBillQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetBillQueryHandler
}

func (suite *GetBillQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.StatusLogDTO{},
		&paymentrepo.PaymentDTO{},
		&paymentrepo.TipDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetBillQueryHandler(db)
}

func (suite *GetBillQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetBillQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, order_status_logs, payments, tips").Error
	suite.Require().NoError(err)
}

func (suite *GetBillQueryHandlerTestSuite) TestHandle_OrderWithItemsAndPayment_ReturnsBill() {
	testOrder := suite.seedOrder()
	suite.seedCompletedPayment(testOrder.ID(), "20.00")

	query, err := queries.NewGetBillQuery(testOrder.ID())
	suite.Require().NoError(err)

	bill, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), bill.OrderID)
	suite.Equal(testOrder.OrderNumber(), bill.OrderNumber)
	suite.Equal("pending", bill.Status)
	suite.Len(bill.Lines, 2)

	suite.Equal("Grilled Salmon", bill.Lines[0].Name)
	suite.Equal(1, bill.Lines[0].Quantity)
	suite.True(bill.Lines[0].UnitPrice.IsEqual(kernel.MustMoney("15.00")))
	suite.True(bill.Lines[0].Subtotal.IsEqual(kernel.MustMoney("15.00")))

	suite.Equal("Lemonade", bill.Lines[1].Name)
	suite.Equal(3, bill.Lines[1].Quantity)
	suite.True(bill.Lines[1].Subtotal.IsEqual(kernel.MustMoney("15.00")))

	suite.True(bill.Subtotal.IsEqual(kernel.MustMoney("30.00")))
	suite.True(bill.Tax.IsEqual(kernel.MustMoney("5.40")))
	suite.True(bill.ServiceCharge.IsEqual(kernel.MustMoney("1.50")))
	suite.True(bill.Total.IsEqual(kernel.MustMoney("36.90")))
	suite.True(bill.AmountPaid.IsEqual(kernel.MustMoney("20.00")))
	suite.True(bill.BalanceDue.IsEqual(kernel.MustMoney("16.90")))
}

func (suite *GetBillQueryHandlerTestSuite) TestHandle_PendingPayment_DoesNotReduceBalance() {
	testOrder := suite.seedOrder()
	suite.seedPendingPayment(testOrder.ID(), "36.90")

	query, err := queries.NewGetBillQuery(testOrder.ID())
	suite.Require().NoError(err)

	bill, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(bill.AmountPaid.IsZero())
	suite.True(bill.BalanceDue.IsEqual(kernel.MustMoney("36.90")))
}

func (suite *GetBillQueryHandlerTestSuite) TestHandle_OverpaidOrder_BalanceFloorsAtZero() {
	testOrder := suite.seedOrder()
	suite.seedCompletedPayment(testOrder.ID(), "40.00")

	query, err := queries.NewGetBillQuery(testOrder.ID())
	suite.Require().NoError(err)

	bill, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(bill.AmountPaid.IsEqual(kernel.MustMoney("40.00")))
	suite.True(bill.BalanceDue.IsZero())
}

func (suite *GetBillQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetBillQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFound *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFound)
}

func (suite *GetBillQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetBillQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetBillQuery constructor")
}

func (suite *GetBillQueryHandlerTestSuite) seedOrder() *order.Order {
	now := time.Now().Truncate(time.Microsecond)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.SourcePOS,
		"",
		decimal.NewFromInt(18),
		decimal.NewFromInt(5),
		now,
	)
	suite.Require().NoError(err)

	salmon, err := menu.NewMenuItem(
		kernel.NewUUID(), "Grilled Salmon", kernel.MustMoney("15.00"),
		menu.PrepAreaKitchen, 50, 5, "portion")
	suite.Require().NoError(err)
	lemonade, err := menu.NewMenuItem(
		kernel.NewUUID(), "Lemonade", kernel.MustMoney("5.00"),
		menu.PrepAreaBar, 50, 5, "glass")
	suite.Require().NoError(err)

	first, err := order.NewItem(kernel.NewUUID(), salmon, 1, "", now)
	suite.Require().NoError(err)
	second, err := order.NewItem(kernel.NewUUID(), lemonade, 3, "", now.Add(time.Second))
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.AddItems(first, second))

	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), testOrder))

	return testOrder
}

func (suite *GetBillQueryHandlerTestSuite) seedCompletedPayment(orderID kernel.UUID, amount string) {
	now := time.Now().Truncate(time.Microsecond)

	p, err := payment.NewPayment(
		kernel.NewUUID(), orderID, kernel.MustMoney(amount),
		payment.MethodCash, "txn-"+kernel.NewUUID().String(), nil, now)
	suite.Require().NoError(err)
	_, err = p.Complete(now)
	suite.Require().NoError(err)

	repo := paymentrepo.NewGormPaymentRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), p))
}

func (suite *GetBillQueryHandlerTestSuite) seedPendingPayment(orderID kernel.UUID, amount string) {
	now := time.Now().Truncate(time.Microsecond)

	p, err := payment.NewPayment(
		kernel.NewUUID(), orderID, kernel.MustMoney(amount),
		payment.MethodCard, "txn-"+kernel.NewUUID().String(), nil, now)
	suite.Require().NoError(err)

	repo := paymentrepo.NewGormPaymentRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), p))
}

func TestGetBillQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetBillQueryHandlerTestSuite))
}
