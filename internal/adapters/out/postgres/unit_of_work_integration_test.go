package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/postgres/inventoryrepo"
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/paymentrepo"
	"restaurant/internal/adapters/out/postgres/staffrepo"
	"restaurant/internal/adapters/out/postgres/tablerepo"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies the GORM-based Unit of Work against
// a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
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
		&menurepo.MenuItemDTO{},
		&paymentrepo.PaymentDTO{},
		&paymentrepo.TipDTO{},
		&staffrepo.StaffDTO{},
		&tablerepo.TableDTO{},
		&inventoryrepo.TransactionDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, order_status_logs, menu_items, " +
			"payments, tips, staff, tables, inventory_transactions").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	menuItem := suite.createTestMenuItem()
	suite.Require().NoError(uow.MenuItemRepository().Add(ctx, menuItem))

	testOrder := suite.createTestOrder(menuItem)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	suite.Require().NoError(uow.Commit(ctx))

	suite.assertRowCount("menu_items", 1)
	suite.assertRowCount("orders", 1)
	suite.assertRowCount("order_items", 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	menuItem := suite.createTestMenuItem()
	suite.Require().NoError(uow.MenuItemRepository().Add(ctx, menuItem))

	testOrder := suite.createTestOrder(menuItem)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertRowCount("menu_items", 0)
	suite.assertRowCount("orders", 0)
	suite.assertRowCount("order_items", 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_IsIdempotent() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSeparateUnits_AreIsolated() {
	ctx := context.Background()

	writer := suite.factory.Create()
	suite.Require().NoError(writer.Begin(ctx))

	menuItem := suite.createTestMenuItem()
	suite.Require().NoError(writer.MenuItemRepository().Add(ctx, menuItem))

	// A second unit of work must not see the uncommitted row.
	reader := suite.factory.Create()
	_, err := reader.MenuItemRepository().Get(ctx, menuItem.ID())
	suite.Require().Error(err)

	suite.Require().NoError(writer.Commit(ctx))

	retrieved, err := reader.MenuItemRepository().Get(ctx, menuItem.ID())
	suite.Require().NoError(err)
	suite.Equal(menuItem.ID(), retrieved.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestMenuItem() *menu.MenuItem {
	menuItem, err := menu.NewMenuItem(
		kernel.NewUUID(),
		"Mojito",
		kernel.MustMoney("8.50"),
		menu.PrepAreaBar,
		40,
		5,
		"glass",
	)
	suite.Require().NoError(err)
	return menuItem
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(menuItem *menu.MenuItem) *order.Order {
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

	item, err := order.NewItem(kernel.NewUUID(), menuItem, 2, "", now)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.AddItems(item))

	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) assertRowCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
