package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for the order
// repository using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items").Error)

	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_AssignsNumber() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("First order")

	number, err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)
	suite.Positive(number)

	retrieved, err := suite.repository.GetByNumber(ctx, number)
	suite.Require().NoError(err)
	suite.Equal(number, retrieved.Number())
	suite.Equal("First order", retrieved.Name())
	suite.Equal("Test description", retrieved.Description())
	suite.Equal(order.Received, retrieved.Status())
	suite.Require().Len(retrieved.Items(), 2)
	suite.Equal("item-1", retrieved.Items()[0].ID())
	suite.Equal(1, retrieved.Items()[0].Quantity())
	suite.Equal("item-2", retrieved.Items()[1].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_SequentialNumbers() {
	ctx := context.Background()

	first, err := suite.repository.Add(ctx, suite.createTestOrder("First order"))
	suite.Require().NoError(err)
	second, err := suite.repository.Add(ctx, suite.createTestOrder("Second order"))
	suite.Require().NoError(err)

	suite.Greater(second, first)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_ReturnsError() {
	ctx := context.Background()

	_, err := suite.repository.Add(ctx, &order.Order{})
	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByNumber(ctx, 9999)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestExists() {
	ctx := context.Background()

	number, err := suite.repository.Add(ctx, suite.createTestOrder("First order"))
	suite.Require().NoError(err)

	exists, err := suite.repository.Exists(ctx, number)
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.Exists(ctx, number+1)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PartialScalars_LeaveAbsentFieldsUntouched() {
	ctx := context.Background()

	number, err := suite.repository.Add(ctx, suite.createTestOrder("First order"))
	suite.Require().NoError(err)

	newName := "Renamed order"
	err = suite.repository.Update(ctx, number, order.Patch{Name: &newName})
	suite.Require().NoError(err)

	retrieved, err := suite.repository.GetByNumber(ctx, number)
	suite.Require().NoError(err)
	suite.Equal("Renamed order", retrieved.Name())
	suite.Equal("Test description", retrieved.Description())
	suite.Equal(order.Received, retrieved.Status())
	suite.Len(retrieved.Items(), 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Status() {
	ctx := context.Background()

	number, err := suite.repository.Add(ctx, suite.createTestOrder("First order"))
	suite.Require().NoError(err)

	status := order.Done
	err = suite.repository.Update(ctx, number, order.Patch{Status: &status})
	suite.Require().NoError(err)

	retrieved, err := suite.repository.GetByNumber(ctx, number)
	suite.Require().NoError(err)
	suite.Equal(order.Done, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MergesItemsByID() {
	ctx := context.Background()

	number, err := suite.repository.Add(ctx, suite.createTestOrder("First order"))
	suite.Require().NoError(err)

	patched, err := order.NewItem("item-1", "Replaced name", 10)
	suite.Require().NoError(err)
	unknown, err := order.NewItem("item-999", "Never stored", 5)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, number, order.Patch{Items: []order.Item{patched, unknown}})
	suite.Require().NoError(err)

	retrieved, err := suite.repository.GetByNumber(ctx, number)
	suite.Require().NoError(err)

	// item-1 updated, item-2 untouched, item-999 silently ignored
	suite.Require().Len(retrieved.Items(), 2)
	suite.Equal("item-1", retrieved.Items()[0].ID())
	suite.Equal("Replaced name", retrieved.Items()[0].Name())
	suite.Equal(10, retrieved.Items()[0].Quantity())
	suite.Equal("item-2", retrieved.Items()[1].ID())
	suite.Equal("Second item", retrieved.Items()[1].Name())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_EmptyPatch_NoChanges() {
	ctx := context.Background()

	number, err := suite.repository.Add(ctx, suite.createTestOrder("First order"))
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, number, order.Patch{})
	suite.Require().NoError(err)

	retrieved, err := suite.repository.GetByNumber(ctx, number)
	suite.Require().NoError(err)
	suite.Equal("First order", retrieved.Name())
	suite.Len(retrieved.Items(), 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAndItems() {
	ctx := context.Background()

	number, err := suite.repository.Add(ctx, suite.createTestOrder("First order"))
	suite.Require().NoError(err)

	err = suite.repository.Delete(ctx, number)
	suite.Require().NoError(err)

	suite.assertOrderCount(0)

	var itemCount int64
	suite.Require().NoError(
		suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&itemCount).Error)
	suite.Zero(itemCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_LeavesOtherOrdersUntouched() {
	ctx := context.Background()

	first, err := suite.repository.Add(ctx, suite.createTestOrder("First order"))
	suite.Require().NoError(err)
	second, err := suite.repository.Add(ctx, suite.createTestOrder("Second order"))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Delete(ctx, first))

	retrieved, err := suite.repository.GetByNumber(ctx, second)
	suite.Require().NoError(err)
	suite.Len(retrieved.Items(), 2)
}

// createTestOrder creates a basic order with two items and default values.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(name string) *order.Order {
	item1, err := order.NewItem("item-1", "First item", 1)
	suite.Require().NoError(err)
	item2, err := order.NewItem("item-2", "Second item", 3)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(name, "Test description", []order.Item{item1, item2})
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
