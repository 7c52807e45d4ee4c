package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/adapters/out/postgres/orderrepo"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ProductLineDTO{},
		&orderrepo.BoxDTO{},
		&orderrepo.AllocationDTO{},
		&orderrepo.StateHistoryDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, product_lines, boxes, allocations, state_history").Error,
	)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	line1, err := order.NewProductLine("P1", "Brake pad", 10, 10)
	suite.Require().NoError(err)
	line2, err := order.NewProductLine("P2", "Oil filter", 4, 2)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		"ORD-1001", "dealer-7", "alice",
		[]*order.ProductLine{line1, line2},
		time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsFullAggregate() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	// Drive the order mid-workflow with packed boxes
	suite.Require().NoError(testOrder.StartPicking("bob", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)))
	suite.Require().NoError(testOrder.StartPacking("bob", time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC)))
	box1, err := testOrder.AddBox("")
	suite.Require().NoError(err)
	box2, err := testOrder.AddBox("Fragile")
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.SetAllocation("P1", box1.ID(), 6))
	suite.Require().NoError(testOrder.SetAllocation("P1", box2.ID(), 4))
	suite.Require().NoError(testOrder.SetAllocation("P2", box2.ID(), 2))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(restored.IsEqual(testOrder))
	suite.Equal(order.Packing, restored.Status())
	suite.Equal("ORD-1001", restored.OriginalOrderID())
	suite.Equal(12, restored.TotalPacked())
	suite.Len(restored.Boxes(), 2)
	suite.Equal(2, restored.BoxSeq())
	suite.Len(restored.History(), 3)

	p1, exists := restored.Line("P1")
	suite.Require().True(exists)
	suite.Equal(map[string]int{box1.ID(): 6, box2.ID(): 4}, p1.Allocations())

	fragile, exists := restored.Box(box2.ID())
	suite.Require().True(exists)
	suite.Equal("Fragile", fragile.Name())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesChildRows() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.StartPicking("bob", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)))
	suite.Require().NoError(testOrder.StartPacking("bob", time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC)))
	box, err := testOrder.AddBox("")
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.SetAllocation("P1", box.ID(), 10))

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Packing, restored.Status())
	suite.Equal(10, restored.TotalPacked())
	suite.Len(restored.History(), 3)

	// No stale allocation rows survive a replacement update
	var allocationCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.AllocationDTO{}).Count(&allocationCount).Error)
	suite.Equal(int64(1), allocationCount)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, testOrder)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus() {
	ctx := context.Background()

	openOrder := suite.createTestOrder()
	pickingOrder := suite.createTestOrder()
	suite.Require().NoError(pickingOrder.StartPicking("bob", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)))

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, openOrder))
	suite.Require().NoError(suite.repository.Add(ctx, pickingOrder))

	openOrders, err := suite.repository.GetAllInStatus(ctx, order.Open)
	suite.Require().NoError(err)
	suite.Require().Len(openOrders, 1)
	suite.True(openOrders[0].IsEqual(openOrder))

	pickingOrders, err := suite.repository.GetAllInStatus(ctx, order.Picking)
	suite.Require().NoError(err)
	suite.Require().Len(pickingOrders, 1)
	suite.True(pickingOrders[0].IsEqual(pickingOrder))

	dispatchReady, err := suite.repository.GetAllInStatus(ctx, order.DispatchReady)
	suite.Require().NoError(err)
	suite.Empty(dispatchReady)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
