package queries_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/adapters/out/postgres/orderrepo"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker satisfies the repository's tracker dependency in tests
// that only need persistence, not aggregate tracking.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// QueryHandlersTestSuite exercises the read-side handlers against a real
// PostgreSQL database seeded through the write-side repository.
type QueryHandlersTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
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
		&orderrepo.ProductLineDTO{},
		&orderrepo.BoxDTO{},
		&orderrepo.AllocationDTO{},
		&orderrepo.StateHistoryDTO{},
	)
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, product_lines, boxes, allocations, state_history").Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// seedOrder persists an order with one 10-unit product line in the given
// status, entered at the given time.
func (suite *QueryHandlersTestSuite) seedOrder(status order.Status, at time.Time) *order.Order {
	line, err := order.NewProductLine("P1", "Brake pad", 10, 10)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), "ORD-1001", "dealer-7", "alice",
		[]*order.ProductLine{line},
		at,
	)
	suite.Require().NoError(err)

	if status == order.Picking || status == order.Packing {
		suite.Require().NoError(o.StartPicking("bob", at.Add(time.Minute)))
	}
	if status == order.Packing {
		suite.Require().NoError(o.StartPacking("bob", at.Add(2*time.Minute)))
	}

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *QueryHandlersTestSuite) TestGetOrdersByStatus() {
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	packing := suite.seedOrder(order.Packing, base)
	suite.seedOrder(order.Open, base.Add(time.Hour))

	// Pack part of the order so totals aggregate from allocations
	box, err := packing.AddBox("")
	suite.Require().NoError(err)
	suite.Require().NoError(packing.SetAllocation("P1", box.ID(), 6))
	suite.Require().NoError(suite.orderRepo.Update(ctx, packing))

	handler := queries.NewGetOrdersByStatusQueryHandler(suite.db)
	query, err := queries.NewGetOrdersByStatusQuery(order.Packing)
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.Equal(packing.ID(), result[0].ID)
	suite.Equal("ORD-1001", result[0].OriginalOrderID)
	suite.Equal("dealer-7", result[0].DealerID)
	suite.Equal(order.Packing, result[0].Status)
	suite.Equal(10, result[0].TotalOrdered)
	suite.Equal(6, result[0].TotalPacked)
}

func (suite *QueryHandlersTestSuite) TestGetOrdersByStatus_Empty() {
	handler := queries.NewGetOrdersByStatusQueryHandler(suite.db)
	query, err := queries.NewGetOrdersByStatusQuery(order.DispatchReady)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *QueryHandlersTestSuite) TestGetStatusCounts() {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	suite.seedOrder(order.Open, base)
	suite.seedOrder(order.Open, base.Add(time.Minute))
	suite.seedOrder(order.Picking, base.Add(2*time.Minute))

	handler := queries.NewGetStatusCountsQueryHandler(suite.db)

	counts, err := handler.Handle(context.Background(), queries.NewGetStatusCountsQuery())
	suite.Require().NoError(err)

	suite.Equal([]queries.StatusCount{
		{Status: order.Open, Count: 2},
		{Status: order.Picking, Count: 1},
	}, counts)
}

func (suite *QueryHandlersTestSuite) TestGetStaleOrders() {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	stale := suite.seedOrder(order.Picking, base)
	suite.seedOrder(order.Open, base.Add(48*time.Hour))

	handler := queries.NewGetStaleOrdersQueryHandler(suite.db)
	query, err := queries.NewGetStaleOrdersQuery(base.Add(24 * time.Hour))
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.Equal(stale.ID(), result[0].ID)
	suite.Equal(order.Picking, result[0].Status)
}

func (suite *QueryHandlersTestSuite) TestGetOrder() {
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	packing := suite.seedOrder(order.Packing, base)

	box, err := packing.AddBox("Fragile")
	suite.Require().NoError(err)
	suite.Require().NoError(packing.SetAllocation("P1", box.ID(), 6))
	suite.Require().NoError(suite.orderRepo.Update(ctx, packing))

	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(packing.ID())
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(packing.ID(), result.ID)
	suite.Equal("ORD-1001", result.OriginalOrderID)
	suite.Equal("dealer-7", result.DealerID)
	suite.Equal(order.Packing, result.Status)
	suite.False(result.HasRemainingItems)

	suite.Require().Len(result.Lines, 1)
	suite.Equal("P1", result.Lines[0].ProductID)
	suite.Equal("Brake pad", result.Lines[0].Name)
	suite.Equal(10, result.Lines[0].QuantityOrdered)
	suite.Equal(6, result.Lines[0].QuantityPacked)
	suite.Equal(map[string]int{"B1": 6}, result.Lines[0].Allocations)

	suite.Require().Len(result.Boxes, 1)
	suite.Equal("B1", result.Boxes[0].BoxID)
	suite.Equal("Fragile", result.Boxes[0].Name)

	suite.Require().Len(result.History, 3)
	suite.Equal(order.Open, result.History[0].Status)
	suite.Equal(order.Packing, result.History[2].Status)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_NotFound() {
	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
