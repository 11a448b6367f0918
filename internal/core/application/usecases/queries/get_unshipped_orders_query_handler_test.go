package queries_test

import (
	"context"
	"testing"
	"time"

	"printshop/internal/adapters/out/postgres/orderrepo"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services/rating"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(kernel.UUID, any) {}

type GetUnshippedOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetUnshippedOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetUnshippedOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetUnshippedOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetUnshippedOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetUnshippedOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetUnshippedOrdersQueryHandlerTestSuite) newOrder(placedAt time.Time) *order.PrintOrder {
	zip, err := kernel.NewZipCode("10001")
	suite.Require().NoError(err)

	price := order.PriceSnapshot{
		Base:     suite.money(2000),
		Material: suite.money(373),
		Shipping: suite.money(520),
		Rush:     suite.money(0),
		Tax:      suite.money(247),
		Total:    suite.money(3140),
	}

	o, err := order.NewPrintOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.Spec{
			MaterialName:   "PLA Basic",
			Quantity:       2,
			DestinationZip: zip,
			ServiceTier:    rating.TierEconomy,
			UnitWeightG:    186.62,
		},
		price,
		placedAt)
	suite.Require().NoError(err)
	return o
}

func (suite *GetUnshippedOrdersQueryHandlerTestSuite) money(cents int64) kernel.Money {
	m, err := kernel.NewMoney(cents)
	suite.Require().NoError(err)
	return m
}

func (suite *GetUnshippedOrdersQueryHandlerTestSuite) addOrder(o *order.PrintOrder) {
	err := suite.orderRepo.Add(context.Background(), o)
	suite.Require().NoError(err)
}

func (suite *GetUnshippedOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetUnshippedOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetUnshippedOrdersQueryHandlerTestSuite) TestHandle_ExcludesTerminalOrders() {
	now := time.Now()

	pending := suite.newOrder(now)
	suite.addOrder(pending)

	paid := suite.newOrder(now)
	suite.Require().NoError(paid.MarkPaid())
	suite.addOrder(paid)

	shipped := suite.newOrder(now)
	suite.Require().NoError(shipped.MarkPaid())
	suite.Require().NoError(shipped.Ship("1Z999AA10123456784"))
	suite.addOrder(shipped)

	deliveredOrder := suite.newOrder(now)
	suite.Require().NoError(deliveredOrder.MarkPaid())
	suite.Require().NoError(deliveredOrder.Ship("1Z999AA10123456785"))
	suite.Require().NoError(deliveredOrder.MarkDelivered())
	suite.addOrder(deliveredOrder)

	cancelled := suite.newOrder(now)
	suite.Require().NoError(cancelled.Cancel())
	suite.addOrder(cancelled)

	query := queries.NewGetUnshippedOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 3)

	resultIDs := make(map[kernel.UUID]bool)
	for _, r := range result {
		resultIDs[r.ID] = true
	}
	suite.True(resultIDs[pending.ID()])
	suite.True(resultIDs[paid.ID()])
	suite.True(resultIDs[shipped.ID()])
	suite.False(resultIDs[deliveredOrder.ID()])
	suite.False(resultIDs[cancelled.ID()])
}

func (suite *GetUnshippedOrdersQueryHandlerTestSuite) TestHandle_MapsAllFields() {
	placedAt := time.Date(2026, 8, 28, 15, 4, 5, 0, time.UTC)
	o := suite.newOrder(placedAt)
	suite.Require().NoError(o.MarkPaid())
	suite.Require().NoError(o.Ship("1Z999AA10123456784"))
	suite.addOrder(o)

	query := queries.NewGetUnshippedOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	row := result[0]
	suite.Equal(o.ID(), row.ID)
	suite.Equal(o.Number(), row.Number)
	suite.Equal("PLA Basic", row.MaterialName)
	suite.Equal(2, row.Quantity)
	suite.Equal("10001", row.DestinationZip)
	suite.Equal("economy", row.ServiceTier)
	suite.Equal("Shipped", row.Status)
	suite.Equal("1Z999AA10123456784", row.TrackingNumber)
	suite.Equal(int64(3140), row.PriceTotalCents)
	suite.WithinDuration(placedAt, row.PlacedAt, time.Second)
}

func (suite *GetUnshippedOrdersQueryHandlerTestSuite) TestHandle_OrdersSortedByPlacementTime() {
	base := time.Now().Add(-time.Hour)

	second := suite.newOrder(base.Add(10 * time.Minute))
	suite.addOrder(second)

	first := suite.newOrder(base)
	suite.addOrder(first)

	third := suite.newOrder(base.Add(20 * time.Minute))
	suite.addOrder(third)

	query := queries.NewGetUnshippedOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(first.ID(), result[0].ID)
	suite.Equal(second.ID(), result[1].ID)
	suite.Equal(third.ID(), result[2].ID)
}

func (suite *GetUnshippedOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetUnshippedOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetUnshippedOrdersQuery constructor")
}

func (suite *GetUnshippedOrdersQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	o := suite.newOrder(time.Now())
	suite.addOrder(o)

	query := queries.NewGetUnshippedOrdersQuery()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetUnshippedOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetUnshippedOrdersQueryHandlerTestSuite))
}
