package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/campusmart/backend/internal/domain/order"
	"github.com/campusmart/backend/internal/domain/shared"
	"github.com/campusmart/backend/internal/domain/shared/valueobject"
	"github.com/campusmart/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockOrderRepository creates a GormOrderRepository with a mocked SQL connection
func newMockOrderRepository(t *testing.T) (*GormOrderRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormOrderRepository(gormDB), mock, mockDB
}

func orderColumns() []string {
	return []string{"id", "created_at", "updated_at", "version", "order_number", "user_id", "seller_id", "subtotal", "total_amount", "status", "payment_method", "payment_status", "payment_receipt_url", "notes", "admin_notes", "cancel_reason", "delivery_confirmed"}
}

func orderItemColumns() []string {
	return []string{"id", "created_at", "updated_at", "order_id", "product_id", "product_name", "product_image", "unit_price", "quantity", "total_price"}
}

func TestGormOrderRepository_FindByID(t *testing.T) {
	t.Run("finds order with item snapshots", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		orderID := uuid.New()
		userID := uuid.New()
		sellerID := uuid.New()
		productID := uuid.New()
		now := time.Now()

		orderRows := sqlmock.NewRows(orderColumns()).
			AddRow(orderID, now, now, 1, "ORD-20260830-0001", userID, sellerID,
				decimal.NewFromInt(150), decimal.NewFromInt(150),
				order.StatusPending, order.PaymentMethodGCash, order.PaymentStatusPending,
				"/uploads/receipts/r1.jpg", "", "", "", false)

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(orderID, 1).
			WillReturnRows(orderRows)

		itemRows := sqlmock.NewRows(orderItemColumns()).
			AddRow(uuid.New(), now, now, orderID, productID, "Kapeng Barako", "",
				decimal.NewFromInt(50), 3, decimal.NewFromInt(150))

		mock.ExpectQuery(`SELECT \* FROM "order_items" WHERE "order_items"\."order_id" = \$1`).
			WithArgs(orderID).
			WillReturnRows(itemRows)

		o, err := repo.FindByID(context.Background(), orderID)

		assert.NoError(t, err)
		assert.NotNil(t, o)
		assert.Equal(t, "ORD-20260830-0001", o.OrderNumber)
		require.Len(t, o.Items, 1)
		assert.Equal(t, "Kapeng Barako", o.Items[0].ProductName)
		assert.Equal(t, int64(3), o.Items[0].Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns error for non-existent order", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		orderID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(orderID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		o, err := repo.FindByID(context.Background(), orderID)

		assert.Error(t, err)
		assert.Nil(t, o)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOrderRepository_FindByOrderNumber(t *testing.T) {
	t.Run("finds order by public reference", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		orderID := uuid.New()
		now := time.Now()

		orderRows := sqlmock.NewRows(orderColumns()).
			AddRow(orderID, now, now, 1, "ORD-20260830-0002", uuid.New(), uuid.New(),
				decimal.NewFromInt(70), decimal.NewFromInt(70),
				order.StatusConfirmed, order.PaymentMethodPickupCash, order.PaymentStatusPending,
				"", "", "", "", false)

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE order_number = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("ORD-20260830-0002", 1).
			WillReturnRows(orderRows)

		mock.ExpectQuery(`SELECT \* FROM "order_items" WHERE "order_items"\."order_id" = \$1`).
			WithArgs(orderID).
			WillReturnRows(sqlmock.NewRows(orderItemColumns()))

		o, err := repo.FindByOrderNumber(context.Background(), "ORD-20260830-0002")

		assert.NoError(t, err)
		assert.NotNil(t, o)
		assert.Equal(t, order.StatusConfirmed, o.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOrderRepository_FindPendingPaymentVerification(t *testing.T) {
	t.Run("returns unverified online payments oldest first", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		orderID := uuid.New()
		now := time.Now()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE status = \$1 AND payment_status = \$2`).
			WithArgs(order.StatusPending, order.PaymentStatusPending).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		orderRows := sqlmock.NewRows(orderColumns()).
			AddRow(orderID, now, now, 1, "ORD-20260830-0003", uuid.New(), uuid.New(),
				decimal.NewFromInt(130), decimal.NewFromInt(130),
				order.StatusPending, order.PaymentMethodGCash, order.PaymentStatusPending,
				"/uploads/receipts/r3.jpg", "", "", "", false)

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE status = \$1 AND payment_status = \$2 ORDER BY created_at ASC LIMIT .*`).
			WithArgs(order.StatusPending, order.PaymentStatusPending, 20).
			WillReturnRows(orderRows)

		mock.ExpectQuery(`SELECT \* FROM "order_items" WHERE "order_items"\."order_id" = \$1`).
			WithArgs(orderID).
			WillReturnRows(sqlmock.NewRows(orderItemColumns()))

		orders, total, err := repo.FindPendingPaymentVerification(context.Background(), shared.Filter{Page: 1, PageSize: 20})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, orders, 1)
		assert.Equal(t, "/uploads/receipts/r3.jpg", orders[0].PaymentReceiptURL)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOrderRepository_FindByUserID(t *testing.T) {
	t.Run("applies status filter", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		userID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE user_id = \$1 AND status = \$2`).
			WithArgs(userID, "pending").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE user_id = \$1 AND status = \$2 ORDER BY created_at DESC LIMIT .*`).
			WithArgs(userID, "pending", 20).
			WillReturnRows(sqlmock.NewRows(orderColumns()))

		orders, total, err := repo.FindByUserID(context.Background(), userID, shared.Filter{
			Page:     1,
			PageSize: 20,
			Filters:  map[string]interface{}{"status": "pending"},
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, orders)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// newSqliteOrderRepository runs the order repository against an in-memory
// database for full round trips instead of SQL expectations.
func newSqliteOrderRepository(t *testing.T) *GormOrderRepository {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.OrderModel{}, &models.OrderItemModel{}))
	return NewGormOrderRepository(db)
}

func mustPickupOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewOrderItem(uuid.New(), "Adobo Rice Bowl", "", valueobject.NewMoneyPHPFromFloat(85), 2)
	require.NoError(t, err)
	o, err := order.NewOrder(uuid.New(), uuid.New(), []order.OrderItem{item}, order.PaymentMethodPickupCash, "", "")
	require.NoError(t, err)
	return o
}

func TestGormOrderRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a status change and bumps the version", func(t *testing.T) {
		repo := newSqliteOrderRepository(t)
		o := mustPickupOrder(t)
		require.NoError(t, repo.Create(ctx, o))

		require.NoError(t, o.TransitionTo(order.StatusProcessing, order.ActorSeller))
		require.NoError(t, repo.Update(ctx, o))

		stored, err := repo.FindByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, order.StatusProcessing, stored.Status)
		assert.Equal(t, 2, stored.Version)
	})

	t.Run("a stale copy cannot overwrite a cancelled order", func(t *testing.T) {
		repo := newSqliteOrderRepository(t)
		o := mustPickupOrder(t)
		require.NoError(t, repo.Create(ctx, o))

		buyerCopy, err := repo.FindByID(ctx, o.ID)
		require.NoError(t, err)
		sellerCopy, err := repo.FindByID(ctx, o.ID)
		require.NoError(t, err)

		require.NoError(t, buyerCopy.Cancel("found a cheaper stall"))
		require.NoError(t, repo.Update(ctx, buyerCopy))

		require.NoError(t, sellerCopy.TransitionTo(order.StatusProcessing, order.ActorSeller))
		err = repo.Update(ctx, sellerCopy)
		require.ErrorIs(t, err, shared.ErrConcurrencyConflict)

		stored, err := repo.FindByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, stored.Status)
	})
}

func TestGormOrderRepository_CountByStatus(t *testing.T) {
	t.Run("counts orders in status", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE status = \$1`).
			WithArgs(order.StatusPickedUp).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

		count, err := repo.CountByStatus(context.Background(), order.StatusPickedUp)

		assert.NoError(t, err)
		assert.Equal(t, int64(12), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOrderRepository_InterfaceCompliance(t *testing.T) {
	t.Run("implements OrderRepository interface", func(t *testing.T) {
		repo, _, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		var _ order.OrderRepository = repo
	})
}
