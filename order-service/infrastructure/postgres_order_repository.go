package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/shopyard/fulfillment/order-service/domain"
	"github.com/shopyard/fulfillment/shared/models"
)

// PostgresOrderRepository implements OrderRepository using PostgreSQL
type PostgresOrderRepository struct {
	db *sqlx.DB
}

// NewPostgresOrderRepository creates a new PostgresOrderRepository
func NewPostgresOrderRepository(db *sqlx.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

// postgresOrder represents order in database
type postgresOrder struct {
	ID            int64           `db:"id"`
	CheckoutID    string          `db:"checkout_id"`
	Email         string          `db:"email"`
	Status        string          `db:"status"`
	PaymentID     *int64          `db:"payment_id"`
	PaymentStatus *string         `db:"payment_status"`
	TotalPrice    decimal.Decimal `db:"total_price"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
	Version       int             `db:"version"`
}

const orderColumns = `id, checkout_id, email, status, payment_id, payment_status, total_price, created_at, updated_at, version`

// PlaceOrder saves the checkout and inserts order unless the checkout already
// has one. The unique checkout_id makes concurrent callers converge on the
// same row.
func (r *PostgresOrderRepository) PlaceOrder(ctx context.Context, checkout *domain.Checkout, order *domain.Order) (*domain.Order, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if err := saveCheckout(ctx, tx, checkout); err != nil {
		return nil, false, err
	}

	insert := `
		INSERT INTO orders (checkout_id, email, status, payment_id, payment_status, total_price, created_at, updated_at, version)
		VALUES (:checkout_id, :email, :status, :payment_id, :payment_status, :total_price, :created_at, :updated_at, :version)
		ON CONFLICT (checkout_id) DO NOTHING
		RETURNING id`

	created := true
	var id int64
	stmt, err := tx.PrepareNamedContext(ctx, insert)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to prepare order insert")
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &id, toPostgresOrder(order))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		created = false
	case err != nil:
		return nil, false, errors.Wrap(err, "failed to insert order")
	}

	var row postgresOrder
	if err := tx.GetContext(ctx, &row, `SELECT `+orderColumns+` FROM orders WHERE checkout_id = $1`, checkout.ID); err != nil {
		return nil, false, errors.Wrap(err, "failed to load placed order")
	}

	if err := tx.Commit(); err != nil {
		return nil, false, errors.Wrap(err, "failed to commit order")
	}

	placed, err := toDomainOrder(&row)
	if err != nil {
		return nil, false, err
	}

	return placed, created, nil
}

// Save updates the order when the stored version still matches the one it
// was loaded with, and moves the version forward by one.
func (r *PostgresOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	query := `
		UPDATE orders
		SET status = :status, payment_id = :payment_id, payment_status = :payment_status,
			updated_at = :updated_at, version = version + 1
		WHERE id = :id AND version = :version`

	result, err := r.db.NamedExecContext(ctx, query, toPostgresOrder(order))
	if err != nil {
		return errors.Wrap(err, "failed to update order")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to update order")
	}
	if rows == 0 {
		return errors.Errorf("order %d was modified concurrently", order.ID)
	}

	order.Version = order.Version.Next()
	return nil
}

// FindByID finds an order by ID
func (r *PostgresOrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	return r.findOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
}

// FindByCheckoutID finds the order placed for a checkout
func (r *PostgresOrderRepository) FindByCheckoutID(ctx context.Context, checkoutID string) (*domain.Order, error) {
	return r.findOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE checkout_id = $1`, checkoutID)
}

func (r *PostgresOrderRepository) findOne(ctx context.Context, query string, arg interface{}) (*domain.Order, error) {
	var row postgresOrder
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find order")
	}

	return toDomainOrder(&row)
}

func toPostgresOrder(order *domain.Order) *postgresOrder {
	var paymentStatus *string
	if order.PaymentStatus != "" {
		paymentStatus = models.StringPtr(order.PaymentStatus.String())
	}

	return &postgresOrder{
		ID:            order.ID,
		CheckoutID:    order.CheckoutID,
		Email:         order.Email,
		Status:        order.Status.String(),
		PaymentID:     order.PaymentID,
		PaymentStatus: paymentStatus,
		TotalPrice:    order.TotalPrice,
		CreatedAt:     order.Timestamps.CreatedAt,
		UpdatedAt:     order.Timestamps.UpdatedAt,
		Version:       order.Version.Value,
	}
}

func toDomainOrder(row *postgresOrder) (*domain.Order, error) {
	status, err := domain.ParseOrderStatus(row.Status)
	if err != nil {
		return nil, errors.Wrapf(err, "order %d has an invalid status", row.ID)
	}

	order := &domain.Order{
		ID:         row.ID,
		CheckoutID: row.CheckoutID,
		Email:      row.Email,
		Status:     status,
		PaymentID:  row.PaymentID,
		TotalPrice: row.TotalPrice,
		Timestamps: models.Timestamps{
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
		Version: models.Version{Value: row.Version},
	}

	if row.PaymentStatus != nil {
		paymentStatus, err := models.ParsePaymentStatus(*row.PaymentStatus)
		if err != nil {
			return nil, errors.Wrapf(err, "order %d has an invalid payment status", row.ID)
		}
		order.PaymentStatus = paymentStatus
	}

	return order, nil
}
