package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/shopyard/fulfillment/payments-service/domain"
	"github.com/shopyard/fulfillment/shared/models"
)

// PostgresPaymentRepository implements PaymentRepository using PostgreSQL
type PostgresPaymentRepository struct {
	db *sqlx.DB
}

// NewPostgresPaymentRepository creates a new PostgresPaymentRepository
func NewPostgresPaymentRepository(db *sqlx.DB) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{db: db}
}

// postgresPayment represents payment in database
type postgresPayment struct {
	ID                   int64           `db:"id"`
	CheckoutID           string          `db:"checkout_id"`
	OrderID              *int64          `db:"order_id"`
	PaymentMethod        string          `db:"payment_method"`
	PaymentStatus        string          `db:"payment_status"`
	Amount               decimal.Decimal `db:"amount"`
	PaymentFee           decimal.Decimal `db:"payment_fee"`
	GatewayTransactionID string          `db:"gateway_transaction_id"`
	FailureMessage       *string         `db:"failure_message"`
	SourceEventID        *string         `db:"source_event_id"`
	CreatedAt            time.Time       `db:"created_at"`
}

const paymentColumns = `id, checkout_id, order_id, payment_method, payment_status, amount, payment_fee,
	gateway_transaction_id, failure_message, source_event_id, created_at`

// Create inserts a payment and sets its ID. Payments created from the same
// source event resolve to the first stored row.
func (r *PostgresPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (
			checkout_id, order_id, payment_method, payment_status, amount, payment_fee,
			gateway_transaction_id, failure_message, source_event_id, created_at
		) VALUES (
			:checkout_id, :order_id, :payment_method, :payment_status, :amount, :payment_fee,
			:gateway_transaction_id, :failure_message, :source_event_id, :created_at
		)
		ON CONFLICT (source_event_id) DO NOTHING
		RETURNING id`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return errors.Wrap(err, "failed to prepare payment insert")
	}
	defer stmt.Close()

	var id int64
	err = stmt.GetContext(ctx, &id, toPostgresPayment(payment))
	if errors.Is(err, sql.ErrNoRows) && payment.SourceEventID != nil {
		err = r.db.GetContext(ctx, &id, `SELECT id FROM payments WHERE source_event_id = $1`, *payment.SourceEventID)
	}
	if err != nil {
		return errors.Wrap(err, "failed to insert payment")
	}

	payment.ID = id
	return nil
}

// FindByID finds a payment by ID
func (r *PostgresPaymentRepository) FindByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var row postgresPayment
	if err := r.db.GetContext(ctx, &row, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find payment")
	}

	return toDomainPayment(&row)
}

func toPostgresPayment(payment *domain.Payment) *postgresPayment {
	return &postgresPayment{
		ID:                   payment.ID,
		CheckoutID:           payment.CheckoutID,
		OrderID:              payment.OrderID,
		PaymentMethod:        payment.PaymentMethod.String(),
		PaymentStatus:        payment.Status.String(),
		Amount:               payment.Amount,
		PaymentFee:           payment.PaymentFee,
		GatewayTransactionID: payment.GatewayTransactionID,
		FailureMessage:       payment.FailureMessage,
		SourceEventID:        payment.SourceEventID,
		CreatedAt:            payment.CreatedAt,
	}
}

func toDomainPayment(row *postgresPayment) (*domain.Payment, error) {
	method, err := models.ParsePaymentMethod(row.PaymentMethod)
	if err != nil {
		return nil, errors.Wrapf(err, "payment %d has an invalid method", row.ID)
	}

	status, err := models.ParsePaymentStatus(row.PaymentStatus)
	if err != nil {
		return nil, errors.Wrapf(err, "payment %d has an invalid status", row.ID)
	}

	return &domain.Payment{
		ID:                   row.ID,
		CheckoutID:           row.CheckoutID,
		OrderID:              row.OrderID,
		PaymentMethod:        method,
		Status:               status,
		Amount:               row.Amount,
		PaymentFee:           row.PaymentFee,
		GatewayTransactionID: row.GatewayTransactionID,
		FailureMessage:       row.FailureMessage,
		SourceEventID:        row.SourceEventID,
		CreatedAt:            row.CreatedAt,
	}, nil
}
