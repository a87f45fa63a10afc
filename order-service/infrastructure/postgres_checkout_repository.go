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

// PostgresCheckoutRepository implements CheckoutRepository using PostgreSQL
type PostgresCheckoutRepository struct {
	db *sqlx.DB
}

// NewPostgresCheckoutRepository creates a new PostgresCheckoutRepository
func NewPostgresCheckoutRepository(db *sqlx.DB) *PostgresCheckoutRepository {
	return &PostgresCheckoutRepository{db: db}
}

// postgresCheckout represents checkout in database
type postgresCheckout struct {
	ID              string    `db:"id"`
	State           string    `db:"state"`
	Email           string    `db:"email"`
	CouponCode      string    `db:"coupon_code"`
	Note            string    `db:"note"`
	PaymentMethodID *string   `db:"payment_method_id"`
	CreatedBy       string    `db:"created_by"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// postgresCheckoutItem represents checkout item in database
type postgresCheckoutItem struct {
	ID             int64           `db:"id"`
	CheckoutID     string          `db:"checkout_id"`
	ProductID      int64           `db:"product_id"`
	ProductName    string          `db:"product_name"`
	Quantity       int32           `db:"quantity"`
	ProductPrice   decimal.Decimal `db:"product_price"`
	DiscountAmount decimal.Decimal `db:"discount_amount"`
	TaxAmount      decimal.Decimal `db:"tax_amount"`
	TaxPercent     decimal.Decimal `db:"tax_percent"`
	Note           string          `db:"note"`
}

const checkoutColumns = `id, state, email, coupon_code, note, payment_method_id, created_by, created_at, updated_at`

// Create inserts the checkout and its items in one transaction. Item ids are
// written back in submission order.
func (r *PostgresCheckoutRepository) Create(ctx context.Context, checkout *domain.Checkout) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	query := `
		INSERT INTO checkouts (` + checkoutColumns + `)
		VALUES (:id, :state, :email, :coupon_code, :note, :payment_method_id, :created_by, :created_at, :updated_at)`

	if _, err := tx.NamedExecContext(ctx, query, toPostgresCheckout(checkout)); err != nil {
		return errors.Wrap(err, "failed to insert checkout")
	}

	if len(checkout.Items) > 0 {
		stmt, err := tx.PrepareNamedContext(ctx, `
			INSERT INTO checkout_items (
				checkout_id, product_id, product_name, quantity, product_price,
				discount_amount, tax_amount, tax_percent, note
			) VALUES (
				:checkout_id, :product_id, :product_name, :quantity, :product_price,
				:discount_amount, :tax_amount, :tax_percent, :note
			) RETURNING id`)
		if err != nil {
			return errors.Wrap(err, "failed to prepare checkout item insert")
		}
		defer stmt.Close()

		for i := range checkout.Items {
			item := &checkout.Items[i]
			if err := stmt.GetContext(ctx, &item.ID, toPostgresCheckoutItem(item)); err != nil {
				return errors.Wrapf(err, "failed to insert checkout item for product %d", item.ProductID)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit checkout")
	}

	return nil
}

// Save updates the mutable checkout fields. A checkout that has left PENDING
// is never moved back, so a save from a copy loaded before the state change
// fails.
func (r *PostgresCheckoutRepository) Save(ctx context.Context, checkout *domain.Checkout) error {
	return saveCheckout(ctx, r.db, checkout)
}

func saveCheckout(ctx context.Context, db sqlx.ExtContext, checkout *domain.Checkout) error {
	query := `
		UPDATE checkouts
		SET state = :state, coupon_code = :coupon_code, note = :note,
			payment_method_id = :payment_method_id, updated_at = :updated_at
		WHERE id = :id AND (state = :state OR state = '` + domain.CheckoutStatePending.String() + `')`

	result, err := sqlx.NamedExecContext(ctx, db, query, toPostgresCheckout(checkout))
	if err != nil {
		return errors.Wrap(err, "failed to update checkout")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to update checkout")
	}
	if rows == 0 {
		return errors.Errorf("checkout %s does not exist or is no longer %s", checkout.ID, domain.CheckoutStatePending)
	}

	return nil
}

// FindByID finds a checkout by ID
func (r *PostgresCheckoutRepository) FindByID(ctx context.Context, id string) (*domain.Checkout, error) {
	query := `SELECT ` + checkoutColumns + ` FROM checkouts WHERE id = $1`

	var row postgresCheckout
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find checkout")
	}

	return toDomainCheckout(&row)
}

// FindByIDAndState finds a checkout by ID in the given state
func (r *PostgresCheckoutRepository) FindByIDAndState(ctx context.Context, id string, state domain.CheckoutState) (*domain.Checkout, error) {
	query := `SELECT ` + checkoutColumns + ` FROM checkouts WHERE id = $1 AND state = $2`

	var row postgresCheckout
	if err := r.db.GetContext(ctx, &row, query, id, state.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find checkout")
	}

	return toDomainCheckout(&row)
}

// FindItemsByCheckoutID returns the checkout items in submission order
func (r *PostgresCheckoutRepository) FindItemsByCheckoutID(ctx context.Context, checkoutID string) ([]domain.CheckoutItem, error) {
	query := `
		SELECT id, checkout_id, product_id, product_name, quantity, product_price,
			   discount_amount, tax_amount, tax_percent, note
		FROM checkout_items
		WHERE checkout_id = $1
		ORDER BY id`

	var rows []postgresCheckoutItem
	if err := r.db.SelectContext(ctx, &rows, query, checkoutID); err != nil {
		return nil, errors.Wrap(err, "failed to find checkout items")
	}

	items := make([]domain.CheckoutItem, len(rows))
	for i, row := range rows {
		items[i] = domain.CheckoutItem{
			ID:             row.ID,
			CheckoutID:     row.CheckoutID,
			ProductID:      row.ProductID,
			ProductName:    row.ProductName,
			Quantity:       row.Quantity,
			ProductPrice:   row.ProductPrice,
			DiscountAmount: row.DiscountAmount,
			TaxAmount:      row.TaxAmount,
			TaxPercent:     row.TaxPercent,
			Note:           row.Note,
		}
	}

	return items, nil
}

func toPostgresCheckout(checkout *domain.Checkout) *postgresCheckout {
	var method *string
	if checkout.PaymentMethodID != nil {
		method = models.StringPtr(checkout.PaymentMethodID.String())
	}

	return &postgresCheckout{
		ID:              checkout.ID,
		State:           checkout.State.String(),
		Email:           checkout.Email,
		CouponCode:      checkout.CouponCode,
		Note:            checkout.Note,
		PaymentMethodID: method,
		CreatedBy:       checkout.CreatedBy,
		CreatedAt:       checkout.Timestamps.CreatedAt,
		UpdatedAt:       checkout.Timestamps.UpdatedAt,
	}
}

func toPostgresCheckoutItem(item *domain.CheckoutItem) *postgresCheckoutItem {
	return &postgresCheckoutItem{
		ID:             item.ID,
		CheckoutID:     item.CheckoutID,
		ProductID:      item.ProductID,
		ProductName:    item.ProductName,
		Quantity:       item.Quantity,
		ProductPrice:   item.ProductPrice,
		DiscountAmount: item.DiscountAmount,
		TaxAmount:      item.TaxAmount,
		TaxPercent:     item.TaxPercent,
		Note:           item.Note,
	}
}

func toDomainCheckout(row *postgresCheckout) (*domain.Checkout, error) {
	checkout := &domain.Checkout{
		ID:         row.ID,
		State:      domain.CheckoutState(row.State),
		Email:      row.Email,
		CouponCode: row.CouponCode,
		Note:       row.Note,
		CreatedBy:  row.CreatedBy,
		Timestamps: models.Timestamps{
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
	}

	if row.PaymentMethodID != nil {
		method, err := models.ParsePaymentMethod(*row.PaymentMethodID)
		if err != nil {
			return nil, errors.Wrapf(err, "checkout %s has an invalid payment method", row.ID)
		}
		checkout.PaymentMethodID = &method
	}

	return checkout, nil
}
