package infrastructure

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/shopyard/fulfillment/inventory-service/domain"
	"github.com/shopyard/fulfillment/shared/events"
	sharedinfra "github.com/shopyard/fulfillment/shared/infrastructure"
	"github.com/shopyard/fulfillment/shared/saga"
)

// PostgresStockRepository implements StockRepository using PostgreSQL
type PostgresStockRepository struct {
	db    *sqlx.DB
	inbox *sharedinfra.PostgresInbox
}

// NewPostgresStockRepository creates a new PostgresStockRepository
func NewPostgresStockRepository(db *sqlx.DB, inbox *sharedinfra.PostgresInbox) *PostgresStockRepository {
	return &PostgresStockRepository{db: db, inbox: inbox}
}

// postgresProduct represents product stock in database
type postgresProduct struct {
	ProductID            int64     `db:"product_id"`
	Name                 string    `db:"name"`
	Quantity             int64     `db:"stock_quantity"`
	StockTrackingEnabled bool      `db:"stock_tracking_enabled"`
	UpdatedAt            time.Time `db:"updated_at"`
}

const productColumns = `product_id, name, stock_quantity, stock_tracking_enabled, updated_at`

// SubtractStock applies the lines of commandID atomically and records the
// reply with the command, so a redelivered command is answered without a
// second decrement.
func (r *PostgresStockRepository) SubtractStock(
	ctx context.Context,
	commandID, correlationID string,
	lines []domain.StockLine,
	reply domain.ReplyBuilder,
) (*saga.StockReply, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	recorded, err := r.inbox.Lookup(ctx, tx, commandID)
	if err != nil {
		return nil, err
	}
	if recorded != nil {
		var previous saga.StockReply
		if err := json.Unmarshal(recorded.Reply, &previous); err != nil {
			return nil, errors.Wrapf(err, "failed to decode recorded reply of command %s", commandID)
		}
		return &previous, nil
	}

	stocks, err := r.lockProducts(ctx, tx, lines)
	if err != nil {
		return nil, err
	}

	outcome := domain.SubtractAll(stocks, lines)
	if outcome == nil {
		for _, line := range lines {
			if err := updateQuantity(ctx, tx, stocks[line.ProductID]); err != nil {
				return nil, err
			}
		}
	}

	answer := reply(outcome)
	encoded, err := json.Marshal(answer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode reply")
	}

	if err := r.inbox.Record(ctx, tx, sharedinfra.InboxEntry{
		MessageID:     commandID,
		Topic:         events.StockSubtractionTopic.String(),
		CorrelationID: correlationID,
		Reply:         encoded,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit stock subtraction")
	}

	return answer, nil
}

// lockProducts locks the rows of every product in lines, in id order so
// concurrent commands over the same products cannot deadlock.
func (r *PostgresStockRepository) lockProducts(ctx context.Context, tx *sqlx.Tx, lines []domain.StockLine) (map[int64]*domain.ProductStock, error) {
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = ANY($1) ORDER BY product_id FOR UPDATE`

	var rows []postgresProduct
	if err := tx.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		return nil, errors.Wrap(err, "failed to lock products")
	}

	stocks := make(map[int64]*domain.ProductStock, len(rows))
	for i := range rows {
		stocks[rows[i].ProductID] = toDomainStock(&rows[i])
	}

	return stocks, nil
}

func updateQuantity(ctx context.Context, tx *sqlx.Tx, stock *domain.ProductStock) error {
	if !stock.StockTrackingEnabled {
		return nil
	}

	_, err := tx.ExecContext(ctx,
		`UPDATE products SET stock_quantity = $1, updated_at = $2 WHERE product_id = $3`,
		stock.Quantity, stock.UpdatedAt, stock.ProductID,
	)
	if err != nil {
		return errors.Wrapf(err, "failed to update stock of product %d", stock.ProductID)
	}

	return nil
}

// FindByProductID finds the stock of a product
func (r *PostgresStockRepository) FindByProductID(ctx context.Context, productID int64) (*domain.ProductStock, error) {
	var row postgresProduct
	err := r.db.GetContext(ctx, &row, `SELECT `+productColumns+` FROM products WHERE product_id = $1`, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find product")
	}

	return toDomainStock(&row), nil
}

func toDomainStock(row *postgresProduct) *domain.ProductStock {
	return &domain.ProductStock{
		ProductID:            row.ProductID,
		Name:                 row.Name,
		Quantity:             row.Quantity,
		StockTrackingEnabled: row.StockTrackingEnabled,
		UpdatedAt:            row.UpdatedAt,
	}
}
