package paymentrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// uniqueViolation is the postgres error code for a unique index violation.
const uniqueViolation = "23505"

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payment to the database. A colliding transaction id is
// reported as payment.DuplicatePaymentError.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return &payment.DuplicatePaymentError{TransactionID: aggregate.TransactionID()}
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing payment to the database.
func (r *GormPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&PaymentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a payment by ID.
func (r *GormPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForOrder retrieves all payments for an order, oldest first.
func (r *GormPaymentRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PaymentDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllInStatus retrieves all payments in the given status, oldest first.
func (r *GormPaymentRepository) GetAllInStatus(ctx context.Context, status payment.Status) ([]*payment.Payment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []PaymentDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "status = ?", status.String()).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// CompletedTotalForOrder returns the sum of completed payment amounts for
// an order.
func (r *GormPaymentRepository) CompletedTotalForOrder(ctx context.Context, orderID kernel.UUID) (kernel.Money, error) {
	if err := orderID.Validate(); err != nil {
		return kernel.Money{}, err
	}

	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&PaymentDTO{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("order_id = ? AND status = ?", orderID.Bytes(), payment.StatusCompleted.String()).
		Scan(&total).Error
	if err != nil {
		return kernel.Money{}, err
	}

	return kernel.NewMoneyFromDecimal(total)
}

func toDomainAll(dtos []PaymentDTO) ([]*payment.Payment, error) {
	payments := make([]*payment.Payment, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}

// GormTipRepository implements TipRepository using GORM.
type GormTipRepository struct {
	db *gorm.DB
}

// NewGormTipRepository creates a new GORM tip repository.
func NewGormTipRepository(db *gorm.DB) *GormTipRepository {
	return &GormTipRepository{db: db}
}

// Add saves a new tip to the database.
func (r *GormTipRepository) Add(ctx context.Context, tip *payment.Tip) error {
	if err := tip.Validate(); err != nil {
		return err
	}

	dto := tipFromDomain(tip)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllForOrder retrieves all tips for an order, oldest first.
func (r *GormTipRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Tip, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TipDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	tips := make([]*payment.Tip, 0, len(dtos))
	for _, dto := range dtos {
		t, tipErr := tipToDomain(dto)
		if tipErr != nil {
			return nil, tipErr
		}
		tips = append(tips, t)
	}

	return tips, nil
}
