package deliveryrepo

import (
	"context"
	"errors"
	"fmt"

	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/pkg/errs"

	"gorm.io/gorm"
)

// timestampColumns maps the lifecycle engine's field identifiers to their
// database columns. Guarded updates are built from this table so the engine
// itself stays free of storage vocabulary.
var timestampColumns = map[delivery.TimestampField]string{
	delivery.FieldApprovalTime:     "approval_time",
	delivery.FieldCompletedTime:    "completed_time",
	delivery.FieldCancellationTime: "cancellation_time",
}

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
// The connection must be opened with TranslateError enabled so unique-key
// violations surface as gorm.ErrDuplicatedKey.
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// Add inserts a new delivery record. A duplicate order identifier reports
// delivery.ErrOrderAlreadyExists without touching the stored record; the
// uniqueness check and the insert are one statement, so two concurrent
// creates with the same key cannot both succeed.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", delivery.ErrOrderAlreadyExists, aggregate.OrderID())
		}
		return err
	}

	return nil
}

// Get retrieves a delivery record by its order identifier.
func (r *GormDeliveryRepository) Get(ctx context.Context, orderID kernel.OrderID) (*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every delivery record.
func (r *GormDeliveryRepository) GetAll(ctx context.Context) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}

// ApplyTransition executes a guarded single-field write as one conditional
// UPDATE: every field guard and the window clause become WHERE conditions,
// and the assigned column is set to the transition's occurrence time. The
// database evaluates precondition and write atomically at row level, which
// is what makes concurrent callers racing the same order id safe: exactly
// one of them observes the preconditions as true.
//
// RowsAffected distinguishes the outcomes: 1 means the transition won, 0
// means the key is absent or a precondition failed (both reported as
// delivery.ErrInvalidTransition, by design indistinguishable here).
func (r *GormDeliveryRepository) ApplyTransition(
	ctx context.Context,
	orderID kernel.OrderID,
	transition delivery.Transition,
) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	assignColumn, ok := timestampColumns[transition.Assigns()]
	if !ok {
		return errs.NewValueIsInvalidError("transition assigns an unknown field")
	}

	query := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("order_id = ?", orderID.String())

	for _, g := range transition.Guards() {
		column, ok := timestampColumns[g.Field]
		if !ok {
			return errs.NewValueIsInvalidError("transition guards an unknown field")
		}
		if g.MustBeSet {
			query = query.Where(column + " IS NOT NULL")
		} else {
			query = query.Where(column + " IS NULL")
		}
	}

	if transition.RequiresElapsedWindow() {
		query = query.Where("end_time <= ?", transition.OccurredAt())
	}

	result := query.Update(assignColumn, transition.OccurredAt())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s %s", delivery.ErrInvalidTransition, transition.Name(), orderID)
	}

	return nil
}
