package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"policydesk/internal/model"
)

// PolicyRepository defines policy persistence operations.
type PolicyRepository interface {
	Create(ctx context.Context, policy *model.Policy) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Policy, error)
	List(ctx context.Context, vehicleNo string) ([]model.Policy, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Policy, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindStartingOn(ctx context.Context, day model.DateOnly) ([]model.Policy, error)
	FindExpiringOn(ctx context.Context, day model.DateOnly) ([]model.Policy, error)
	CountAll(ctx context.Context) (int64, error)
	CountDistinctClients(ctx context.Context) (int64, error)
	CountStartingSince(ctx context.Context, from model.DateOnly) (int64, error)
	CountStartingBetween(ctx context.Context, from, to model.DateOnly) (int64, error)
}

type policyRepository struct {
	db *gorm.DB
}

// NewPolicyRepository creates a new policy repository.
func NewPolicyRepository(db *gorm.DB) PolicyRepository {
	return &policyRepository{db: db}
}

// Create creates a new policy.
func (r *policyRepository) Create(ctx context.Context, policy *model.Policy) error {
	return r.db.WithContext(ctx).Create(policy).Error
}

// FindByID finds a policy by ID.
func (r *policyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Policy, error) {
	var policy model.Policy
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&policy).Error; err != nil {
		return nil, err
	}
	return &policy, nil
}

// List returns all policies ordered by creation time, most recent first.
// A non-empty vehicleNo filters by registration-number substring.
func (r *policyRepository) List(ctx context.Context, vehicleNo string) ([]model.Policy, error) {
	var policies []model.Policy
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if vehicleNo != "" {
		q = q.Where("vehicle_no LIKE ?", "%"+vehicleNo+"%")
	}
	if err := q.Find(&policies).Error; err != nil {
		return nil, err
	}
	return policies, nil
}

// UpdateFields applies a partial field update and returns the updated record.
func (r *policyRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Policy, error) {
	if len(fields) > 0 {
		res := r.db.WithContext(ctx).Model(&model.Policy{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.FindByID(ctx, id)
}

// Delete removes a policy by ID.
func (r *policyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Policy{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindStartingOn returns policies whose start date falls on the given day.
func (r *policyRepository) FindStartingOn(ctx context.Context, day model.DateOnly) ([]model.Policy, error) {
	var policies []model.Policy
	if err := r.db.WithContext(ctx).Where("start_date = ?", day).Find(&policies).Error; err != nil {
		return nil, err
	}
	return policies, nil
}

// FindExpiringOn returns policies whose end date falls on the given day.
func (r *policyRepository) FindExpiringOn(ctx context.Context, day model.DateOnly) ([]model.Policy, error) {
	var policies []model.Policy
	if err := r.db.WithContext(ctx).Where("end_date = ?", day).Find(&policies).Error; err != nil {
		return nil, err
	}
	return policies, nil
}

// CountAll counts all policies.
func (r *policyRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Policy{}).Count(&count).Error
	return count, err
}

// CountDistinctClients counts distinct client names.
func (r *policyRepository) CountDistinctClients(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Policy{}).
		Distinct("client_name").Count(&count).Error
	return count, err
}

// CountStartingSince counts policies with a start date on or after from.
func (r *policyRepository) CountStartingSince(ctx context.Context, from model.DateOnly) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Policy{}).
		Where("start_date >= ?", from).Count(&count).Error
	return count, err
}

// CountStartingBetween counts policies with a start date in [from, to].
func (r *policyRepository) CountStartingBetween(ctx context.Context, from, to model.DateOnly) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Policy{}).
		Where("start_date >= ? AND start_date <= ?", from, to).Count(&count).Error
	return count, err
}
