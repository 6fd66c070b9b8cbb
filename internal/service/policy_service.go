package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"policydesk/internal/calendar"
	"policydesk/internal/errors"
	"policydesk/internal/model"
	"policydesk/internal/repository"
)

// CreatePolicyInput carries a candidate policy record without server fields.
type CreatePolicyInput struct {
	ClientName  string
	Phone       string
	VehicleNo   string
	VehicleType string
	PolicyType  model.PolicyType
	StartDate   model.DateOnly
	EndDate     model.DateOnly
	Amount      decimal.Decimal
	Discount    decimal.Decimal
}

// UpdatePolicyInput is a partial update: only non-nil fields are applied.
type UpdatePolicyInput struct {
	ClientName  *string
	Phone       *string
	VehicleNo   *string
	VehicleType *string
	PolicyType  *model.PolicyType
	StartDate   *model.DateOnly
	EndDate     *model.DateOnly
	Amount      *decimal.Decimal
	Discount    *decimal.Decimal
}

// Stats are the public aggregate counters, computed live on every call.
type Stats struct {
	TotalPolicies int64 `json:"totalPolicies"`
	TotalClients  int64 `json:"totalClients"`
	ThisYear      int64 `json:"thisYear"`
	ThisMonth     int64 `json:"thisMonth"`
	LastMonth     int64 `json:"lastMonth"`
}

// DateBuckets holds the policies starting and expiring on one calendar day.
// A policy whose start and end coincide appears in both lists.
type DateBuckets struct {
	Starting []model.Policy `json:"starting"`
	Expiring []model.Policy `json:"expiring"`
}

// PolicyService handles the policy record lifecycle and its read views.
type PolicyService interface {
	Create(ctx context.Context, in CreatePolicyInput) (*model.Policy, error)
	List(ctx context.Context, vehicleNo string) ([]model.Policy, error)
	Update(ctx context.Context, id uuid.UUID, in UpdatePolicyInput) (*model.Policy, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BucketsForDate(ctx context.Context, day model.DateOnly) (*DateBuckets, error)
	Stats(ctx context.Context) (*Stats, error)
	CalendarMonth(ctx context.Context, year int, month time.Month) (*calendar.Month, error)
}

type policyService struct {
	policyRepo repository.PolicyRepository
}

// NewPolicyService creates a new policy service.
func NewPolicyService(policyRepo repository.PolicyRepository) PolicyService {
	return &policyService{policyRepo: policyRepo}
}

// Create validates and stores a new policy record.
func (s *policyService) Create(ctx context.Context, in CreatePolicyInput) (*model.Policy, error) {
	if in.PolicyType == "" {
		in.PolicyType = model.PolicyTypeFirstParty
	}
	if !in.PolicyType.Valid() {
		return nil, errors.ErrInvalidPolicyType
	}
	if in.Amount.IsNegative() || in.Discount.IsNegative() {
		return nil, errors.ErrInvalidAmount
	}
	if !in.EndDate.After(in.StartDate) {
		return nil, errors.ErrInvalidDateRange
	}

	policy := &model.Policy{
		ClientName:  strings.TrimSpace(in.ClientName),
		Phone:       strings.TrimSpace(in.Phone),
		VehicleNo:   strings.TrimSpace(in.VehicleNo),
		VehicleType: strings.TrimSpace(in.VehicleType),
		PolicyType:  in.PolicyType,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Amount:      in.Amount,
		Discount:    in.Discount,
	}

	if err := s.policyRepo.Create(ctx, policy); err != nil {
		return nil, fmt.Errorf("create policy: %w", err)
	}

	return policy, nil
}

// List returns all policies, newest first, optionally filtered by
// vehicle-number substring.
func (s *policyService) List(ctx context.Context, vehicleNo string) ([]model.Policy, error) {
	return s.policyRepo.List(ctx, vehicleNo)
}

// Update applies a partial update. Only supplied fields change; the date
// range invariant is re-checked against the resulting record.
func (s *policyService) Update(ctx context.Context, id uuid.UUID, in UpdatePolicyInput) (*model.Policy, error) {
	existing, err := s.policyRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPolicyNotFound
		}
		return nil, fmt.Errorf("find policy: %w", err)
	}

	fields := map[string]interface{}{}
	if in.ClientName != nil {
		fields["client_name"] = strings.TrimSpace(*in.ClientName)
	}
	if in.Phone != nil {
		fields["phone"] = strings.TrimSpace(*in.Phone)
	}
	if in.VehicleNo != nil {
		fields["vehicle_no"] = strings.TrimSpace(*in.VehicleNo)
	}
	if in.VehicleType != nil {
		fields["vehicle_type"] = strings.TrimSpace(*in.VehicleType)
	}
	if in.PolicyType != nil {
		if !in.PolicyType.Valid() {
			return nil, errors.ErrInvalidPolicyType
		}
		fields["policy_type"] = *in.PolicyType
	}

	start, end := existing.StartDate, existing.EndDate
	if in.StartDate != nil {
		start = *in.StartDate
		fields["start_date"] = *in.StartDate
	}
	if in.EndDate != nil {
		end = *in.EndDate
		fields["end_date"] = *in.EndDate
	}
	if !end.After(start) {
		return nil, errors.ErrInvalidDateRange
	}

	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, errors.ErrInvalidAmount
		}
		fields["amount"] = *in.Amount
	}
	if in.Discount != nil {
		if in.Discount.IsNegative() {
			return nil, errors.ErrInvalidAmount
		}
		fields["discount"] = *in.Discount
	}

	updated, err := s.policyRepo.UpdateFields(ctx, id, fields)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPolicyNotFound
		}
		return nil, fmt.Errorf("update policy: %w", err)
	}

	return updated, nil
}

// Delete removes a policy by ID.
func (s *policyService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.policyRepo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrPolicyNotFound
		}
		return fmt.Errorf("delete policy: %w", err)
	}
	return nil
}

// BucketsForDate returns the policies starting and expiring on the given
// calendar day. Empty lists, never nil, so the JSON arrays are always present.
func (s *policyService) BucketsForDate(ctx context.Context, day model.DateOnly) (*DateBuckets, error) {
	starting, err := s.policyRepo.FindStartingOn(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("find starting policies: %w", err)
	}
	expiring, err := s.policyRepo.FindExpiringOn(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("find expiring policies: %w", err)
	}

	if starting == nil {
		starting = []model.Policy{}
	}
	if expiring == nil {
		expiring = []model.Policy{}
	}

	return &DateBuckets{Starting: starting, Expiring: expiring}, nil
}

// Stats computes the aggregate counters against wall-clock "now".
func (s *policyService) Stats(ctx context.Context) (*Stats, error) {
	today := model.Today()
	startOfYear := model.NewDate(today.Year(), time.January, 1)
	startOfMonth := model.NewDate(today.Year(), today.Month(), 1)
	startOfLastMonth := model.NewDate(today.Year(), today.Month()-1, 1)
	endOfLastMonth := startOfMonth.AddDays(-1)

	total, err := s.policyRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count policies: %w", err)
	}
	clients, err := s.policyRepo.CountDistinctClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("count clients: %w", err)
	}
	thisYear, err := s.policyRepo.CountStartingSince(ctx, startOfYear)
	if err != nil {
		return nil, fmt.Errorf("count this year: %w", err)
	}
	thisMonth, err := s.policyRepo.CountStartingSince(ctx, startOfMonth)
	if err != nil {
		return nil, fmt.Errorf("count this month: %w", err)
	}
	lastMonth, err := s.policyRepo.CountStartingBetween(ctx, startOfLastMonth, endOfLastMonth)
	if err != nil {
		return nil, fmt.Errorf("count last month: %w", err)
	}

	return &Stats{
		TotalPolicies: total,
		TotalClients:  clients,
		ThisYear:      thisYear,
		ThisMonth:     thisMonth,
		LastMonth:     lastMonth,
	}, nil
}

// CalendarMonth builds the month grid over the full policy list.
func (s *policyService) CalendarMonth(ctx context.Context, year int, month time.Month) (*calendar.Month, error) {
	policies, err := s.policyRepo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}
	grid := calendar.BuildMonth(year, month, model.Today(), policies)
	return &grid, nil
}
