package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"policydesk/internal/errors"
	"policydesk/internal/model"
)

// MockPolicyRepository is a mock implementation of PolicyRepository.
type MockPolicyRepository struct {
	mock.Mock
}

func (m *MockPolicyRepository) Create(ctx context.Context, policy *model.Policy) error {
	args := m.Called(ctx, policy)
	return args.Error(0)
}

func (m *MockPolicyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Policy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Policy), args.Error(1)
}

func (m *MockPolicyRepository) List(ctx context.Context, vehicleNo string) ([]model.Policy, error) {
	args := m.Called(ctx, vehicleNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Policy), args.Error(1)
}

func (m *MockPolicyRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Policy, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Policy), args.Error(1)
}

func (m *MockPolicyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPolicyRepository) FindStartingOn(ctx context.Context, day model.DateOnly) ([]model.Policy, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Policy), args.Error(1)
}

func (m *MockPolicyRepository) FindExpiringOn(ctx context.Context, day model.DateOnly) ([]model.Policy, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Policy), args.Error(1)
}

func (m *MockPolicyRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPolicyRepository) CountDistinctClients(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPolicyRepository) CountStartingSince(ctx context.Context, from model.DateOnly) (int64, error) {
	args := m.Called(ctx, from)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPolicyRepository) CountStartingBetween(ctx context.Context, from, to model.DateOnly) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func validCreateInput() CreatePolicyInput {
	return CreatePolicyInput{
		ClientName:  "A",
		Phone:       "9999999999",
		VehicleNo:   "MH12AB1234",
		VehicleType: model.VehicleTypeCar,
		PolicyType:  model.PolicyTypeFirstParty,
		StartDate:   model.NewDate(2025, 1, 1),
		EndDate:     model.NewDate(2026, 1, 1),
		Amount:      decimal.NewFromInt(5000),
		Discount:    decimal.Zero,
	}
}

func TestPolicyService_Create(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*CreatePolicyInput)
		expectedError error
	}{
		{
			name:   "valid policy",
			mutate: func(in *CreatePolicyInput) {},
		},
		{
			name: "policy type defaults to 1st Party",
			mutate: func(in *CreatePolicyInput) {
				in.PolicyType = ""
			},
		},
		{
			name: "unknown policy type",
			mutate: func(in *CreatePolicyInput) {
				in.PolicyType = "2nd Party"
			},
			expectedError: errors.ErrInvalidPolicyType,
		},
		{
			name: "end date before start date",
			mutate: func(in *CreatePolicyInput) {
				in.EndDate = model.NewDate(2024, 12, 31)
			},
			expectedError: errors.ErrInvalidDateRange,
		},
		{
			name: "end date equals start date",
			mutate: func(in *CreatePolicyInput) {
				in.EndDate = in.StartDate
			},
			expectedError: errors.ErrInvalidDateRange,
		},
		{
			name: "negative amount",
			mutate: func(in *CreatePolicyInput) {
				in.Amount = decimal.NewFromInt(-1)
			},
			expectedError: errors.ErrInvalidAmount,
		},
		{
			name: "negative discount",
			mutate: func(in *CreatePolicyInput) {
				in.Discount = decimal.NewFromInt(-1)
			},
			expectedError: errors.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPolicyRepository)
			if tt.expectedError == nil {
				mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Policy")).Return(nil)
			}

			in := validCreateInput()
			tt.mutate(&in)

			service := NewPolicyService(mockRepo)
			policy, err := service.Create(context.Background(), in)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, policy)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, policy)
				assert.Equal(t, model.PolicyTypeFirstParty, policy.PolicyType)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPolicyService_Update_PartialFields(t *testing.T) {
	id := uuid.New()
	existing := &model.Policy{
		ID:         id,
		ClientName: "A",
		Phone:      "9999999999",
		VehicleNo:  "MH12AB1234",
		StartDate:  model.NewDate(2025, 1, 1),
		EndDate:    model.NewDate(2026, 1, 1),
	}

	mockRepo := new(MockPolicyRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(existing, nil)
	// Only the supplied field may reach the update map.
	mockRepo.On("UpdateFields", mock.Anything, id, mock.MatchedBy(func(fields map[string]interface{}) bool {
		if len(fields) != 1 {
			return false
		}
		v, ok := fields["client_name"]
		return ok && v == "B"
	})).Return(&model.Policy{ID: id, ClientName: "B"}, nil)

	newName := "B"
	service := NewPolicyService(mockRepo)
	updated, err := service.Update(context.Background(), id, UpdatePolicyInput{ClientName: &newName})

	assert.NoError(t, err)
	assert.Equal(t, "B", updated.ClientName)
	mockRepo.AssertExpectations(t)
}

func TestPolicyService_Update_DateRangeRechecked(t *testing.T) {
	id := uuid.New()
	existing := &model.Policy{
		ID:        id,
		StartDate: model.NewDate(2025, 1, 1),
		EndDate:   model.NewDate(2026, 1, 1),
	}

	mockRepo := new(MockPolicyRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(existing, nil)

	// Moving the end date behind the unchanged start date must fail.
	badEnd := model.NewDate(2024, 6, 1)
	service := NewPolicyService(mockRepo)
	_, err := service.Update(context.Background(), id, UpdatePolicyInput{EndDate: &badEnd})

	assert.Equal(t, errors.ErrInvalidDateRange, err)
	mockRepo.AssertExpectations(t)
}

func TestPolicyService_Update_NotFound(t *testing.T) {
	id := uuid.New()

	mockRepo := new(MockPolicyRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	name := "B"
	service := NewPolicyService(mockRepo)
	_, err := service.Update(context.Background(), id, UpdatePolicyInput{ClientName: &name})

	assert.Equal(t, errors.ErrPolicyNotFound, err)
}

func TestPolicyService_Delete_NotFound(t *testing.T) {
	id := uuid.New()

	mockRepo := new(MockPolicyRepository)
	mockRepo.On("Delete", mock.Anything, id).Return(gorm.ErrRecordNotFound)

	service := NewPolicyService(mockRepo)
	err := service.Delete(context.Background(), id)

	assert.Equal(t, errors.ErrPolicyNotFound, err)
}

func TestPolicyService_BucketsForDate(t *testing.T) {
	day := model.NewDate(2025, 6, 1)

	// One-day policy: start and end coincide, so it shows up in both buckets.
	oneDay := model.Policy{
		ID:        uuid.New(),
		StartDate: day,
		EndDate:   day,
	}

	mockRepo := new(MockPolicyRepository)
	mockRepo.On("FindStartingOn", mock.Anything, day).Return([]model.Policy{oneDay}, nil)
	mockRepo.On("FindExpiringOn", mock.Anything, day).Return([]model.Policy{oneDay}, nil)

	service := NewPolicyService(mockRepo)
	buckets, err := service.BucketsForDate(context.Background(), day)

	assert.NoError(t, err)
	assert.Len(t, buckets.Starting, 1)
	assert.Len(t, buckets.Expiring, 1)
	assert.Equal(t, oneDay.ID, buckets.Starting[0].ID)
	assert.Equal(t, oneDay.ID, buckets.Expiring[0].ID)
}

func TestPolicyService_BucketsForDate_Empty(t *testing.T) {
	day := model.NewDate(2025, 6, 1)

	mockRepo := new(MockPolicyRepository)
	mockRepo.On("FindStartingOn", mock.Anything, day).Return([]model.Policy(nil), nil)
	mockRepo.On("FindExpiringOn", mock.Anything, day).Return([]model.Policy(nil), nil)

	service := NewPolicyService(mockRepo)
	buckets, err := service.BucketsForDate(context.Background(), day)

	assert.NoError(t, err)
	assert.NotNil(t, buckets.Starting)
	assert.NotNil(t, buckets.Expiring)
	assert.Empty(t, buckets.Starting)
	assert.Empty(t, buckets.Expiring)
}

func TestPolicyService_Stats(t *testing.T) {
	today := model.Today()
	startOfMonth := model.NewDate(today.Year(), today.Month(), 1)

	mockRepo := new(MockPolicyRepository)
	mockRepo.On("CountAll", mock.Anything).Return(int64(10), nil)
	mockRepo.On("CountDistinctClients", mock.Anything).Return(int64(7), nil)
	mockRepo.On("CountStartingSince", mock.Anything, model.NewDate(today.Year(), 1, 1)).Return(int64(6), nil).Once()
	mockRepo.On("CountStartingSince", mock.Anything, startOfMonth).Return(int64(2), nil).Once()
	// Last month range runs from its first day to its last, both inclusive.
	mockRepo.On("CountStartingBetween", mock.Anything,
		model.NewDate(today.Year(), today.Month()-1, 1),
		startOfMonth.AddDays(-1),
	).Return(int64(3), nil)

	service := NewPolicyService(mockRepo)
	stats, err := service.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalPolicies)
	assert.Equal(t, int64(7), stats.TotalClients)
	assert.Equal(t, int64(6), stats.ThisYear)
	assert.Equal(t, int64(2), stats.ThisMonth)
	assert.Equal(t, int64(3), stats.LastMonth)
	mockRepo.AssertExpectations(t)
}
