package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/andresuchdata/stockopt/internal/domain"
	"github.com/andresuchdata/stockopt/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfigurationService_SaveParameters(t *testing.T) {
	in := &domain.CalculationParameters{ProductID: 1, DeliveryLeadTime: 4, OrderMultiple: 10}
	saved := &domain.CalculationParameters{ID: 9, ProductID: 1, DeliveryLeadTime: 4, OrderMultiple: 10}

	params := new(mockParametersRepo)
	params.On("Save", mock.Anything, in).Return(saved, nil)
	cacheMock := new(mockCache)
	cacheMock.On("InvalidateProduct", mock.Anything, int64(1)).Return(nil)

	got, err := NewConfigurationService(params, cacheMock).SaveParameters(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
	params.AssertExpectations(t)
	cacheMock.AssertExpectations(t)
}

func TestConfigurationService_SaveParameters_Validation(t *testing.T) {
	tests := []struct {
		name   string
		params *domain.CalculationParameters
	}{
		{name: "nil", params: nil},
		{name: "missing product", params: &domain.CalculationParameters{DeliveryLeadTime: 3, OrderMultiple: 12}},
		{name: "negative lead time", params: &domain.CalculationParameters{ProductID: 1, DeliveryLeadTime: -1, OrderMultiple: 12}},
		{name: "zero multiple", params: &domain.CalculationParameters{ProductID: 1, DeliveryLeadTime: 3, OrderMultiple: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := new(mockParametersRepo)
			svc := NewConfigurationService(params, nil)

			_, err := svc.SaveParameters(context.Background(), tt.params)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			params.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestConfigurationService_SaveParameters_CacheFailureIgnored(t *testing.T) {
	in := &domain.CalculationParameters{ProductID: 1, DeliveryLeadTime: 0, OrderMultiple: 5}

	params := new(mockParametersRepo)
	params.On("Save", mock.Anything, in).Return(in, nil)
	cacheMock := new(mockCache)
	cacheMock.On("InvalidateProduct", mock.Anything, int64(1)).Return(errors.New("redis down"))

	_, err := NewConfigurationService(params, cacheMock).SaveParameters(context.Background(), in)
	assert.NoError(t, err)
}

func TestConfigurationService_ListParameters(t *testing.T) {
	list := []*domain.CalculationParameters{{ID: 1, ProductID: 1, DeliveryLeadTime: 3, OrderMultiple: 12}}
	params := new(mockParametersRepo)
	params.On("List", mock.Anything).Return(list, nil).Once()

	got, err := NewConfigurationService(params, nil).ListParameters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, list, got)

	params.On("List", mock.Anything).Return(nil, repository.ErrNotFound).Once()
	_, err = NewConfigurationService(params, nil).ListParameters(context.Background())
	assert.Error(t, err)
}

func TestConfigurationService_SaveParameters_UnknownProduct(t *testing.T) {
	in := &domain.CalculationParameters{ProductID: 5, DeliveryLeadTime: 3, OrderMultiple: 12}

	params := new(mockParametersRepo)
	params.On("Save", mock.Anything, in).
		Return(nil, fmt.Errorf("failed to save calculation parameters: %w", repository.ErrMissingReference))
	cacheMock := new(mockCache)

	_, err := NewConfigurationService(params, cacheMock).SaveParameters(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.EqualError(t, err, "Product not found: 5")
	cacheMock.AssertNotCalled(t, "InvalidateProduct", mock.Anything, mock.Anything)
}

func TestConfigurationService_GetParameters(t *testing.T) {
	params := new(mockParametersRepo)
	params.On("FindByID", mock.Anything, int64(1)).
		Return(&domain.CalculationParameters{ID: 1, ProductID: 1, DeliveryLeadTime: 3, OrderMultiple: 12}, nil)
	params.On("FindByID", mock.Anything, int64(2)).Return(nil, repository.ErrNotFound)
	svc := NewConfigurationService(params, nil)

	got, err := svc.GetParameters(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 12, got.OrderMultiple)

	_, err = svc.GetParameters(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrParametersNotFound)
}
