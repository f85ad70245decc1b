package service

import (
	"context"

	"github.com/andresuchdata/stockopt/internal/domain"
	"github.com/andresuchdata/stockopt/internal/repository"
	"github.com/andresuchdata/stockopt/internal/storage"
	"github.com/stretchr/testify/mock"
)

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) List(ctx context.Context) ([]*domain.Product, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockParametersRepo struct{ mock.Mock }

func (m *mockParametersRepo) FindByID(ctx context.Context, id int64) (*domain.CalculationParameters, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.CalculationParameters), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockParametersRepo) FindByProductID(ctx context.Context, productID int64) (*domain.CalculationParameters, error) {
	args := m.Called(ctx, productID)
	if p := args.Get(0); p != nil {
		return p.(*domain.CalculationParameters), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockParametersRepo) List(ctx context.Context) ([]*domain.CalculationParameters, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]*domain.CalculationParameters), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockParametersRepo) Save(ctx context.Context, params *domain.CalculationParameters) (*domain.CalculationParameters, error) {
	args := m.Called(ctx, params)
	if p := args.Get(0); p != nil {
		return p.(*domain.CalculationParameters), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSalesProfileRepo struct{ mock.Mock }

func (m *mockSalesProfileRepo) FindByID(ctx context.Context, id int64) (*domain.SalesProfile, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.SalesProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSalesProfileRepo) FindByProductID(ctx context.Context, productID int64) ([]*domain.SalesProfile, error) {
	args := m.Called(ctx, productID)
	if p := args.Get(0); p != nil {
		return p.([]*domain.SalesProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSalesProfileRepo) Save(ctx context.Context, profile *domain.SalesProfile) (*domain.SalesProfile, error) {
	args := m.Called(ctx, profile)
	if p := args.Get(0); p != nil {
		return p.(*domain.SalesProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSalesProfileRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockPurchaseOrderRepo struct{ mock.Mock }

func (m *mockPurchaseOrderRepo) SaveAll(ctx context.Context, orders []*domain.PurchaseOrder) error {
	return m.Called(ctx, orders).Error(0)
}

func (m *mockPurchaseOrderRepo) FindByProductID(ctx context.Context, productID int64) ([]*domain.PurchaseOrder, error) {
	args := m.Called(ctx, productID)
	if p := args.Get(0); p != nil {
		return p.([]*domain.PurchaseOrder), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) GetOptimalMultiple(ctx context.Context, productID int64, initialStock int) (int, bool, error) {
	args := m.Called(ctx, productID, initialStock)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *mockCache) SetOptimalMultiple(ctx context.Context, productID int64, initialStock int, multiple int) error {
	return m.Called(ctx, productID, initialStock, multiple).Error(0)
}

func (m *mockCache) GetMonthlyStats(ctx context.Context, productID int64, initialStock int) ([]domain.MonthlyStockStats, bool, error) {
	args := m.Called(ctx, productID, initialStock)
	var stats []domain.MonthlyStockStats
	if s := args.Get(0); s != nil {
		stats = s.([]domain.MonthlyStockStats)
	}
	return stats, args.Bool(1), args.Error(2)
}

func (m *mockCache) SetMonthlyStats(ctx context.Context, productID int64, initialStock int, stats []domain.MonthlyStockStats) error {
	return m.Called(ctx, productID, initialStock, stats).Error(0)
}

func (m *mockCache) InvalidateProduct(ctx context.Context, productID int64) error {
	return m.Called(ctx, productID).Error(0)
}

func (m *mockCache) InvalidateAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockObjectStorage struct{ mock.Mock }

func (m *mockObjectStorage) ListObjects(ctx context.Context, prefix string) ([]storage.ObjectInfo, error) {
	args := m.Called(ctx, prefix)
	if o := args.Get(0); o != nil {
		return o.([]storage.ObjectInfo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockObjectStorage) UploadObject(ctx context.Context, key string, data []byte, contentType string) error {
	return m.Called(ctx, key, data, contentType).Error(0)
}

// referenceProfiles is the default seed: 5 units on weekdays, 10 on weekends.
func referenceProfiles(productID int64) []*domain.SalesProfile {
	days := []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}
	profiles := make([]*domain.SalesProfile, 0, len(days))
	for i, day := range days {
		qty := 5
		if i >= 5 {
			qty = 10
		}
		profiles = append(profiles, &domain.SalesProfile{
			ID:           int64(i + 1),
			ProductID:    productID,
			DayOfWeek:    day,
			QuantitySold: qty,
		})
	}
	return profiles
}

type resolverMocks struct {
	products *mockProductRepo
	params   *mockParametersRepo
	profiles *mockSalesProfileRepo
}

// newReferenceResolver returns a resolver whose repositories serve the
// default product with lead time 3 and multiple 12.
func newReferenceResolver(productID int64) (*InputResolver, *resolverMocks) {
	m := &resolverMocks{
		products: new(mockProductRepo),
		params:   new(mockParametersRepo),
		profiles: new(mockSalesProfileRepo),
	}
	m.products.On("FindByID", mock.Anything, productID).
		Return(&domain.Product{ID: productID, Name: "Default Product", InitialStock: 20}, nil)
	m.params.On("FindByProductID", mock.Anything, productID).
		Return(&domain.CalculationParameters{ID: 1, ProductID: productID, DeliveryLeadTime: 3, OrderMultiple: 12}, nil)
	m.profiles.On("FindByProductID", mock.Anything, productID).
		Return(referenceProfiles(productID), nil)

	return NewInputResolver(m.products, m.params, m.profiles), m
}

func errNotFound() error {
	return repository.ErrNotFound
}
