package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dsadmin/domain/contracts"
	"dsadmin/domain/dataset"
)

// MockDataSetRepository implements DataSetRepository for testing
type MockDataSetRepository struct {
	mock.Mock
}

func (m *MockDataSetRepository) Get(ctx context.Context, options contracts.GetDataSetsOptions) (*dataset.Paginated[dataset.DataSet], error) {
	args := m.Called(ctx, options)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dataset.Paginated[dataset.DataSet]), args.Error(1)
}

func (m *MockDataSetRepository) GetAll(ctx context.Context) ([]dataset.DataSet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dataset.DataSet), args.Error(1)
}

func (m *MockDataSetRepository) GetByIDs(ctx context.Context, ids []string) ([]dataset.DataSet, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dataset.DataSet), args.Error(1)
}

func (m *MockDataSetRepository) Save(ctx context.Context, dataSets []dataset.DataSet) error {
	args := m.Called(ctx, dataSets)
	return args.Error(0)
}

func (m *MockDataSetRepository) Remove(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// MockProjectRepository implements ProjectRepository for testing
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Get(ctx context.Context, options contracts.GetProjectsOptions) (*dataset.Paginated[dataset.Project], error) {
	args := m.Called(ctx, options)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dataset.Paginated[dataset.Project]), args.Error(1)
}

func (m *MockProjectRepository) GetAll(ctx context.Context) ([]dataset.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dataset.Project), args.Error(1)
}

// MockLogRepository implements LogRepository for testing
type MockLogRepository struct {
	mock.Mock
}

func (m *MockLogRepository) GetByDataSets(ctx context.Context, dataSetIDs []string) ([]dataset.Log, error) {
	args := m.Called(ctx, dataSetIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dataset.Log), args.Error(1)
}

// MockMetadataRepository implements MetadataRepository for testing
type MockMetadataRepository struct {
	mock.Mock
}

func (m *MockMetadataRepository) Get(ctx context.Context) (*dataset.MetadataItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dataset.MetadataItem), args.Error(1)
}

// MockSharingRepository implements SharingRepository for testing
type MockSharingRepository struct {
	mock.Mock
}

func (m *MockSharingRepository) Search(ctx context.Context, key string) (*dataset.Sharing, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dataset.Sharing), args.Error(1)
}

// MockUserRepository implements UserRepository for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetCurrent(ctx context.Context) (*dataset.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dataset.User), args.Error(1)
}
