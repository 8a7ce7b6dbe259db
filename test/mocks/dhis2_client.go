package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dsadmin/infrastructure/dhis2"
)

// MockDHIS2Client implements dhis2.Client for testing
type MockDHIS2Client struct {
	mock.Mock
}

func (m *MockDHIS2Client) GetDataSets(ctx context.Context, query dhis2.Query) (*dhis2.DataSetsResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dhis2.DataSetsResponse), args.Error(1)
}

func (m *MockDHIS2Client) GetCategoryOptions(ctx context.Context, query dhis2.Query) (*dhis2.CategoryOptionsResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dhis2.CategoryOptionsResponse), args.Error(1)
}

func (m *MockDHIS2Client) GetAttributes(ctx context.Context, query dhis2.Query) (*dhis2.AttributesResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dhis2.AttributesResponse), args.Error(1)
}

func (m *MockDHIS2Client) GetCategories(ctx context.Context, query dhis2.Query) (*dhis2.CategoriesResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dhis2.CategoriesResponse), args.Error(1)
}

func (m *MockDHIS2Client) GetDataElementGroupSets(ctx context.Context, query dhis2.Query) (*dhis2.DataElementGroupSetsResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dhis2.DataElementGroupSetsResponse), args.Error(1)
}

func (m *MockDHIS2Client) GetDataSetsOwner(ctx context.Context, query dhis2.Query) (*dhis2.DataSetsOwnerResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dhis2.DataSetsOwnerResponse), args.Error(1)
}

func (m *MockDHIS2Client) PostMetadata(ctx context.Context, payload any, strategy dhis2.ImportStrategy) (*dhis2.MetadataResponse, error) {
	args := m.Called(ctx, payload, strategy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dhis2.MetadataResponse), args.Error(1)
}

func (m *MockDHIS2Client) GetDataStoreValue(ctx context.Context, namespace, key string, out any) error {
	args := m.Called(ctx, namespace, key, out)
	return args.Error(0)
}

func (m *MockDHIS2Client) SearchSharing(ctx context.Context, key string) (*dhis2.SharingSearchResponse, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dhis2.SharingSearchResponse), args.Error(1)
}

func (m *MockDHIS2Client) GetMe(ctx context.Context) (*dhis2.D2User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dhis2.D2User), args.Error(1)
}
