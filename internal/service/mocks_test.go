package service

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRepository mocks store.Repository for any record type.
type MockRepository[R any] struct {
	mock.Mock
}

func (m *MockRepository[R]) FindAll(ctx context.Context) ([]R, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]R), args.Error(1)
}

func (m *MockRepository[R]) FindByID(ctx context.Context, id int64) (*R, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*R), args.Error(1)
}

func (m *MockRepository[R]) Insert(ctx context.Context, record *R) (int64, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository[R]) UpdateByID(ctx context.Context, id int64, record *R) (int64, error) {
	args := m.Called(ctx, id, record)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository[R]) DeleteByID(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
