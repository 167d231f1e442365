package commands_test

import (
	"context"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/parcel"
	"tracking/internal/core/domain/model/party"
	"tracking/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(ctx context.Context, pkg *parcel.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPackageRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Package, error) {
	args := m.Called(ctx, id)
	pkg, _ := args.Get(0).(*parcel.Package)
	return pkg, args.Error(1)
}

func (m *MockPackageRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Package, error) {
	args := m.Called(ctx, id)
	pkg, _ := args.Get(0).(*parcel.Package)
	return pkg, args.Error(1)
}

func (m *MockPackageRepository) List(ctx context.Context) ([]*parcel.Package, error) {
	args := m.Called(ctx)
	pkgs, _ := args.Get(0).([]*parcel.Package)
	return pkgs, args.Error(1)
}

func (m *MockPackageRepository) Filter(
	ctx context.Context,
	trackingNumber *string,
	status *parcel.Status,
) ([]*parcel.Package, error) {
	args := m.Called(ctx, trackingNumber, status)
	pkgs, _ := args.Get(0).([]*parcel.Package)
	return pkgs, args.Error(1)
}

func (m *MockPackageRepository) ApplyStatusAndHistory(
	ctx context.Context,
	pkg *parcel.Package,
	record *parcel.StatusHistory,
) error {
	args := m.Called(ctx, pkg, record)
	return args.Error(0)
}

type MockEntityRepository[T any] struct{ mock.Mock }

func (m *MockEntityRepository[T]) Add(ctx context.Context, entity T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockEntityRepository[T]) Get(ctx context.Context, id kernel.UUID) (T, error) {
	args := m.Called(ctx, id)
	entity, _ := args.Get(0).(T)
	return entity, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}

func (m *MockUoW) SenderRepository() ports.EntityRepository[*party.Sender] {
	args := m.Called()
	return args.Get(0).(ports.EntityRepository[*party.Sender])
}

func (m *MockUoW) RecipientRepository() ports.EntityRepository[*party.Recipient] {
	args := m.Called()
	return args.Get(0).(ports.EntityRepository[*party.Recipient])
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockPackageUoWFactory struct{ mock.Mock }

func (m *MockPackageUoWFactory) Create() commands.PackageUoW {
	args := m.Called()
	return args.Get(0).(commands.PackageUoW)
}

type MockEntityUoW[T any] struct{ mock.Mock }

func (m *MockEntityUoW[T]) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEntityUoW[T]) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEntityUoW[T]) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEntityUoW[T]) EntityRepository() ports.EntityRepository[T] {
	args := m.Called()
	return args.Get(0).(ports.EntityRepository[T])
}

type MockEntityUoWFactory[T any] struct{ mock.Mock }

func (m *MockEntityUoWFactory[T]) Create() commands.EntityUoW[T] {
	args := m.Called()
	return args.Get(0).(commands.EntityUoW[T])
}

type MockTransitionPolicy struct{ mock.Mock }

func (m *MockTransitionPolicy) Allowed(current, requested parcel.Status) bool {
	args := m.Called(current, requested)
	return args.Bool(0)
}
