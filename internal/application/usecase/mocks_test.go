package usecase_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/clasificador/internal/domain/entity"
	"github.com/jhoicas/clasificador/internal/domain/repository"
)

type classRepoMock struct{ mock.Mock }

func (m *classRepoMock) Create(ctx context.Context, c *entity.Classification) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *classRepoMock) List(ctx context.Context) ([]*entity.Classification, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Classification)
	return list, args.Error(1)
}

func (m *classRepoMock) FindChildren(ctx context.Context, id int64) ([]entity.ClassRef, error) {
	args := m.Called(ctx, id)
	refs, _ := args.Get(0).([]entity.ClassRef)
	return refs, args.Error(1)
}

type productRepoMock struct{ mock.Mock }

func (m *productRepoMock) Create(ctx context.Context, p *entity.Product) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *productRepoMock) ListByClass(ctx context.Context, classID int64) ([]*entity.Product, error) {
	args := m.Called(ctx, classID)
	list, _ := args.Get(0).([]*entity.Product)
	return list, args.Error(1)
}

type unitRepoMock struct{ mock.Mock }

func (m *unitRepoMock) Create(ctx context.Context, u *entity.Unit) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

type tableRepoMock struct{ mock.Mock }

func (m *tableRepoMock) ListAll(ctx context.Context, table string) (*entity.TableData, error) {
	args := m.Called(ctx, table)
	data, _ := args.Get(0).(*entity.TableData)
	return data, args.Error(1)
}

type hierarchyRepoMock struct{ mock.Mock }

func (m *hierarchyRepoMock) Lock(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *hierarchyRepoMock) SubtreeSize(ctx context.Context, classID int64) (int, error) {
	args := m.Called(ctx, classID)
	return args.Int(0), args.Error(1)
}

func (m *hierarchyRepoMock) HasCycle(ctx context.Context, childID, parentID int64) (bool, error) {
	args := m.Called(ctx, childID, parentID)
	return args.Bool(0), args.Error(1)
}

func (m *hierarchyRepoMock) SetParent(ctx context.Context, classID, parentID int64) error {
	return m.Called(ctx, classID, parentID).Error(0)
}

func (m *hierarchyRepoMock) SetProductClass(ctx context.Context, productID, classID int64) error {
	return m.Called(ctx, productID, classID).Error(0)
}

// txRunnerStub ejecuta fn con el mock de jerarquía, sin transacción real.
type txRunnerStub struct {
	repo  *hierarchyRepoMock
	calls int
}

func (s *txRunnerStub) RunHierarchy(_ context.Context, fn func(repository.HierarchyRepository) error) error {
	s.calls++
	return fn(s.repo)
}

type encoderStub struct {
	charset string
	data    *entity.TableData
	classes []*entity.Classification
}

func (e *encoderStub) EncodeTable(w io.Writer, data *entity.TableData, charset string) error {
	e.data, e.charset = data, charset
	_, err := io.WriteString(w, "csv")
	return err
}

func (e *encoderStub) EncodeTree(w io.Writer, classes []*entity.Classification) error {
	e.classes = classes
	_, err := io.WriteString(w, "<xml/>")
	return err
}

func (e *encoderStub) GenerateTableReport(_ context.Context, title string, data *entity.TableData) ([]byte, error) {
	e.data = data
	return []byte("%PDF " + title), nil
}
