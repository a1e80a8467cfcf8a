package service

import (
	"context"
	"sort"

	"github.com/Vipul1432/EmployeeManagementSystem/internal/model"
	"github.com/Vipul1432/EmployeeManagementSystem/internal/repository"
)

// ── Mock CRUDRepository ──

// mockCRUDRepo 基于 map 的内存仓储，按值保存，模拟数据库的拷贝语义
type mockCRUDRepo[T model.Entity] struct {
	items  map[int]T
	nextID int
	setID  func(*T, int)
	err    error // 非 nil 时所有操作返回该错误

	updates int
	deletes int
}

func newMockCRUDRepo[T model.Entity](setID func(*T, int)) *mockCRUDRepo[T] {
	return &mockCRUDRepo[T]{items: make(map[int]T), nextID: 1, setID: setID}
}

func (m *mockCRUDRepo[T]) GetAll(_ context.Context) ([]T, error) {
	if m.err != nil {
		return nil, m.err
	}
	ids := make([]int, 0, len(m.items))
	for id := range m.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	result := make([]T, 0, len(ids))
	for _, id := range ids {
		result = append(result, m.items[id])
	}
	return result, nil
}

func (m *mockCRUDRepo[T]) GetByID(_ context.Context, id int) (*T, error) {
	if m.err != nil {
		return nil, m.err
	}
	item, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (m *mockCRUDRepo[T]) Add(_ context.Context, entity *T) error {
	if m.err != nil {
		return m.err
	}
	m.setID(entity, m.nextID)
	m.nextID++
	m.items[(*entity).GetID()] = *entity
	return nil
}

func (m *mockCRUDRepo[T]) Update(_ context.Context, entity *T) error {
	if m.err != nil {
		return m.err
	}
	m.updates++
	m.items[(*entity).GetID()] = *entity
	return nil
}

func (m *mockCRUDRepo[T]) Delete(_ context.Context, id int) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.items[id]; ok {
		m.deletes++
		delete(m.items, id)
	}
	return nil
}

// seed 直接写入一条记录（绕过 ID 分配）
func (m *mockCRUDRepo[T]) seed(item T) {
	m.items[item.GetID()] = item
	if item.GetID() >= m.nextID {
		m.nextID = item.GetID() + 1
	}
}

func newMockDeptRepo() *mockCRUDRepo[model.Department] {
	return newMockCRUDRepo(func(d *model.Department, id int) { d.ID = id })
}

func newMockEmployeeRepo() *mockCRUDRepo[model.Employee] {
	return newMockCRUDRepo(func(e *model.Employee, id int) { e.ID = id })
}

// newMockRepository 组装使用内存仓储的 Repository 聚合
func newMockRepository() (*repository.Repository, *mockCRUDRepo[model.Department], *mockCRUDRepo[model.Employee]) {
	deptRepo := newMockDeptRepo()
	empRepo := newMockEmployeeRepo()
	return &repository.Repository{
		Department: deptRepo,
		Employee:   empRepo,
	}, deptRepo, empRepo
}
