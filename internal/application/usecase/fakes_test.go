package usecase_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jhoicas/ventaspro-admin-api/internal/domain"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain/entity"
)

var errDB = errors.New("conexión rechazada")

// fakeCategoryRepo repositorio de categorías en memoria con nombre único.
type fakeCategoryRepo struct {
	mu      sync.Mutex
	nextID  int64
	byID    map[int64]*entity.Category
	inUse   map[int64]bool // categorías con productos (Delete devuelve ErrForeignKey)
	failAll error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byID: map[int64]*entity.Category{}, inUse: map[int64]bool{}}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return r.failAll
	}
	for _, existing := range r.byID {
		if existing.Name == c.Name {
			return domain.ErrDuplicateKey
		}
	}
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return nil, r.failAll
	}
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return nil, r.failAll
	}
	for _, c := range r.byID {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return nil, r.failAll
	}
	out := make([]*entity.Category, 0, len(r.byID))
	for _, c := range r.byID {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return false, r.failAll
	}
	existing, ok := r.byID[c.ID]
	if !ok {
		return false, nil
	}
	existing.Name = c.Name
	return true, nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return false, r.failAll
	}
	if r.inUse[id] {
		return false, domain.ErrForeignKey
	}
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

// fakeProductRepo repositorio de productos en memoria; categorías 1..9 y almacenes 1..9 existen.
type fakeProductRepo struct {
	mu      sync.Mutex
	nextID  int64
	byID    map[int64]*entity.Product
	failAll error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[int64]*entity.Product{}}
}

func refExists(id int64) bool { return id >= 1 && id <= 9 }

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return r.failAll
	}
	if !refExists(p.CategoryID) || !refExists(p.WarehouseID) {
		return domain.ErrForeignKey
	}
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) LoadRow(context.Context, *entity.ImportRow) (bool, error) {
	return false, errors.New("no usado")
}

func (r *fakeProductRepo) Update(_ context.Context, id int64, patch entity.ProductPatch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return false, r.failAll
	}
	p, ok := r.byID[id]
	if !ok {
		return false, nil
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.StockQuantity != nil {
		p.StockQuantity = *patch.StockQuantity
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	if patch.WarehouseID != nil {
		p.WarehouseID = *patch.WarehouseID
	}
	if patch.Image != nil {
		p.Image = patch.Image
	}
	return true, nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return nil, r.failAll
	}
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) ExistsByNameCategoryWarehouse(_ context.Context, name string, cat, wh int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return false, r.failAll
	}
	for _, p := range r.byID {
		if p.Name == name && p.CategoryID == cat && p.WarehouseID == wh {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) ListSummaries(_ context.Context) ([]*entity.ProductSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return nil, r.failAll
	}
	out := make([]*entity.ProductSummary, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, &entity.ProductSummary{ID: p.ID, Name: p.Name, CategoryName: "Abarrotes", Price: p.Price, Status: p.Status})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
