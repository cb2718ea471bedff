package repository

import (
	"context"
	"errors"
	"sort"
	"sync"

	"gorm.io/gorm"

	apperrors "civicportal/internal/errors"
	"civicportal/internal/model"
)

// LeaderRepository defines leader persistence operations. List order is
// unspecified by contract; the memory implementation returns insertion order.
type LeaderRepository interface {
	List(ctx context.Context) ([]model.Leader, error)
	FindByID(ctx context.Context, id int) (*model.Leader, error)
	Create(ctx context.Context, input *model.LeaderInput) (*model.Leader, error)
	Update(ctx context.Context, id int, patch *model.LeaderPatch) (*model.Leader, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type memoryLeaderRepository struct {
	mu     sync.RWMutex
	items  map[int]model.Leader
	nextID int
}

// NewMemoryLeaderRepository creates an in-memory leader repository.
func NewMemoryLeaderRepository() LeaderRepository {
	return &memoryLeaderRepository{items: make(map[int]model.Leader), nextID: 1}
}

func (r *memoryLeaderRepository) List(ctx context.Context) ([]model.Leader, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.Leader, 0, len(r.items))
	for _, l := range r.items {
		items = append(items, l)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *memoryLeaderRepository) FindByID(ctx context.Context, id int) (*model.Leader, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &l, nil
}

func (r *memoryLeaderRepository) Create(ctx context.Context, input *model.LeaderInput) (*model.Leader, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l := model.Leader{
		ID:             r.nextID,
		FullName:       input.FullName,
		Position:       input.Position,
		Email:          input.Email,
		PhoneNumber:    input.PhoneNumber,
		Location:       input.Location,
		ImageURL:       input.ImageURL,
		Biography:      input.Biography,
		FacebookURL:    input.FacebookURL,
		TwitterURL:     input.TwitterURL,
		WhatsappNumber: input.WhatsappNumber,
	}
	r.nextID++
	r.items[l.ID] = l
	return &l, nil
}

func (r *memoryLeaderRepository) Update(ctx context.Context, id int, patch *model.LeaderPatch) (*model.Leader, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	patch.Apply(&l)
	r.items[id] = l
	return &l, nil
}

func (r *memoryLeaderRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.items[id]
	delete(r.items, id)
	return ok, nil
}

type mysqlLeaderRepository struct {
	db *gorm.DB
}

// NewMySQLLeaderRepository creates a MySQL-backed leader repository.
func NewMySQLLeaderRepository(db *gorm.DB) LeaderRepository {
	return &mysqlLeaderRepository{db: db}
}

func (r *mysqlLeaderRepository) List(ctx context.Context) ([]model.Leader, error) {
	var items []model.Leader
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mysqlLeaderRepository) FindByID(ctx context.Context, id int) (*model.Leader, error) {
	var l model.Leader
	if err := r.db.WithContext(ctx).First(&l, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *mysqlLeaderRepository) Create(ctx context.Context, input *model.LeaderInput) (*model.Leader, error) {
	l := model.Leader{
		FullName:       input.FullName,
		Position:       input.Position,
		Email:          input.Email,
		PhoneNumber:    input.PhoneNumber,
		Location:       input.Location,
		ImageURL:       input.ImageURL,
		Biography:      input.Biography,
		FacebookURL:    input.FacebookURL,
		TwitterURL:     input.TwitterURL,
		WhatsappNumber: input.WhatsappNumber,
	}
	if err := r.db.WithContext(ctx).Create(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *mysqlLeaderRepository) Update(ctx context.Context, id int, patch *model.LeaderPatch) (*model.Leader, error) {
	l, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(l)
	if err := r.db.WithContext(ctx).Save(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

func (r *mysqlLeaderRepository) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Leader{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
