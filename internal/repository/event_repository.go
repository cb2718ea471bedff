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

// EventRepository defines event persistence operations. List returns events
// soonest first by event date.
type EventRepository interface {
	List(ctx context.Context) ([]model.Event, error)
	FindByID(ctx context.Context, id int) (*model.Event, error)
	Create(ctx context.Context, input *model.EventInput, createdBy int) (*model.Event, error)
	Update(ctx context.Context, id int, patch *model.EventPatch) (*model.Event, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type memoryEventRepository struct {
	mu     sync.RWMutex
	items  map[int]model.Event
	nextID int
}

// NewMemoryEventRepository creates an in-memory event repository.
func NewMemoryEventRepository() EventRepository {
	return &memoryEventRepository{items: make(map[int]model.Event), nextID: 1}
}

func (r *memoryEventRepository) List(ctx context.Context) ([]model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.Event, 0, len(r.items))
	for _, e := range r.items {
		items = append(items, e)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].EventDate.Before(items[j].EventDate)
	})
	return items, nil
}

func (r *memoryEventRepository) FindByID(ctx context.Context, id int) (*model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

func (r *memoryEventRepository) Create(ctx context.Context, input *model.EventInput, createdBy int) (*model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := model.Event{
		ID:          r.nextID,
		Title:       input.Title,
		Description: input.Description,
		EventDate:   input.EventDate,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Location:    input.Location,
		Category:    input.Category,
		CreatedBy:   createdBy,
	}
	r.nextID++
	r.items[e.ID] = e
	return &e, nil
}

func (r *memoryEventRepository) Update(ctx context.Context, id int, patch *model.EventPatch) (*model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	patch.Apply(&e)
	r.items[id] = e
	return &e, nil
}

func (r *memoryEventRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.items[id]
	delete(r.items, id)
	return ok, nil
}

type mysqlEventRepository struct {
	db *gorm.DB
}

// NewMySQLEventRepository creates a MySQL-backed event repository.
func NewMySQLEventRepository(db *gorm.DB) EventRepository {
	return &mysqlEventRepository{db: db}
}

func (r *mysqlEventRepository) List(ctx context.Context) ([]model.Event, error) {
	var items []model.Event
	if err := r.db.WithContext(ctx).Order("event_date").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mysqlEventRepository) FindByID(ctx context.Context, id int) (*model.Event, error) {
	var e model.Event
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *mysqlEventRepository) Create(ctx context.Context, input *model.EventInput, createdBy int) (*model.Event, error) {
	e := model.Event{
		Title:       input.Title,
		Description: input.Description,
		EventDate:   input.EventDate,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Location:    input.Location,
		Category:    input.Category,
		CreatedBy:   createdBy,
	}
	if err := r.db.WithContext(ctx).Create(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *mysqlEventRepository) Update(ctx context.Context, id int, patch *model.EventPatch) (*model.Event, error) {
	e, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(e)
	if err := r.db.WithContext(ctx).Save(e).Error; err != nil {
		return nil, err
	}
	return e, nil
}

func (r *mysqlEventRepository) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Event{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
