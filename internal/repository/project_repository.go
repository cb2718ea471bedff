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

// ProjectRepository defines project persistence operations. List order is
// unspecified by contract; the memory implementation returns insertion order.
type ProjectRepository interface {
	List(ctx context.Context) ([]model.Project, error)
	FindByID(ctx context.Context, id int) (*model.Project, error)
	Create(ctx context.Context, input *model.ProjectInput, createdBy int) (*model.Project, error)
	Update(ctx context.Context, id int, patch *model.ProjectPatch) (*model.Project, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type memoryProjectRepository struct {
	mu     sync.RWMutex
	items  map[int]model.Project
	nextID int
}

// NewMemoryProjectRepository creates an in-memory project repository.
func NewMemoryProjectRepository() ProjectRepository {
	return &memoryProjectRepository{items: make(map[int]model.Project), nextID: 1}
}

func (r *memoryProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.Project, 0, len(r.items))
	for _, p := range r.items {
		items = append(items, p)
	}
	// IDs are assigned in insertion order.
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *memoryProjectRepository) FindByID(ctx context.Context, id int) (*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (r *memoryProjectRepository) Create(ctx context.Context, input *model.ProjectInput, createdBy int) (*model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := model.Project{
		ID:                   r.nextID,
		Title:                input.Title,
		Description:          input.Description,
		Status:               input.Status,
		StartDate:            input.StartDate,
		TargetDate:           input.TargetDate,
		CompletionPercentage: input.CompletionPercentage,
		ImageURL:             input.ImageURL,
		CreatedBy:            createdBy,
	}
	r.nextID++
	r.items[p.ID] = p
	return &p, nil
}

func (r *memoryProjectRepository) Update(ctx context.Context, id int, patch *model.ProjectPatch) (*model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	patch.Apply(&p)
	r.items[id] = p
	return &p, nil
}

func (r *memoryProjectRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.items[id]
	delete(r.items, id)
	return ok, nil
}

type mysqlProjectRepository struct {
	db *gorm.DB
}

// NewMySQLProjectRepository creates a MySQL-backed project repository.
func NewMySQLProjectRepository(db *gorm.DB) ProjectRepository {
	return &mysqlProjectRepository{db: db}
}

func (r *mysqlProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	var items []model.Project
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mysqlProjectRepository) FindByID(ctx context.Context, id int) (*model.Project, error) {
	var p model.Project
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *mysqlProjectRepository) Create(ctx context.Context, input *model.ProjectInput, createdBy int) (*model.Project, error) {
	p := model.Project{
		Title:                input.Title,
		Description:          input.Description,
		Status:               input.Status,
		StartDate:            input.StartDate,
		TargetDate:           input.TargetDate,
		CompletionPercentage: input.CompletionPercentage,
		ImageURL:             input.ImageURL,
		CreatedBy:            createdBy,
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mysqlProjectRepository) Update(ctx context.Context, id int, patch *model.ProjectPatch) (*model.Project, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(p)
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *mysqlProjectRepository) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Project{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
