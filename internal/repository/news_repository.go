package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	apperrors "civicportal/internal/errors"
	"civicportal/internal/model"
)

// NewsRepository defines news persistence operations. List returns articles
// newest first.
type NewsRepository interface {
	List(ctx context.Context) ([]model.News, error)
	FindByID(ctx context.Context, id int) (*model.News, error)
	Create(ctx context.Context, input *model.NewsInput, createdBy int) (*model.News, error)
	Update(ctx context.Context, id int, patch *model.NewsPatch) (*model.News, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type memoryNewsRepository struct {
	mu     sync.RWMutex
	items  map[int]model.News
	nextID int
}

// NewMemoryNewsRepository creates an in-memory news repository.
func NewMemoryNewsRepository() NewsRepository {
	return &memoryNewsRepository{items: make(map[int]model.News), nextID: 1}
}

func (r *memoryNewsRepository) List(ctx context.Context) ([]model.News, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.News, 0, len(r.items))
	for _, n := range r.items {
		items = append(items, n)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (r *memoryNewsRepository) FindByID(ctx context.Context, id int) (*model.News, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &n, nil
}

func (r *memoryNewsRepository) Create(ctx context.Context, input *model.NewsInput, createdBy int) (*model.News, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := model.News{
		ID:        r.nextID,
		Title:     input.Title,
		Content:   input.Content,
		Summary:   input.Summary,
		ImageURL:  input.ImageURL,
		Category:  input.Category,
		CreatedAt: time.Now(),
		CreatedBy: createdBy,
	}
	r.nextID++
	r.items[n.ID] = n
	return &n, nil
}

func (r *memoryNewsRepository) Update(ctx context.Context, id int, patch *model.NewsPatch) (*model.News, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	patch.Apply(&n)
	r.items[id] = n
	return &n, nil
}

func (r *memoryNewsRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.items[id]
	delete(r.items, id)
	return ok, nil
}

type mysqlNewsRepository struct {
	db *gorm.DB
}

// NewMySQLNewsRepository creates a MySQL-backed news repository.
func NewMySQLNewsRepository(db *gorm.DB) NewsRepository {
	return &mysqlNewsRepository{db: db}
}

func (r *mysqlNewsRepository) List(ctx context.Context) ([]model.News, error) {
	var items []model.News
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mysqlNewsRepository) FindByID(ctx context.Context, id int) (*model.News, error) {
	var n model.News
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *mysqlNewsRepository) Create(ctx context.Context, input *model.NewsInput, createdBy int) (*model.News, error) {
	n := model.News{
		Title:     input.Title,
		Content:   input.Content,
		Summary:   input.Summary,
		ImageURL:  input.ImageURL,
		Category:  input.Category,
		CreatedAt: time.Now(),
		CreatedBy: createdBy,
	}
	if err := r.db.WithContext(ctx).Create(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *mysqlNewsRepository) Update(ctx context.Context, id int, patch *model.NewsPatch) (*model.News, error) {
	n, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(n)
	if err := r.db.WithContext(ctx).Save(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}

func (r *mysqlNewsRepository) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.News{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
