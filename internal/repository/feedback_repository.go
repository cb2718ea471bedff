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

// FeedbackRepository defines feedback persistence operations. List returns
// submissions newest first. Resolve sets IsResolved unconditionally and is
// the only mutation path for that flag.
type FeedbackRepository interface {
	List(ctx context.Context) ([]model.Feedback, error)
	FindByID(ctx context.Context, id int) (*model.Feedback, error)
	Create(ctx context.Context, input *model.FeedbackInput) (*model.Feedback, error)
	Update(ctx context.Context, id int, patch *model.FeedbackPatch) (*model.Feedback, error)
	Delete(ctx context.Context, id int) (bool, error)
	Resolve(ctx context.Context, id int) (*model.Feedback, error)
}

type memoryFeedbackRepository struct {
	mu     sync.RWMutex
	items  map[int]model.Feedback
	nextID int
}

// NewMemoryFeedbackRepository creates an in-memory feedback repository.
func NewMemoryFeedbackRepository() FeedbackRepository {
	return &memoryFeedbackRepository{items: make(map[int]model.Feedback), nextID: 1}
}

func (r *memoryFeedbackRepository) List(ctx context.Context) ([]model.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.Feedback, 0, len(r.items))
	for _, f := range r.items {
		items = append(items, f)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (r *memoryFeedbackRepository) FindByID(ctx context.Context, id int) (*model.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &f, nil
}

func (r *memoryFeedbackRepository) Create(ctx context.Context, input *model.FeedbackInput) (*model.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f := model.Feedback{
		ID:          r.nextID,
		FullName:    input.FullName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Topic:       input.Topic,
		Message:     input.Message,
		CreatedAt:   time.Now(),
		IsResolved:  false,
	}
	r.nextID++
	r.items[f.ID] = f
	return &f, nil
}

func (r *memoryFeedbackRepository) Update(ctx context.Context, id int, patch *model.FeedbackPatch) (*model.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	patch.Apply(&f)
	r.items[id] = f
	return &f, nil
}

func (r *memoryFeedbackRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.items[id]
	delete(r.items, id)
	return ok, nil
}

func (r *memoryFeedbackRepository) Resolve(ctx context.Context, id int) (*model.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	f.IsResolved = true
	r.items[id] = f
	return &f, nil
}

type mysqlFeedbackRepository struct {
	db *gorm.DB
}

// NewMySQLFeedbackRepository creates a MySQL-backed feedback repository.
func NewMySQLFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &mysqlFeedbackRepository{db: db}
}

func (r *mysqlFeedbackRepository) List(ctx context.Context) ([]model.Feedback, error) {
	var items []model.Feedback
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mysqlFeedbackRepository) FindByID(ctx context.Context, id int) (*model.Feedback, error) {
	var f model.Feedback
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *mysqlFeedbackRepository) Create(ctx context.Context, input *model.FeedbackInput) (*model.Feedback, error) {
	f := model.Feedback{
		FullName:    input.FullName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Topic:       input.Topic,
		Message:     input.Message,
		CreatedAt:   time.Now(),
		IsResolved:  false,
	}
	if err := r.db.WithContext(ctx).Create(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *mysqlFeedbackRepository) Update(ctx context.Context, id int, patch *model.FeedbackPatch) (*model.Feedback, error) {
	f, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(f)
	if err := r.db.WithContext(ctx).Save(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

func (r *mysqlFeedbackRepository) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Feedback{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *mysqlFeedbackRepository) Resolve(ctx context.Context, id int) (*model.Feedback, error) {
	f, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	f.IsResolved = true
	if err := r.db.WithContext(ctx).Model(f).Update("is_resolved", true).Error; err != nil {
		return nil, err
	}
	return f, nil
}
