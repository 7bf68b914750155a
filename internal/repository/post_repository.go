package repository

import (
	"time"

	"blogapi/internal/domain"
	"blogapi/internal/store"
	"blogapi/pkg/logger"
	"blogapi/pkg/metrics"
)

type InMemoryPostRepository struct {
	store  *store.Store[domain.Post]
	logger logger.Logger
}

func NewInMemoryPostRepository(logger logger.Logger) domain.PostRepository {
	return &InMemoryPostRepository{
		store:  store.New[domain.Post](),
		logger: logger,
	}
}

func (r *InMemoryPostRepository) FindAll() []domain.Post {
	defer r.observe("find_all", time.Now())
	return r.store.FindAll()
}

func (r *InMemoryPostRepository) FindByID(id int) (*domain.Post, error) {
	defer r.observe("find_by_id", time.Now())
	return r.store.FindByID(id)
}

func (r *InMemoryPostRepository) Save(post domain.Post) (domain.Post, error) {
	defer r.observe("save", time.Now())

	saved, err := r.store.Save(post)
	if err != nil {
		r.logger.Error("Failed to save post", map[string]interface{}{"id": post.ID, "error": err.Error()})
		return domain.Post{}, err
	}

	metrics.SetPostCount(r.store.Len())
	return saved, nil
}

func (r *InMemoryPostRepository) DeleteByID(id int) error {
	defer r.observe("delete_by_id", time.Now())

	if err := r.store.DeleteByID(id); err != nil {
		return err
	}

	metrics.SetPostCount(r.store.Len())
	return nil
}

func (r *InMemoryPostRepository) ExistsByID(id int) (bool, error) {
	defer r.observe("exists_by_id", time.Now())
	return r.store.ExistsByID(id)
}

// FindByUserID returns all posts owned by the given user, in
// unspecified order.
func (r *InMemoryPostRepository) FindByUserID(userID int) ([]domain.Post, error) {
	defer r.observe("find_by_user_id", time.Now())

	if userID < 1 {
		return nil, store.ErrInvalidID
	}

	posts := make([]domain.Post, 0)
	for _, post := range r.store.FindAll() {
		if post.UserID == userID {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

// FindByIDAndUserID returns the post matching both the post id and the
// owner, or nil if no post satisfies both.
func (r *InMemoryPostRepository) FindByIDAndUserID(id, userID int) (*domain.Post, error) {
	defer r.observe("find_by_id_and_user_id", time.Now())

	if id < 1 || userID < 1 {
		return nil, store.ErrInvalidID
	}

	post, err := r.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil || post.UserID != userID {
		return nil, nil
	}
	return post, nil
}

func (r *InMemoryPostRepository) observe(operation string, start time.Time) {
	metrics.RecordStoreOperation(operation, "post", time.Since(start))
}
