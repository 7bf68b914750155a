package repository

import (
	"errors"
	"time"

	"blogapi/internal/domain"
	"blogapi/internal/store"
	"blogapi/pkg/logger"
	"blogapi/pkg/metrics"
)

var ErrEmptyUsername = errors.New("repository: username cannot be empty")

type InMemoryUserRepository struct {
	store  *store.Store[domain.User]
	logger logger.Logger
}

func NewInMemoryUserRepository(logger logger.Logger) domain.UserRepository {
	return &InMemoryUserRepository{
		store:  store.New[domain.User](),
		logger: logger,
	}
}

func (r *InMemoryUserRepository) FindAll() []domain.User {
	defer r.observe("find_all", time.Now())
	return r.store.FindAll()
}

func (r *InMemoryUserRepository) FindByID(id int) (*domain.User, error) {
	defer r.observe("find_by_id", time.Now())
	return r.store.FindByID(id)
}

func (r *InMemoryUserRepository) Save(user domain.User) (domain.User, error) {
	defer r.observe("save", time.Now())

	saved, err := r.store.Save(user)
	if err != nil {
		r.logger.Error("Failed to save user", map[string]interface{}{"id": user.ID, "error": err.Error()})
		return domain.User{}, err
	}

	metrics.SetUserCount(r.store.Len())
	return saved, nil
}

func (r *InMemoryUserRepository) DeleteByID(id int) error {
	defer r.observe("delete_by_id", time.Now())

	if err := r.store.DeleteByID(id); err != nil {
		return err
	}

	metrics.SetUserCount(r.store.Len())
	return nil
}

func (r *InMemoryUserRepository) ExistsByID(id int) (bool, error) {
	defer r.observe("exists_by_id", time.Now())
	return r.store.ExistsByID(id)
}

// ExistsByUsername reports whether any stored user currently holds the
// given username. Usernames are not indexed; a linear scan is fine at
// this dataset size.
func (r *InMemoryUserRepository) ExistsByUsername(username string) (bool, error) {
	defer r.observe("exists_by_username", time.Now())

	if username == "" {
		return false, ErrEmptyUsername
	}

	for _, user := range r.store.FindAll() {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryUserRepository) observe(operation string, start time.Time) {
	metrics.RecordStoreOperation(operation, "user", time.Since(start))
}
