package service

import (
	"fmt"

	"blogapi/internal/domain"
	"blogapi/pkg/logger"
)

type UserService struct {
	repo    domain.UserRepository
	postSvc domain.PostService
	logger  logger.Logger
}

func NewUserService(repo domain.UserRepository, postSvc domain.PostService, logger logger.Logger) domain.UserService {
	return &UserService{
		repo:    repo,
		postSvc: postSvc,
		logger:  logger,
	}
}

func (s *UserService) GetUsers() ([]domain.User, error) {
	return s.repo.FindAll(), nil
}

func (s *UserService) GetUser(id int) (*domain.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		s.logger.Error("Failed to look up user", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return nil, domain.NewUserNotFound(id)
	}

	return user, nil
}

func (s *UserService) CreateUser(user domain.User) (*domain.User, error) {
	exists, err := s.repo.ExistsByUsername(user.Username)
	if err != nil {
		s.logger.Error("Failed to check username", map[string]interface{}{"username": user.Username, "error": err.Error()})
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if exists {
		return nil, domain.NewUserAlreadyExists(user.Username)
	}

	user.ID = 0
	created, err := s.repo.Save(user)
	if err != nil {
		s.logger.Error("Failed to create user", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User created", map[string]interface{}{"id": created.ID, "username": created.Username})
	return &created, nil
}

// UpdateUser replaces the user's name and email. The username is
// immutable after creation; a username supplied on update is ignored.
func (s *UserService) UpdateUser(id int, user domain.User) error {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		s.logger.Error("Failed to look up user", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("failed to update user: %w", err)
	}

	if existing == nil {
		return domain.NewUserNotFound(id)
	}

	updated := domain.User{
		ID:       existing.ID,
		Name:     user.Name,
		Username: existing.Username,
		Email:    user.Email,
	}

	if _, err := s.repo.Save(updated); err != nil {
		s.logger.Error("Failed to update user", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// DeleteUser removes the user. The user's posts are left in place;
// deletes do not cascade.
func (s *UserService) DeleteUser(id int) error {
	if err := s.validateUser(id); err != nil {
		return err
	}

	if err := s.repo.DeleteByID(id); err != nil {
		s.logger.Error("Failed to delete user", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User deleted", map[string]interface{}{"id": id})
	return nil
}

func (s *UserService) GetUserPosts(id int) ([]domain.Post, error) {
	if err := s.validateUser(id); err != nil {
		return nil, err
	}

	return s.postSvc.GetPostsByUser(id)
}

func (s *UserService) GetUserPost(userID, postID int) (*domain.Post, error) {
	if err := s.validateUser(userID); err != nil {
		return nil, err
	}

	return s.postSvc.GetPostByUser(userID, postID)
}

func (s *UserService) validateUser(id int) error {
	exists, err := s.repo.ExistsByID(id)
	if err != nil {
		s.logger.Error("Failed to check user existence", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("failed to check user existence: %w", err)
	}

	if !exists {
		return domain.NewUserNotFound(id)
	}

	return nil
}
