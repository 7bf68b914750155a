package service

import (
	"fmt"

	"blogapi/internal/domain"
	"blogapi/pkg/logger"
)

type PostService struct {
	repo   domain.PostRepository
	logger logger.Logger
}

func NewPostService(repo domain.PostRepository, logger logger.Logger) domain.PostService {
	return &PostService{
		repo:   repo,
		logger: logger,
	}
}

func (s *PostService) GetPosts() ([]domain.Post, error) {
	return s.repo.FindAll(), nil
}

func (s *PostService) GetPost(id int) (*domain.Post, error) {
	post, err := s.repo.FindByID(id)
	if err != nil {
		s.logger.Error("Failed to look up post", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	if post == nil {
		return nil, domain.NewPostNotFound(id)
	}

	return post, nil
}

// CreatePost saves the post without verifying that its owner exists.
// Orphan posts are permitted; field-level validation happens upstream.
func (s *PostService) CreatePost(post domain.Post) (*domain.Post, error) {
	post.ID = 0
	created, err := s.repo.Save(post)
	if err != nil {
		s.logger.Error("Failed to create post", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("Post created", map[string]interface{}{"id": created.ID, "userId": created.UserID})
	return &created, nil
}

// UpdatePost replaces the post's title and body. The owner is immutable;
// a userId supplied on update is ignored.
func (s *PostService) UpdatePost(id int, post domain.Post) error {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		s.logger.Error("Failed to look up post", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("failed to update post: %w", err)
	}

	if existing == nil {
		return domain.NewPostNotFound(id)
	}

	updated := domain.Post{
		ID:     existing.ID,
		UserID: existing.UserID,
		Title:  post.Title,
		Body:   post.Body,
	}

	if _, err := s.repo.Save(updated); err != nil {
		s.logger.Error("Failed to update post", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("failed to update post: %w", err)
	}

	return nil
}

func (s *PostService) DeletePost(id int) error {
	exists, err := s.repo.ExistsByID(id)
	if err != nil {
		s.logger.Error("Failed to check post existence", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("failed to check post existence: %w", err)
	}

	if !exists {
		return domain.NewPostNotFound(id)
	}

	if err := s.repo.DeleteByID(id); err != nil {
		s.logger.Error("Failed to delete post", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.logger.Info("Post deleted", map[string]interface{}{"id": id})
	return nil
}

// GetPostsByUser returns the posts owned by the given user without
// checking that the user exists; that check belongs to the user service.
func (s *PostService) GetPostsByUser(userID int) ([]domain.Post, error) {
	posts, err := s.repo.FindByUserID(userID)
	if err != nil {
		s.logger.Error("Failed to list posts by user", map[string]interface{}{"userId": userID, "error": err.Error()})
		return nil, fmt.Errorf("failed to list posts by user: %w", err)
	}

	return posts, nil
}

func (s *PostService) GetPostByUser(userID, postID int) (*domain.Post, error) {
	post, err := s.repo.FindByIDAndUserID(postID, userID)
	if err != nil {
		s.logger.Error("Failed to look up post by user", map[string]interface{}{"userId": userID, "postId": postID, "error": err.Error()})
		return nil, fmt.Errorf("failed to get post by user: %w", err)
	}

	if post == nil {
		return nil, domain.NewPostNotFound(postID)
	}

	return post, nil
}
