// Package seed loads development fixture data through the services so
// that seeded entities get store-assigned identities and pass the same
// uniqueness checks as API-created ones.
package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"blogapi/internal/domain"
	"blogapi/pkg/logger"
)

type Seeder struct {
	userService domain.UserService
	postService domain.PostService
	logger      logger.Logger
}

func NewSeeder(userService domain.UserService, postService domain.PostService, logger logger.Logger) *Seeder {
	return &Seeder{
		userService: userService,
		postService: postService,
		logger:      logger,
	}
}

// Run loads users.json and posts.json from dir. Ids in the files are
// ignored; the store assigns fresh ones. A seed user whose username is
// already taken is logged and skipped.
func (s *Seeder) Run(dir string) error {
	users, err := readUsers(filepath.Join(dir, "users.json"))
	if err != nil {
		return err
	}

	created := 0
	for _, user := range users {
		_, err := s.userService.CreateUser(domain.User{
			Name:     user.Name,
			Username: user.Username,
			Email:    user.Email,
		})
		if err != nil {
			var conflict *domain.ConflictError
			if errors.As(err, &conflict) {
				s.logger.Warn("Skipping seed user with taken username", map[string]interface{}{"username": user.Username})
				continue
			}
			return fmt.Errorf("failed to seed user %q: %w", user.Username, err)
		}
		created++
	}

	posts, err := readPosts(filepath.Join(dir, "posts.json"))
	if err != nil {
		return err
	}

	for _, post := range posts {
		_, err := s.postService.CreatePost(domain.Post{
			UserID: post.UserID,
			Title:  post.Title,
			Body:   post.Body,
		})
		if err != nil {
			return fmt.Errorf("failed to seed post %q: %w", post.Title, err)
		}
	}

	s.logger.Info("Seed data loaded", map[string]interface{}{"users": created, "posts": len(posts)})
	return nil
}

func readUsers(path string) ([]domain.User, error) {
	var users []domain.User
	if err := readJSON(path, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func readPosts(path string) ([]domain.Post, error) {
	var posts []domain.Post
	if err := readJSON(path, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func readJSON(path string, dest interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode seed file %s: %w", path, err)
	}
	return nil
}
