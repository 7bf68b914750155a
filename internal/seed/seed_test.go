package seed_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/internal/domain"
	"blogapi/internal/repository"
	"blogapi/internal/seed"
	"blogapi/internal/service"
	"blogapi/pkg/logger"
)

func writeSeedFiles(t *testing.T, users, posts string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte(users), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "posts.json"), []byte(posts), 0o644))
	return dir
}

func newServices() (domain.UserService, domain.PostService) {
	log := logger.New(logger.ErrorLevel, io.Discard)

	posts := service.NewPostService(repository.NewInMemoryPostRepository(log), log)
	users := service.NewUserService(repository.NewInMemoryUserRepository(log), posts, log)
	return users, posts
}

func TestSeederLoadsUsersAndPosts(t *testing.T) {
	dir := writeSeedFiles(t,
		`[
			{"name": "John Doe", "username": "johnD", "email": "john.doe@mail.com"},
			{"name": "Jane Doe", "username": "janeD", "email": "jane.doe@mail.com"}
		]`,
		`[
			{"userId": 1, "title": "Hello", "body": "First post"},
			{"userId": 1, "title": "Again", "body": "Second post"},
			{"userId": 2, "title": "Hi", "body": "Jane's post"}
		]`,
	)

	users, posts := newServices()
	seeder := seed.NewSeeder(users, posts, logger.New(logger.ErrorLevel, io.Discard))

	require.NoError(t, seeder.Run(dir))

	allUsers, err := users.GetUsers()
	require.NoError(t, err)
	assert.Len(t, allUsers, 2)

	johnPosts, err := users.GetUserPosts(1)
	require.NoError(t, err)
	assert.Len(t, johnPosts, 2)
}

func TestSeederIgnoresIDsInFiles(t *testing.T) {
	dir := writeSeedFiles(t,
		`[{"id": 77, "name": "John Doe", "username": "johnD", "email": "john.doe@mail.com"}]`,
		`[]`,
	)

	users, posts := newServices()
	seeder := seed.NewSeeder(users, posts, logger.New(logger.ErrorLevel, io.Discard))

	require.NoError(t, seeder.Run(dir))

	user, err := users.GetUser(1)
	require.NoError(t, err)
	assert.Equal(t, "johnD", user.Username)
}

func TestSeederSkipsDuplicateUsernames(t *testing.T) {
	dir := writeSeedFiles(t,
		`[
			{"name": "John Doe", "username": "johnD", "email": "john.doe@mail.com"},
			{"name": "Impostor", "username": "johnD", "email": "other@mail.com"}
		]`,
		`[]`,
	)

	users, posts := newServices()
	seeder := seed.NewSeeder(users, posts, logger.New(logger.ErrorLevel, io.Discard))

	require.NoError(t, seeder.Run(dir))

	allUsers, err := users.GetUsers()
	require.NoError(t, err)
	require.Len(t, allUsers, 1)
	assert.Equal(t, "John Doe", allUsers[0].Name)
}

func TestSeederFailsOnMissingFiles(t *testing.T) {
	users, posts := newServices()
	seeder := seed.NewSeeder(users, posts, logger.New(logger.ErrorLevel, io.Discard))

	require.Error(t, seeder.Run(t.TempDir()))
}
