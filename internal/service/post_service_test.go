package service_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/internal/domain"
	"blogapi/internal/repository"
	"blogapi/internal/service"
	"blogapi/pkg/logger"
)

func newPostService() domain.PostService {
	log := logger.New(logger.ErrorLevel, io.Discard)
	return service.NewPostService(repository.NewInMemoryPostRepository(log), log)
}

func TestCreatePostAllowsUnknownOwner(t *testing.T) {
	posts := newPostService()

	created, err := posts.CreatePost(domain.Post{UserID: 404, Title: "Orphan", Body: "..."})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 404, created.UserID)
}

func TestGetPostReturnsNotFoundWhenAbsent(t *testing.T) {
	posts := newPostService()

	_, err := posts.GetPost(7)

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Post not found with the id: 7", err.Error())
}

func TestUpdatePostPreservesOwner(t *testing.T) {
	posts := newPostService()

	created, err := posts.CreatePost(domain.Post{UserID: 1, Title: "Draft", Body: "..."})
	require.NoError(t, err)

	err = posts.UpdatePost(created.ID, domain.Post{UserID: 99, Title: "Final", Body: "done"})
	require.NoError(t, err)

	updated, err := posts.GetPost(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 1, updated.UserID)
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, "done", updated.Body)
}

func TestUpdatePostReturnsNotFoundWhenAbsent(t *testing.T) {
	posts := newPostService()

	err := posts.UpdatePost(7, domain.Post{UserID: 1, Title: "Nope", Body: "..."})

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestDeletePostReturnsNotFoundWhenAbsent(t *testing.T) {
	posts := newPostService()

	err := posts.DeletePost(7)

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestDeletePostRemovesPost(t *testing.T) {
	posts := newPostService()

	created, err := posts.CreatePost(domain.Post{UserID: 1, Title: "Gone soon", Body: "..."})
	require.NoError(t, err)

	require.NoError(t, posts.DeletePost(created.ID))

	_, err = posts.GetPost(created.ID)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestGetPostsByUserFiltersByOwner(t *testing.T) {
	posts := newPostService()

	mine, err := posts.CreatePost(domain.Post{UserID: 1, Title: "Mine", Body: "..."})
	require.NoError(t, err)
	_, err = posts.CreatePost(domain.Post{UserID: 2, Title: "Not mine", Body: "..."})
	require.NoError(t, err)

	found, err := posts.GetPostsByUser(1)
	require.NoError(t, err)
	assert.Equal(t, []domain.Post{*mine}, found)
}

func TestGetPostByUserReturnsNotFoundWhenOwnerDiffers(t *testing.T) {
	posts := newPostService()

	created, err := posts.CreatePost(domain.Post{UserID: 1, Title: "Mine", Body: "..."})
	require.NoError(t, err)

	_, err = posts.GetPostByUser(2, created.ID)

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, domain.EntityPost, notFound.Entity)
}
