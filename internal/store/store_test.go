package store_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/internal/store"
)

type note struct {
	ID   int
	Text string
}

func (n note) EntityID() int {
	return n.ID
}

func (n note) WithEntityID(id int) note {
	n.ID = id
	return n
}

func TestSaveAssignsSequentialIDs(t *testing.T) {
	s := store.New[note]()

	first, err := s.Save(note{Text: "first"})
	require.NoError(t, err)
	second, err := s.Save(note{Text: "second"})
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestSaveReplacesExistingEntity(t *testing.T) {
	s := store.New[note]()

	created, err := s.Save(note{Text: "draft"})
	require.NoError(t, err)

	updated, err := s.Save(note{ID: created.ID, Text: "final"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	found, err := s.FindByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "final", found.Text)
}

func TestSaveWithUnknownIDFails(t *testing.T) {
	s := store.New[note]()

	_, err := s.Save(note{ID: 42, Text: "stale"})
	require.ErrorIs(t, err, store.ErrUnknownID)
	assert.Equal(t, 0, s.Len())
}

func TestFindByIDReturnsNilWhenAbsent(t *testing.T) {
	s := store.New[note]()

	found, err := s.FindByID(1)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestFindByIDRejectsInvalidID(t *testing.T) {
	s := store.New[note]()

	_, err := s.FindByID(0)
	require.ErrorIs(t, err, store.ErrInvalidID)

	_, err = s.FindByID(-3)
	require.ErrorIs(t, err, store.ErrInvalidID)
}

func TestFindAllReturnsSnapshot(t *testing.T) {
	s := store.New[note]()

	assert.Empty(t, s.FindAll())

	first, err := s.Save(note{Text: "first"})
	require.NoError(t, err)
	second, err := s.Save(note{Text: "second"})
	require.NoError(t, err)

	all := s.FindAll()
	assert.Len(t, all, 2)
	assert.ElementsMatch(t, []note{first, second}, all)
}

func TestDeleteByIDIsNoOpWhenAbsent(t *testing.T) {
	s := store.New[note]()

	require.NoError(t, s.DeleteByID(7))
}

func TestDeleteByIDRemovesEntity(t *testing.T) {
	s := store.New[note]()

	created, err := s.Save(note{Text: "gone soon"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteByID(created.ID))

	found, err := s.FindByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	exists, err := s.ExistsByID(created.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteByIDRejectsInvalidID(t *testing.T) {
	s := store.New[note]()

	require.ErrorIs(t, s.DeleteByID(0), store.ErrInvalidID)
}

func TestIDsAreNotReusedAfterDelete(t *testing.T) {
	s := store.New[note]()

	first, err := s.Save(note{Text: "first"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteByID(first.ID))

	second, err := s.Save(note{Text: "second"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, second.ID)
}

func TestConcurrentSavesNeverCollideOnID(t *testing.T) {
	const workers = 50
	const perWorker = 20

	s := store.New[note]()

	var wg sync.WaitGroup
	ids := make(chan int, workers*perWorker)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				created, err := s.Save(note{Text: "concurrent"})
				assert.NoError(t, err)
				ids <- created.ID
			}
		}()
	}

	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}

	assert.Len(t, seen, workers*perWorker)
	assert.Equal(t, workers*perWorker, s.Len())
}
