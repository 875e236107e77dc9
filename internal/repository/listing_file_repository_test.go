package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chart0729-create/hany1/internal/model"
)

func newFileStore(t *testing.T) *FileListingRepository {
	t.Helper()
	return NewFileListingRepository(filepath.Join(t.TempDir(), "listings.json"))
}

func TestFileListingCreateAssignsIncreasingIDs(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	first := model.Listing{Title: "Studio A"}
	require.NoError(t, store.Create(ctx, &first))
	require.Equal(t, 1, first.ID)

	second := model.Listing{Title: "Studio B"}
	require.NoError(t, store.Create(ctx, &second))
	require.Equal(t, 2, second.ID)

	// Deleting the max id must not recycle it downward past a survivor.
	require.NoError(t, store.Delete(ctx, 1))
	third := model.Listing{Title: "Studio C"}
	require.NoError(t, store.Create(ctx, &third))
	require.Equal(t, 3, third.ID)
}

func TestFileListingListNewestFirst(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	for _, title := range []string{"one", "two", "three"} {
		l := model.Listing{Title: title}
		require.NoError(t, store.Create(ctx, &l))
	}

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, 3, list[0].ID)
	require.Equal(t, 1, list[2].ID)
	require.NotNil(t, list[0].Tags)
	require.NotNil(t, list[0].Images)
}

func TestFileListingGetByID(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	l := model.Listing{Title: "Studio A", Price: "500"}
	require.NoError(t, store.Create(ctx, &l))

	got, err := store.GetByID(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, "Studio A", got.Title)
	require.Equal(t, "500", got.Price)

	_, err = store.GetByID(ctx, 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileListingUpdateIsStrict(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	err := store.Update(ctx, &model.Listing{ID: 7, Title: "ghost"})
	require.ErrorIs(t, err, ErrNotFound)

	l := model.Listing{Title: "before"}
	require.NoError(t, store.Create(ctx, &l))
	l.Title = "after"
	require.NoError(t, store.Update(ctx, &l))

	got, err := store.GetByID(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, "after", got.Title)
}

func TestFileListingDeleteMissingLeavesStoreAlone(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	l := model.Listing{Title: "keep me"}
	require.NoError(t, store.Create(ctx, &l))

	require.ErrorIs(t, store.Delete(ctx, 99), ErrNotFound)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestFileListingToggleContract(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	l := model.Listing{Title: "Studio A"}
	require.NoError(t, store.Create(ctx, &l))

	got, err := store.ToggleContract(ctx, l.ID, "2026-01-02T03:04:05Z")
	require.NoError(t, err)
	require.True(t, got.Completed)
	require.Equal(t, "2026-01-02T03:04:05Z", got.UpdatedAt)

	got, err = store.ToggleContract(ctx, l.ID, "2026-01-02T03:04:06Z")
	require.NoError(t, err)
	require.False(t, got.Completed)

	_, err = store.ToggleContract(ctx, 99, "2026-01-02T03:04:07Z")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileListingReplaceAll(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	old := model.Listing{Title: "old"}
	require.NoError(t, store.Create(ctx, &old))

	require.NoError(t, store.ReplaceAll(ctx, []model.Listing{
		{ID: 10, Title: "imported A"},
		{ID: 11, Title: "imported B"},
	}))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, 11, list[0].ID)

	_, err = store.GetByID(ctx, old.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileListingSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listings.json")
	ctx := context.Background()

	store := NewFileListingRepository(path)
	l := model.Listing{Title: "persisted", Tags: []string{"a", "b"}}
	require.NoError(t, store.Create(ctx, &l))

	reopened := NewFileListingRepository(path)
	got, err := reopened.GetByID(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, "persisted", got.Title)
	require.Equal(t, []string{"a", "b"}, []string(got.Tags))
}

func TestFileListingCorruptFileReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewFileListingRepository(path)
	list, err := store.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)
}
