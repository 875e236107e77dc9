package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chart0729-create/hany1/internal/model"
)

func TestContactZeroValueBeforeFirstWrite(t *testing.T) {
	repo := NewContactRepository(filepath.Join(t.TempDir(), "contact-info.json"))

	info, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.ContactInfo{}, info)
}

func TestContactSetOverwritesWholesale(t *testing.T) {
	repo := NewContactRepository(filepath.Join(t.TempDir(), "contact-info.json"))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, model.ContactInfo{
		Name:  "부동산",
		Phone: "010-0000-0000",
		Kakao: "hany",
	}))

	// A second write with fewer fields clears the rest; this is not a
	// merge.
	require.NoError(t, repo.Set(ctx, model.ContactInfo{Telegram: "@hany"}))

	info, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, model.ContactInfo{Telegram: "@hany"}, info)
}
