package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/service/models"
	"github.com/stretchr/testify/require"
)

func TestInMemory_SaveFindDelete(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	s := &models.Session{Token: "tok", Username: "alice", IssuedAt: time.Unix(1, 0)}
	require.NoError(t, repo.Save(ctx, s))

	out, err := repo.Find(ctx, "tok")
	require.NoError(t, err)
	require.Equal(t, "alice", out.Username)

	require.NoError(t, repo.Delete(ctx, "tok"))
	require.NoError(t, repo.Delete(ctx, "tok"))

	_, err = repo.Find(ctx, "tok")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInMemory_SingleSessionPerUser(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &models.Session{Token: "t1", Username: "alice"}))
	require.NoError(t, repo.Save(ctx, &models.Session{Token: "t2", Username: "alice"}))

	_, err := repo.Find(ctx, "t1")
	require.ErrorIs(t, err, common.ErrorNotFound)

	out, err := repo.Find(ctx, "t2")
	require.NoError(t, err)
	require.Equal(t, "alice", out.Username)
}
