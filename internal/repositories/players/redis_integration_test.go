//go:build integration

package players_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	dnderr "github.com/KirkDiggler/crawl-talents/internal/errors"
	"github.com/KirkDiggler/crawl-talents/internal/repositories/players"
	"github.com/KirkDiggler/crawl-talents/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client, mr := testutils.CreateMiniRedisClient(t)
	repo := players.NewRedis(&players.RedisRepoConfig{Client: client})
	ctx := context.Background()

	t.Run("create and retrieve player", func(t *testing.T) {
		p := testutils.CreateTestWorshipper("p-1", shared.GodTrog, 80)
		p.Durations[shared.DurBerserk] = 30
		require.NoError(t, repo.Create(ctx, p))

		assert.True(t, mr.Exists("player:p-1"))
		members, err := mr.SMembers("owner:owner:players")
		require.NoError(t, err)
		assert.Equal(t, []string{"p-1"}, members)

		got, err := repo.Get(ctx, "p-1")
		require.NoError(t, err)
		assert.Equal(t, shared.GodTrog, got.Religion)
		assert.Equal(t, 80, got.Piety)
		assert.Equal(t, 30, got.Duration(shared.DurBerserk))
	})

	t.Run("create without ID assigns a UUID", func(t *testing.T) {
		p := testutils.CreateTestPlayer("", "owner-2", "Fresh")
		require.NoError(t, repo.Create(ctx, p))
		assert.NotEmpty(t, p.ID)
	})

	t.Run("update then list", func(t *testing.T) {
		p, err := repo.Get(ctx, "p-1")
		require.NoError(t, err)
		p.Piety = 10
		require.NoError(t, repo.Update(ctx, p))

		list, err := repo.ListByOwner(ctx, "owner")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, 10, list[0].Piety)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "p-1"))
		_, err := repo.Get(ctx, "p-1")
		assert.True(t, dnderr.IsNotFound(err))
		assert.False(t, mr.Exists("player:p-1"))
	})
}
