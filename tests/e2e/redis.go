//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

var (
	redisContainerOnce sync.Once
	redisTestContainer *tcredis.RedisContainer
	redisAddr          string
)

// ------------------------------------------------------------
// Redisコンテナを一度だけ起動し、テスト毎にクライアントを返す
// ------------------------------------------------------------
func StartRedis(t *testing.T) *redis.Client {
	t.Helper()

	redisContainerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
		defer cancel()

		var err error
		redisTestContainer, err = tcredis.Run(ctx, "redis:7-alpine")
		require.NoError(t, err, "Redisコンテナの起動に失敗")

		host, err := redisTestContainer.Host(ctx)
		require.NoError(t, err, "Redisコンテナ情報の取得に失敗")
		port, err := redisTestContainer.MappedPort(ctx, "6379")
		require.NoError(t, err, "Redisコンテナ情報の取得に失敗")
		redisAddr = fmt.Sprintf("%s:%s", host, port.Port())

		t.Cleanup(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := redisTestContainer.Terminate(ctx); err != nil {
				slog.Warn("Redisコンテナの終了に失敗しました", "error", err.Error())
			}
		})
	})
	require.NotEmpty(t, redisAddr, "Redisコンテナが起動していません")

	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, client.FlushDB(ctx).Err())
	return client
}
