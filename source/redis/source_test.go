package redis_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/source/redis"
)

func TestNewSource(t *testing.T) {
	t.Parallel()

	t.Run("nil client returns nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, redis.NewSource(nil, "i18n:"))
	})

	t.Run("empty prefix falls back to i18n", func(t *testing.T) {
		t.Parallel()

		client, mock := redismock.NewClientMock()
		mock.ExpectScan(0, "i18n:*", 100).SetVal([]string{}, 0)

		src := redis.NewSource(client, "")
		require.NotNil(t, src)

		_, err := src.Load(context.Background())
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSourceLoad(t *testing.T) {
	t.Parallel()

	t.Run("assembles catalog from language hashes", func(t *testing.T) {
		t.Parallel()

		client, mock := redismock.NewClientMock()
		mock.ExpectScan(0, "i18n:*", 100).SetVal([]string{"i18n:en", "i18n:de"}, 0)
		mock.ExpectHGetAll("i18n:en").SetVal(map[string]string{
			"hello":   "Hello",
			"welcome": "Welcome, ${name}!",
		})
		mock.ExpectHGetAll("i18n:de").SetVal(map[string]string{"hello": "Hallo"})

		src := redis.NewSource(client, "i18n:")

		translations, err := src.Load(context.Background())
		require.NoError(t, err)

		assert.Equal(t, map[string]map[string]string{
			"en": {"hello": "Hello", "welcome": "Welcome, ${name}!"},
			"de": {"hello": "Hallo"},
		}, translations)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("follows scan cursor across pages", func(t *testing.T) {
		t.Parallel()

		client, mock := redismock.NewClientMock()
		mock.ExpectScan(0, "i18n:*", 100).SetVal([]string{"i18n:en"}, 7)
		mock.ExpectHGetAll("i18n:en").SetVal(map[string]string{"hello": "Hello"})
		mock.ExpectScan(7, "i18n:*", 100).SetVal([]string{"i18n:de"}, 0)
		mock.ExpectHGetAll("i18n:de").SetVal(map[string]string{"hello": "Hallo"})

		src := redis.NewSource(client, "i18n:")

		translations, err := src.Load(context.Background())
		require.NoError(t, err)

		assert.Equal(t, map[string]map[string]string{
			"en": {"hello": "Hello"},
			"de": {"hello": "Hallo"},
		}, translations)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("custom prefix selects matching hashes", func(t *testing.T) {
		t.Parallel()

		client, mock := redismock.NewClientMock()
		mock.ExpectScan(0, "locale:*", 100).SetVal([]string{"locale:en"}, 0)
		mock.ExpectHGetAll("locale:en").SetVal(map[string]string{"hello": "Hello"})

		src := redis.NewSource(client, "locale:")

		translations, err := src.Load(context.Background())
		require.NoError(t, err)

		assert.Equal(t, map[string]map[string]string{
			"en": {"hello": "Hello"},
		}, translations)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("bare prefix key is skipped", func(t *testing.T) {
		t.Parallel()

		client, mock := redismock.NewClientMock()
		mock.ExpectScan(0, "i18n:*", 100).SetVal([]string{"i18n:", "i18n:en"}, 0)
		mock.ExpectHGetAll("i18n:en").SetVal(map[string]string{"hello": "Hello"})

		src := redis.NewSource(client, "i18n:")

		translations, err := src.Load(context.Background())
		require.NoError(t, err)

		assert.Equal(t, map[string]map[string]string{
			"en": {"hello": "Hello"},
		}, translations)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("scan failure is wrapped", func(t *testing.T) {
		t.Parallel()

		client, mock := redismock.NewClientMock()
		mock.ExpectScan(0, "i18n:*", 100).SetErr(errors.New("connection refused"))

		src := redis.NewSource(client, "i18n:")

		_, err := src.Load(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, redis.ErrFailedToLoadTranslations)
	})

	t.Run("hgetall failure is wrapped", func(t *testing.T) {
		t.Parallel()

		client, mock := redismock.NewClientMock()
		mock.ExpectScan(0, "i18n:*", 100).SetVal([]string{"i18n:en"}, 0)
		mock.ExpectHGetAll("i18n:en").SetErr(errors.New("connection reset"))

		src := redis.NewSource(client, "i18n:")

		_, err := src.Load(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, redis.ErrFailedToLoadTranslations)
	})

	t.Run("empty keyspace yields empty catalog", func(t *testing.T) {
		t.Parallel()

		client, mock := redismock.NewClientMock()
		mock.ExpectScan(0, "i18n:*", 100).SetVal([]string{}, 0)

		src := redis.NewSource(client, "i18n:")

		translations, err := src.Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, translations)
	})
}
