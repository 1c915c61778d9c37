package store_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vamm99/moterplace/internal/store"
)

type testEntry struct {
	Field1 string `json:"field1"`
	Field2 int    `json:"field2"`
}

func setup(t *testing.T) (store.Store, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()

	return store.NewRedisStore(client), mock
}

func TestLoad(t *testing.T) {
	ctx := t.Context()
	testKey := "cart:visitor-1"
	testValue := testEntry{Field1: "value1", Field2: 123}
	jsonData, err := json.Marshal(testValue)
	require.NoError(t, err)

	t.Run("Success - Key Found", func(t *testing.T) {
		// Arrange
		s, mock := setup(t)

		var result testEntry

		mock.ExpectGet(testKey).SetVal(string(jsonData))

		// Act
		found, err := s.Load(ctx, testKey, &result)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, testValue, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Key Not Found", func(t *testing.T) {
		// Arrange
		s, mock := setup(t)

		var result testEntry

		mock.ExpectGet(testKey).RedisNil()

		// Act
		found, err := s.Load(ctx, testKey, &result)

		// Assert
		require.NoError(t, err, "a miss is not an error")
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		s, mock := setup(t)

		var result testEntry

		mock.ExpectGet(testKey).SetErr(errors.New("connection refused"))

		// Act
		found, err := s.Load(ctx, testKey, &result)

		// Assert
		assert.Error(t, err)
		assert.False(t, found)
	})

	t.Run("Failure - Corrupt Payload", func(t *testing.T) {
		// Arrange
		s, mock := setup(t)

		var result testEntry

		mock.ExpectGet(testKey).SetVal("{not json")

		// Act
		found, err := s.Load(ctx, testKey, &result)

		// Assert
		assert.Error(t, err)
		assert.False(t, found)
	})
}

func TestSave(t *testing.T) {
	ctx := t.Context()
	testKey := "wishlist:visitor-1"
	testValue := testEntry{Field1: "value1", Field2: 123}
	jsonData, err := json.Marshal(testValue)
	require.NoError(t, err)

	t.Run("Success - Writes Without Expiry", func(t *testing.T) {
		// Arrange
		s, mock := setup(t)

		mock.ExpectSet(testKey, jsonData, 0).SetVal("OK")

		// Act
		err := s.Save(ctx, testKey, testValue)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		s, mock := setup(t)

		mock.ExpectSet(testKey, jsonData, 0).SetErr(errors.New("connection refused"))

		// Act
		err := s.Save(ctx, testKey, testValue)

		// Assert
		assert.Error(t, err)
	})
}

func TestDelete(t *testing.T) {
	ctx := t.Context()
	testKey := "cart:visitor-1"

	t.Run("Success", func(t *testing.T) {
		// Arrange
		s, mock := setup(t)

		mock.ExpectDel(testKey).SetVal(1)

		// Act
		err := s.Delete(ctx, testKey)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		s, mock := setup(t)

		mock.ExpectDel(testKey).SetErr(errors.New("connection refused"))

		// Act
		err := s.Delete(ctx, testKey)

		// Assert
		assert.Error(t, err)
	})
}
