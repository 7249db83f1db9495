package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupSQLiteKV(t *testing.T) *SQLiteKV {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteKV(db)
}

func TestSQLiteKV_SetAndGet(t *testing.T) {
	kv := setupSQLiteKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k1", []byte(`{"a":1}`)))

	v, err := kv.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"a":1}`), v)
}

func TestSQLiteKV_GetAbsent_ReturnsNilNil(t *testing.T) {
	kv := setupSQLiteKV(t)

	v, err := kv.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteKV_Set_OverwritesPriorValue(t *testing.T) {
	kv := setupSQLiteKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("old")))
	require.NoError(t, kv.Set(ctx, "k", []byte("new")))

	v, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestSQLiteKV_Delete_RemovesKey_AndIsIdempotent(t *testing.T) {
	kv := setupSQLiteKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "x", []byte("v")))
	require.NoError(t, kv.Delete(ctx, "x"))

	v, err := kv.Get(ctx, "x")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, kv.Delete(ctx, "x"))
}

func TestSQLiteKV_Update_ReadModifyWrite(t *testing.T) {
	kv := setupSQLiteKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("a")))

	err := kv.Update(ctx, "k", func(current []byte) ([]byte, error) {
		assert.Equal(t, []byte("a"), current)
		return append(current, 'b'), nil
	})
	require.NoError(t, err)

	v, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("ab"), v)
}

func TestSQLiteKV_Update_AbsentKey_FnSeesNil(t *testing.T) {
	kv := setupSQLiteKV(t)
	ctx := context.Background()

	err := kv.Update(ctx, "fresh", func(current []byte) ([]byte, error) {
		assert.Nil(t, current)
		return []byte("seeded"), nil
	})
	require.NoError(t, err)

	v, err := kv.Get(ctx, "fresh")
	require.NoError(t, err)
	require.Equal(t, []byte("seeded"), v)
}

func TestSQLiteKV_Update_FnError_WritesNothing(t *testing.T) {
	kv := setupSQLiteKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("keep")))

	boom := errors.New("boom")
	err := kv.Update(ctx, "k", func(current []byte) ([]byte, error) {
		return []byte("discarded"), boom
	})
	require.ErrorIs(t, err, boom)

	v, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("keep"), v)
}
