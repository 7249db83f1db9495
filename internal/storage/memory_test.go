package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryKV_SetGetDelete(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	v, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, kv.Set(ctx, "k", []byte("v1")))
	require.NoError(t, kv.Set(ctx, "k", []byte("v2")))

	v, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), v)

	require.NoError(t, kv.Delete(ctx, "k"))
	require.NoError(t, kv.Delete(ctx, "k"))

	v, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestMemoryKV_Get_ReturnsCopy(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("abc")))

	v, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	v[0] = 'x'

	again, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), again)
}

func TestMemoryKV_Update_FnError_WritesNothing(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("keep")))

	boom := errors.New("boom")
	err := kv.Update(ctx, "k", func(current []byte) ([]byte, error) {
		require.Equal(t, []byte("keep"), current)
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	v, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("keep"), v)
}
