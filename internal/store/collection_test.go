package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// failingKV returns err from every call.
type failingKV struct{ err error }

func (f failingKV) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingKV) Put(context.Context, string, []byte) error   { return f.err }
func (f failingKV) Delete(context.Context, string) error        { return f.err }

func TestCollection_MissingKeyIsEmpty(t *testing.T) {
	c := NewCollection[item](NewMemory(), "items", nil)

	got := c.All(context.Background())
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCollection_CorruptPayloadIsEmpty(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()
	require.NoError(t, kv.Put(ctx, "items", []byte(`{not json`)))

	c := NewCollection[item](kv, "items", nil)
	assert.Empty(t, c.All(ctx))
}

func TestCollection_NullPayloadIsEmpty(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()
	require.NoError(t, kv.Put(ctx, "items", []byte(`null`)))

	c := NewCollection[item](kv, "items", nil)
	got := c.All(ctx)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCollection_ReadErrorIsEmpty(t *testing.T) {
	c := NewCollection[item](failingKV{err: errors.New("disk on fire")}, "items", nil)
	assert.Empty(t, c.All(context.Background()))
}

func TestCollection_WriteErrorPropagates(t *testing.T) {
	boom := errors.New("disk on fire")
	c := NewCollection[item](failingKV{err: boom}, "items", nil)

	err := c.Replace(context.Background(), []item{{ID: "1"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "items")
}

func TestCollection_AppendAndFilter(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[item](NewMemory(), "items", nil)

	require.NoError(t, c.Append(ctx, item{ID: "1", Name: "a"}))
	require.NoError(t, c.Append(ctx, item{ID: "2", Name: "b"}, item{ID: "3", Name: "a"}))

	all := c.All(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "3", all[2].ID)

	named := c.Filter(ctx, func(it item) bool { return it.Name == "a" })
	assert.Equal(t, []item{{ID: "1", Name: "a"}, {ID: "3", Name: "a"}}, named)
}

func TestCollection_ReplaceNilWritesEmptyArray(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()
	c := NewCollection[item](kv, "items", nil)

	require.NoError(t, c.Replace(ctx, nil))
	raw, err := kv.Get(ctx, "items")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}
