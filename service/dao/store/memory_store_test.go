package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/shellsim/service/dao"
)

type record struct {
	ID    string
	Value int
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	srv := NewMemoryStore[string, record](func(r *record) string { return r.ID },
		WithClone[string, record](func(r *record) *record { c := *r; return &c }),
		WithFilter[string, record](func(r *record, parameters []*dao.Parameter) bool {
			return len(parameters) == 0 || r.Value == parameters[0].Value
		}),
	)

	assert.ErrorIs(t, srv.Save(ctx, nil), dao.ErrNilEntity)
	assert.ErrorIs(t, srv.Save(ctx, &record{}), dao.ErrInvalidID)

	original := &record{ID: "a", Value: 1}
	assert.NoError(t, srv.Save(ctx, original))
	assert.NoError(t, srv.Save(ctx, &record{ID: "b", Value: 2}))
	original.Value = 10

	loaded, err := srv.Load(ctx, "a")
	assert.NoError(t, err)
	assert.Equal(t, &record{ID: "a", Value: 1}, loaded)
	loaded.Value = 20
	loaded, _ = srv.Load(ctx, "a")
	assert.Equal(t, 1, loaded.Value)

	all, err := srv.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	filtered, err := srv.List(ctx, &dao.Parameter{Name: "Value", Value: 2})
	assert.NoError(t, err)
	assert.Equal(t, []*record{{ID: "b", Value: 2}}, filtered)

	assert.NoError(t, srv.Delete(ctx, "a"))
	assert.ErrorIs(t, srv.Delete(ctx, "a"), dao.ErrNotFound)
	_, err = srv.Load(ctx, "a")
	assert.ErrorIs(t, err, dao.ErrNotFound)
}
