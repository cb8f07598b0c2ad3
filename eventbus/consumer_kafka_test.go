package eventbus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherRoutesByType(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.Handle("post.published", func(_ context.Context, evt Event) error {
		got = append(got, evt.ID)
		return nil
	})

	require.NoError(t, d.Dispatch(context.Background(), Event{ID: "a", Type: "post.published"}))
	require.NoError(t, d.Dispatch(context.Background(), Event{ID: "b", Type: "post.deleted"}))
	assert.Equal(t, []string{"a"}, got)
}

func TestDispatcherWrapsHandlerError(t *testing.T) {
	boom := errors.New("boom")
	d := NewDispatcher()
	d.Handle("post.published", func(context.Context, Event) error { return boom })

	err := d.Dispatch(context.Background(), Event{ID: "a", Type: "post.published"})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "post.published a")
}
