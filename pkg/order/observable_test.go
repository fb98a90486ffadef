package order

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func mustSubscribe(t *testing.T, c *ObservableCollection, kind EventKind, fn Listener) SubscriptionID {
	t.Helper()
	id, err := c.Subscribe(kind, fn)
	require.NoError(t, err)
	return id
}

func TestSubscribeRejectsNilListener(t *testing.T) {
	c := NewObservableCollection()
	id, err := c.Subscribe(ItemAdded, nil)
	assert.ErrorIs(t, err, ErrNilListener)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Zero(t, id)

	item := mustItem(t, 1, "Widget", 1, 1)
	assert.NotPanics(t, func() {
		require.NoError(t, c.Add(item))
		require.NoError(t, c.Remove(item))
	})
	assert.Equal(t, 0, c.Len())
}

func TestListenersFireInRegistrationOrder(t *testing.T) {
	c := NewObservableCollection()
	var calls []string
	mustSubscribe(t, c, ItemAdded, func(ItemEvent) { calls = append(calls, "first") })
	mustSubscribe(t, c, ItemAdded, func(ItemEvent) { calls = append(calls, "second") })
	mustSubscribe(t, c, ItemRemoved, func(ItemEvent) { calls = append(calls, "removed") })

	item := mustItem(t, 1, "Widget", 1, 1)
	require.NoError(t, c.Add(item))
	assert.Equal(t, []string{"first", "second"}, calls)

	require.NoError(t, c.Remove(item))
	assert.Equal(t, []string{"first", "second", "removed"}, calls)
}

func TestUnsubscribe(t *testing.T) {
	c := NewObservableCollection()
	count := 0
	id := mustSubscribe(t, c, ItemAdded, func(ItemEvent) { count++ })

	require.NoError(t, c.Add(mustItem(t, 1, "A", 1, 1)))
	assert.True(t, c.Unsubscribe(id))
	assert.False(t, c.Unsubscribe(id))
	require.NoError(t, c.Add(mustItem(t, 2, "B", 1, 1)))

	assert.Equal(t, 1, count)
	assert.Equal(t, 2, c.Len())
}

func TestRemoveMissingDoesNotNotify(t *testing.T) {
	c := NewObservableCollection()
	fired := false
	mustSubscribe(t, c, ItemRemoved, func(ItemEvent) { fired = true })

	err := c.Remove(mustItem(t, 1, "A", 1, 1))
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.False(t, fired)
	assert.ErrorIs(t, c.Remove(nil), ErrNilItem)
}

func TestObservableOrderAnnounces(t *testing.T) {
	var buf bytes.Buffer
	o := NewObservableOrder(&buf, zap.NewNop())

	require.NoError(t, o.AddRange([]*OrderItem{
		mustItem(t, 110072674, "Widget", 400, 45.17),
		mustItem(t, 110072675, "Sprocket", 27, 5.3),
	}))
	item := mustItem(t, 101030411, "Motor", 10, 237.5)
	require.NoError(t, o.AddItem(item))
	require.NoError(t, o.RemoveItem(item))

	assert.Equal(t, "The item 110072674 has been added.\n"+
		"The item 110072675 has been added.\n"+
		"The item 101030411 has been added.\n"+
		"The item 101030411 has been removed.\n", buf.String())
	assert.Equal(t, 2, o.Items().Len())
}

func TestObservableOrderAddRangeIsAtomic(t *testing.T) {
	var buf bytes.Buffer
	o := NewObservableOrder(&buf, nil)

	err := o.AddRange([]*OrderItem{mustItem(t, 1, "A", 1, 1), nil})
	assert.ErrorIs(t, err, ErrNilItem)
	assert.Equal(t, 0, o.Items().Len())
	assert.Empty(t, buf.String())

	assert.ErrorIs(t, o.AddRange(nil), ErrNilCollection)
	assert.NoError(t, o.AddRange([]*OrderItem{}))
}

func TestReadOnlyItemsIsSnapshot(t *testing.T) {
	var buf bytes.Buffer
	o := NewObservableOrder(&buf, nil)
	first := mustItem(t, 1, "A", 1, 1)
	require.NoError(t, o.AddItem(first))
	require.NoError(t, o.AddItem(mustItem(t, 2, "B", 1, 1)))

	view := o.Items()
	require.NoError(t, o.RemoveItem(first))

	assert.Equal(t, 2, view.Len())
	assert.Same(t, first, view.At(0))

	var parts []int
	view.Each(func(it *OrderItem) bool {
		parts = append(parts, it.PartNumber)
		return true
	})
	assert.Equal(t, []int{1, 2}, parts)
	assert.Len(t, view.Slice(), 2)
}
