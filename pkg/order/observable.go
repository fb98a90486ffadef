package order

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

type EventKind int

const (
	ItemAdded EventKind = iota
	ItemRemoved
)

func (k EventKind) String() string {
	switch k {
	case ItemAdded:
		return "added"
	case ItemRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// ItemEvent is delivered to listeners after the collection has changed.
type ItemEvent struct {
	Kind EventKind
	Item *OrderItem
}

type Listener func(ItemEvent)

type SubscriptionID uint64

type subscription struct {
	id   SubscriptionID
	kind EventKind
	fn   Listener
}

// ObservableCollection is an ordered item list that notifies listeners
// synchronously, in registration order, on every add and remove.
type ObservableCollection struct {
	items  []*OrderItem
	subs   []subscription
	nextID SubscriptionID
}

func NewObservableCollection() *ObservableCollection {
	return &ObservableCollection{}
}

// Subscribe registers fn for events of the given kind. A nil listener is
// rejected with ErrNilListener and nothing is registered.
func (c *ObservableCollection) Subscribe(kind EventKind, fn Listener) (SubscriptionID, error) {
	if fn == nil {
		return 0, ErrNilListener
	}
	return c.subscribe(kind, fn), nil
}

func (c *ObservableCollection) subscribe(kind EventKind, fn Listener) SubscriptionID {
	c.nextID++
	c.subs = append(c.subs, subscription{id: c.nextID, kind: kind, fn: fn})
	return c.nextID
}

func (c *ObservableCollection) Unsubscribe(id SubscriptionID) bool {
	for i, s := range c.subs {
		if s.id == id {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			return true
		}
	}
	return false
}

func (c *ObservableCollection) Add(item *OrderItem) error {
	if item == nil {
		return ErrNilItem
	}
	c.items = append(c.items, item)
	c.notify(ItemEvent{Kind: ItemAdded, Item: item})
	return nil
}

// Remove deletes the first occurrence of item (pointer identity).
func (c *ObservableCollection) Remove(item *OrderItem) error {
	if item == nil {
		return ErrNilItem
	}
	for i, it := range c.items {
		if it == item {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.notify(ItemEvent{Kind: ItemRemoved, Item: item})
			return nil
		}
	}
	return ErrItemNotFound
}

func (c *ObservableCollection) Len() int {
	return len(c.items)
}

func (c *ObservableCollection) notify(ev ItemEvent) {
	// Snapshot so a listener that (un)subscribes does not disturb this round.
	subs := make([]subscription, len(c.subs))
	copy(subs, c.subs)
	for _, s := range subs {
		if s.kind == ev.Kind {
			s.fn(ev)
		}
	}
}

// ReadOnlyItems is a snapshot of a collection's items that cannot mutate it.
type ReadOnlyItems struct {
	items []*OrderItem
}

func (r ReadOnlyItems) Len() int { return len(r.items) }

func (r ReadOnlyItems) At(i int) *OrderItem { return r.items[i] }

func (r ReadOnlyItems) Each(fn func(*OrderItem) bool) {
	for _, it := range r.items {
		if !fn(it) {
			return
		}
	}
}

func (r ReadOnlyItems) Slice() []*OrderItem {
	out := make([]*OrderItem, len(r.items))
	copy(out, r.items)
	return out
}

// ObservableOrder announces every item change on its writer.
type ObservableOrder struct {
	items  *ObservableCollection
	logger *zap.Logger
}

func NewObservableOrder(w io.Writer, logger *zap.Logger) *ObservableOrder {
	if logger == nil {
		logger = zap.NewNop()
	}
	o := &ObservableOrder{
		items:  NewObservableCollection(),
		logger: logger,
	}
	announce := func(ev ItemEvent) {
		fmt.Fprintf(w, "The item %d has been %s.\n", ev.Item.PartNumber, ev.Kind)
		o.logger.Debug("order item changed",
			zap.String("event", ev.Kind.String()),
			zap.Int("part_number", ev.Item.PartNumber))
	}
	o.items.subscribe(ItemAdded, announce)
	o.items.subscribe(ItemRemoved, announce)
	return o
}

func (o *ObservableOrder) Items() ReadOnlyItems {
	return ReadOnlyItems{items: append([]*OrderItem(nil), o.items.items...)}
}

func (o *ObservableOrder) AddItem(item *OrderItem) error {
	return o.items.Add(item)
}

func (o *ObservableOrder) RemoveItem(item *OrderItem) error {
	if err := o.items.Remove(item); err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	return nil
}

// AddRange adds items in order. A nil slice or any nil element rejects the
// whole batch before anything is added.
func (o *ObservableOrder) AddRange(items []*OrderItem) error {
	if items == nil {
		return ErrNilCollection
	}
	for i, it := range items {
		if it == nil {
			return fmt.Errorf("item %d: %w", i, ErrNilItem)
		}
	}
	for _, it := range items {
		if err := o.items.Add(it); err != nil {
			return err
		}
	}
	return nil
}
