package order

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Order is the plain list variant: items keep insertion order and lookups
// scan linearly.
type Order struct {
	ID    uuid.UUID
	items []*OrderItem
}

func NewOrder() *Order {
	return &Order{ID: uuid.New()}
}

func (o *Order) Add(item *OrderItem) error {
	if item == nil {
		return ErrNilItem
	}
	o.items = append(o.items, item)
	return nil
}

func (o *Order) Items() []*OrderItem {
	out := make([]*OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) Len() int {
	return len(o.items)
}

// Find returns the first item with the given part number.
func (o *Order) Find(partNumber int) (*OrderItem, bool) {
	for _, it := range o.items {
		if it.PartNumber == partNumber {
			return it, true
		}
	}
	return nil, false
}

// Display writes a title line, one row per item and a blank line.
func Display(w io.Writer, title string, items []*OrderItem) {
	fmt.Fprintln(w, title)
	for _, it := range items {
		fmt.Fprintln(w, it)
	}
	fmt.Fprintln(w)
}
