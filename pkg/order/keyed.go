package order

// KeyedCollection keeps items in insertion order and indexes them by part
// number. Keys are unique.
type KeyedCollection struct {
	items []*OrderItem
	index map[int]int
}

func NewKeyedCollection() *KeyedCollection {
	return &KeyedCollection{index: make(map[int]int)}
}

func keyFor(item *OrderItem) int {
	return item.PartNumber
}

func (c *KeyedCollection) Add(item *OrderItem) error {
	if item == nil {
		return ErrNilItem
	}
	key := keyFor(item)
	if _, ok := c.index[key]; ok {
		return ErrDuplicateKey
	}
	c.index[key] = len(c.items)
	c.items = append(c.items, item)
	return nil
}

func (c *KeyedCollection) Contains(partNumber int) bool {
	_, ok := c.index[partNumber]
	return ok
}

func (c *KeyedCollection) Get(partNumber int) (*OrderItem, bool) {
	pos, ok := c.index[partNumber]
	if !ok {
		return nil, false
	}
	return c.items[pos], true
}

// Remove deletes the item with the given part number and reindexes the
// items after it.
func (c *KeyedCollection) Remove(partNumber int) bool {
	pos, ok := c.index[partNumber]
	if !ok {
		return false
	}
	c.items = append(c.items[:pos], c.items[pos+1:]...)
	delete(c.index, partNumber)
	for i := pos; i < len(c.items); i++ {
		c.index[keyFor(c.items[i])] = i
	}
	return true
}

func (c *KeyedCollection) Len() int {
	return len(c.items)
}

func (c *KeyedCollection) Items() []*OrderItem {
	out := make([]*OrderItem, len(c.items))
	copy(out, c.items)
	return out
}

// KeyedOrder is the order variant backed by a KeyedCollection.
type KeyedOrder struct {
	Items *KeyedCollection
}

func NewKeyedOrder() *KeyedOrder {
	return &KeyedOrder{Items: NewKeyedCollection()}
}
