package order

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// OrderItem is one line of an order. Only the quantity may change after
// construction.
type OrderItem struct {
	PartNumber  int
	Description string
	UnitPrice   float64
	quantity    int
}

func NewOrderItem(partNumber int, description string, quantity int, unitPrice float64) (*OrderItem, error) {
	item := &OrderItem{
		PartNumber:  partNumber,
		Description: description,
		UnitPrice:   unitPrice,
	}
	if err := item.SetQuantity(quantity); err != nil {
		return nil, fmt.Errorf("part %d: %w", partNumber, err)
	}
	return item, nil
}

func (i *OrderItem) Quantity() int {
	return i.quantity
}

// SetQuantity rejects negative values and leaves the current quantity as is.
func (i *OrderItem) SetQuantity(q int) error {
	if q < 0 {
		return ErrNegativeQuantity
	}
	i.quantity = q
	return nil
}

func (i *OrderItem) Total() float64 {
	return i.UnitPrice * float64(i.quantity)
}

// String renders a fixed-width table row:
// part, quantity, description, unit price and line total.
func (i *OrderItem) String() string {
	return fmt.Sprintf("%9d %6d %-12s at %8s = %10s",
		i.PartNumber, i.quantity, i.Description,
		FormatMoney(i.UnitPrice), FormatMoney(i.Total()))
}

// FormatMoney renders v with thousands separators and two decimals and, like
// a "#,###.00" picture, no integer digit below one (".50").
func FormatMoney(v float64) string {
	s := humanize.FormatFloat("#,###.##", v)
	if strings.HasPrefix(s, "0.") {
		return s[1:]
	}
	if strings.HasPrefix(s, "-0.") {
		return "-" + s[2:]
	}
	return s
}
