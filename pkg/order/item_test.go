package order

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderItemRejectsNegativeQuantity(t *testing.T) {
	item, err := NewOrderItem(1, "Widget", -1, 1.0)
	assert.Nil(t, item)
	assert.ErrorIs(t, err, ErrNegativeQuantity)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSetQuantityKeepsPriorValue(t *testing.T) {
	item, err := NewOrderItem(110072674, "Widget", 400, 45.17)
	require.NoError(t, err)

	err = item.SetQuantity(-5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, 400, item.Quantity())

	require.NoError(t, item.SetQuantity(0))
	assert.Equal(t, 0, item.Quantity())
}

func TestOrderItemString(t *testing.T) {
	item, err := NewOrderItem(110072674, "Widget", 400, 45.17)
	require.NoError(t, err)

	assert.Equal(t, "110072674    400 Widget       at    45.17 =  18,068.00", item.String())
	assert.InDelta(t, 18068.0, item.Total(), 1e-9)
}

func TestFormatMoney(t *testing.T) {
	cases := map[float64]string{
		0.5:     ".50",
		5.98:    "5.98",
		1234.5:  "1,234.50",
		18068:   "18,068.00",
		-0.25:   "-.25",
		2375000: "2,375,000.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatMoney(in), "FormatMoney(%v)", in)
	}
}

func TestOrderItemStringSubUnitPrice(t *testing.T) {
	item, err := NewOrderItem(111033401, "Nut", 10, .5)
	require.NoError(t, err)
	assert.Equal(t, "111033401     10 Nut          at      .50 =       5.00", item.String())
}
