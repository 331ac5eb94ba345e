package domain

import (
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
)

type ID int

func ParseID(raw string) (ID, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return ID(id), true
}

func (id ID) String() string {
	return strconv.Itoa(int(id))
}

// LineTotal is the price of quantity units at unitPrice.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

var ErrInvalidQuantity = errors.New("quantity must not be negative")

type Event interface {
	GetName() string
	GetEntityName() string
}
