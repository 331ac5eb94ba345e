package document

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Document interface {
	GetID() int
}

func ToDecimal128(d decimal.Decimal) primitive.Decimal128 {
	value, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.NewDecimal128(0, 0)
	}
	return value
}

func FromDecimal128(value primitive.Decimal128) decimal.Decimal {
	d, err := decimal.NewFromString(value.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}
