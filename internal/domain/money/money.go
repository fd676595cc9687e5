package money

import (
	"errors"
	"strconv"
)

var ErrNegativeAmount = errors.New("amount cannot be negative")

// Amount is a value in minor currency units.
type Amount int64

func New(minor int64) (Amount, error) {
	if minor < 0 {
		return 0, ErrNegativeAmount
	}
	return Amount(minor), nil
}

func (a Amount) Minor() int64 {
	return int64(a)
}

func (a Amount) Times(n int) Amount {
	return a * Amount(n)
}

func (a Amount) IsPositive() bool {
	return a > 0
}

func (a Amount) String() string {
	return strconv.FormatInt(int64(a), 10)
}
