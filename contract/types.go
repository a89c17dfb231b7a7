package contract

import "strconv"

// Amount is a whole-unit token amount. It is signed on purpose: donations are not
// validated, so a negative amount is stored as given. Totals use plain int64 addition
// and wrap on overflow; a wrapped total still equals the int64 sum of its parts.
type Amount int64

// String renders the amount as plain decimal.
func (a Amount) String() string {
	return strconv.FormatInt(int64(a), 10)
}

// ParseAmount reads a decimal amount from a payload field.
func ParseAmount(s string) (Amount, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return Amount(v), nil
}
