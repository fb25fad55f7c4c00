package fixedpoint

import (
	"fmt"
	"math/big"
	"strings"
)

// FormatError reports malformed numeric input to the normalizer.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid fixed-point quantity %q: %s", e.Input, e.Reason)
}

// Value is a non-negative on-chain quantity stored as an arbitrary-precision
// integer. Amounts routinely exceed float64 precision, so all exact
// renderings go through big.Int; floats appear only in the display helpers.
type Value struct {
	raw *big.Int
}

// Parse reads a raw base-10 integer quantity as delivered by the ledger.
func Parse(s string) (Value, error) {
	if s == "" {
		return Value{}, &FormatError{Input: s, Reason: "empty"}
	}
	raw, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Value{}, &FormatError{Input: s, Reason: "not a base-10 integer"}
	}
	if raw.Sign() < 0 {
		return Value{}, &FormatError{Input: s, Reason: "negative"}
	}
	return Value{raw: raw}, nil
}

// FromUint64 builds a Value from an already-decoded integer.
func FromUint64(u uint64) Value {
	return Value{raw: new(big.Int).SetUint64(u)}
}

// Float returns the approximate display value of the raw integer.
func (v Value) Float() float64 {
	if v.raw == nil {
		return 0
	}
	f, _ := new(big.Float).SetInt(v.raw).Float64()
	return f
}

// String returns the exact raw integer string.
func (v Value) String() string {
	if v.raw == nil {
		return "0"
	}
	return v.raw.String()
}

// DecimalString renders value / 10^decimals exactly, always with `decimals`
// fraction digits ("1000000" at 6 decimals is "1.000000").
func (v Value) DecimalString(decimals uint8) string {
	raw := v.raw
	if raw == nil {
		raw = new(big.Int)
	}
	if decimals == 0 {
		return raw.String()
	}
	quo, rem := new(big.Int).QuoRem(raw, pow10(decimals), new(big.Int))
	frac := rem.String()
	if pad := int(decimals) - len(frac); pad > 0 {
		frac = strings.Repeat("0", pad) + frac
	}
	return quo.String() + "." + frac
}

// Scaled returns the approximate display value of value / 10^decimals.
func (v Value) Scaled(decimals uint8) float64 {
	if v.raw == nil {
		return 0
	}
	f := new(big.Float).SetInt(v.raw)
	f.Quo(f, new(big.Float).SetInt(pow10(decimals)))
	out, _ := f.Float64()
	return out
}

func pow10(decimals uint8) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
}
