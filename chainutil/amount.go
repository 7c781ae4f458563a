// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainutil

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Amount represents a non-negative monetary quantity at two-decimal
// precision, stored as an integer count of cents. Ground: the teacher's
// Amount int64 + round()/NewAmount() pattern (amount.go), rescaled from
// 1e-8 "Loki" units to 1e-2 cents per §3.
type Amount int64

// round converts a floating point number, which may or may not be
// representable as an integer, to the Amount integer type by rounding to
// the nearest integer, the same half-adjust trick the teacher's round()
// uses.
func round(f float64) Amount {
	if f < 0 {
		return Amount(f - 0.5)
	}
	return Amount(f + 0.5)
}

// NewAmount creates an Amount from a floating point value denominated in
// whole units (e.g. 5.00). It errors if f is negative, NaN, or infinite -
// a transaction amount per §3 is a non-negative rational.
func NewAmount(f float64) (Amount, error) {
	switch {
	case math.IsNaN(f):
		fallthrough
	case math.IsInf(f, 1):
		fallthrough
	case math.IsInf(f, -1):
		return 0, errors.New("invalid amount")
	case f < 0:
		return 0, errors.New("invalid amount: negative")
	}
	return round(f * CentsPerUnit), nil
}

// ToFloat converts the amount back to a whole-unit floating point value.
func (a Amount) ToFloat() float64 {
	return float64(a) / CentsPerUnit
}

// String formats the amount with exactly two decimal places, e.g. "5.00".
func (a Amount) String() string {
	return strconv.FormatFloat(a.ToFloat(), 'f', 2, 64)
}

// MarshalJSON renders the amount as a bare JSON number with two decimal
// places, matching the canonical transaction/reward serialisation of §6.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON parses a bare JSON number into an Amount, rounding to the
// nearest cent.
func (a *Amount) UnmarshalJSON(data []byte) error {
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("chainutil: invalid amount %q: %w", data, err)
	}
	parsed, err := NewAmount(f)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MulF64 multiplies an Amount by a floating point value, rounding to the
// nearest cent.
func (a Amount) MulF64(f float64) Amount {
	return round(float64(a) * f)
}
