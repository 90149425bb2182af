// Package perthing provides fixed-point fractions with integer-only rounding.
package perthing

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// BillionUnit is the scale of a Perbill.
	BillionUnit = big.NewInt(1_000_000_000)
	// HundredUnit is the scale of a Percent.
	HundredUnit = big.NewInt(100)

	// ErrZeroDenominator is returned when a fraction is built with a zero denominator.
	ErrZeroDenominator = errors.New("perthing: zero denominator")
)

// Perthing is an immutable fraction parts/unit.
type Perthing struct {
	parts *big.Int
	unit  *big.Int
}

// Perbill returns a fraction of 10^9 from an already scaled numerator.
func Perbill(parts *big.Int) Perthing {
	return newPerthing(parts, BillionUnit)
}

// Percent returns a fraction of 100 from an already scaled numerator.
func Percent(parts *big.Int) Perthing {
	return newPerthing(parts, HundredUnit)
}

// PerbillFromRational returns numerator/denominator scaled to 10^9.
func PerbillFromRational(numerator, denominator *big.Int) (Perthing, error) {
	return fromRational(numerator, denominator, BillionUnit)
}

// PercentFromRational returns numerator/denominator scaled to 100.
func PercentFromRational(numerator, denominator *big.Int) (Perthing, error) {
	return fromRational(numerator, denominator, HundredUnit)
}

func newPerthing(parts, unit *big.Int) Perthing {
	p := new(big.Int)
	if parts != nil {
		p.Set(parts)
	}
	return Perthing{parts: p, unit: unit}
}

func fromRational(numerator, denominator, unit *big.Int) (Perthing, error) {
	if denominator == nil || denominator.Sign() == 0 {
		return Perthing{}, ErrZeroDenominator
	}
	n := new(big.Int)
	if numerator != nil {
		n.Mul(numerator, unit)
	}
	return Perthing{parts: DivNearest(n, denominator), unit: unit}, nil
}

// Parts returns a copy of the scaled numerator.
func (p Perthing) Parts() *big.Int {
	if p.parts == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(p.parts)
}

// Unit returns a copy of the scale.
func (p Perthing) Unit() *big.Int {
	if p.unit == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(p.unit)
}

// Of returns value*parts/unit rounded with DivNearest.
func (p Perthing) Of(value *big.Int) *big.Int {
	if p.parts == nil || p.unit == nil || value == nil {
		return new(big.Int)
	}
	product := new(big.Int).Mul(p.parts, value)
	return DivNearest(product, p.unit)
}

// Complement returns unit-parts on the same scale.
func (p Perthing) Complement() Perthing {
	return Perthing{parts: new(big.Int).Sub(p.Unit(), p.Parts()), unit: p.unit}
}

func (p Perthing) String() string {
	return fmt.Sprintf("%s/%s", p.Parts(), p.Unit())
}

// DivNearest divides a by b rounding half up in magnitude, keeping the sign of the quotient.
// b must not be zero.
func DivNearest(a, b *big.Int) *big.Int {
	quo, rem := new(big.Int).QuoRem(a, b, new(big.Int))
	if rem.Sign() == 0 {
		return quo
	}

	absRem := new(big.Int).Abs(rem)
	absDen := new(big.Int).Abs(b)
	half := new(big.Int).Rsh(absDen, 1)
	odd := absDen.Bit(0) == 1

	cmp := absRem.Cmp(half)
	if cmp < 0 || (cmp == 0 && odd) {
		return quo
	}

	if a.Sign()*b.Sign() < 0 {
		return quo.Sub(quo, big.NewInt(1))
	}
	return quo.Add(quo, big.NewInt(1))
}
