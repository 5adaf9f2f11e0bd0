package model

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// FormatUint256 renders v in base 10; nil renders as "0".
func FormatUint256(v *uint256.Int) string {
	if v == nil {
		return "0"
	}
	return v.ToBig().String()
}

// ParseUint256 parses a base-10 unsigned integer that must fit in 256 bits.
func ParseUint256(s string) (*uint256.Int, error) {
	if s == "" {
		return new(uint256.Int), nil
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	if b.Sign() < 0 {
		return nil, fmt.Errorf("negative value %q", s)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return nil, fmt.Errorf("value %q overflows 256 bits", s)
	}
	return v, nil
}

// ParseDecimal parses s, treating an empty string as zero.
func ParseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	return d, nil
}
