package kernel

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	apperrors "github.com/ahouts/redis-bigint/errors"
)

// ParseRadix converts a raw radix argument. Values outside the unsigned
// 32 bit range and values outside [MinRadix, MaxRadix] are radix errors.
func ParseRadix(arg string) (int, error) {
	radix, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, apperrors.WrapError(apperrors.CodeArgumentParse, "radix is not an integer or out of range", err)
	}
	if err := CheckRadix(radix); err != nil {
		return 0, err
	}
	return int(radix), nil
}

func CheckRadix(radix int64) error {
	if radix < 0 || radix > math.MaxUint32 {
		return apperrors.NewError(apperrors.CodeRadix,
			"invalid radix provided, must fit in an unsigned 32 bit integer")
	}
	if radix < MinRadix || radix > MaxRadix {
		return apperrors.NewError(apperrors.CodeRadix,
			fmt.Sprintf("invalid radix provided, must be between %d and %d", MinRadix, MaxRadix))
	}
	return nil
}

// Parse reads a signed integer literal written in the given radix.
// An optional leading '+' or '-' is accepted; prefixes and separators are not.
func Parse(text string, radix int) (BigInt, error) {
	if err := CheckRadix(int64(radix)); err != nil {
		return nil, err
	}

	switch text {
	case "":
		return nil, apperrors.NewError(apperrors.CodeParse,
			"error while parsing input: cannot parse integer from empty string")
	case "+", "-":
		return nil, apperrors.NewError(apperrors.CodeParse,
			"error while parsing input: sign without digits")
	}

	res, ok := new(big.Int).SetString(text, radix)
	if !ok {
		return nil, apperrors.NewError(apperrors.CodeParse,
			fmt.Sprintf("error while parsing input: invalid digit found in string for radix %d", radix))
	}

	return (*BigIntT)(res), nil
}

// Format renders x in the given radix with lowercase digits, a leading '-'
// for negative values and no padding.
func Format(x BigInt, radix int) (string, error) {
	if err := CheckRadix(int64(radix)); err != nil {
		return "", err
	}
	return x.Text(radix), nil
}
