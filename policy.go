package columnar

import (
	"strings"

	"github.com/pkg/errors"
)

// NullEquality configures whether two null values compare equal.
//
// Only null-null pairs are affected: a null value never equals a non-null
// value, whatever the policy.
type NullEquality int8

const (
	NullsEqual NullEquality = iota
	NullsUnequal
)

func (e NullEquality) String() string {
	switch e {
	case NullsEqual:
		return "EQUAL"
	case NullsUnequal:
		return "UNEQUAL"
	default:
		return "UNKNOWN"
	}
}

// NullPolicy configures whether null rows participate in single column
// distinct counts.
type NullPolicy int8

const (
	// IncludeNulls counts null rows like any other value; adjacent nulls
	// form a single group.
	IncludeNulls NullPolicy = iota
	// ExcludeNulls never counts null rows (nor NaN rows when combined with
	// NaNIsNull).
	ExcludeNulls
)

func (p NullPolicy) String() string {
	switch p {
	case IncludeNulls:
		return "INCLUDE"
	case ExcludeNulls:
		return "EXCLUDE"
	default:
		return "UNKNOWN"
	}
}

// NaNPolicy configures how NaN values of floating point columns are grouped
// in single column distinct counts.
type NaNPolicy int8

const (
	// NaNIsValue compares NaN values numerically, following IEEE 754: a NaN
	// never equals any value, itself included.
	NaNIsValue NaNPolicy = iota
	// NaNIsNull places NaN values in the same equivalence class as nulls.
	NaNIsNull
)

func (p NaNPolicy) String() string {
	switch p {
	case NaNIsValue:
		return "NAN_IS_VALUE"
	case NaNIsNull:
		return "NAN_IS_NULL"
	default:
		return "UNKNOWN"
	}
}

// OutOfBoundsPolicy configures how gather operations handle indices that fall
// outside of the range of their source.
type OutOfBoundsPolicy int8

const (
	// DontCheck leaves the elements gathered from out of range indices
	// unspecified.
	DontCheck OutOfBoundsPolicy = iota
	// Nullify sets the elements gathered from out of range indices to null.
	Nullify
)

func (p OutOfBoundsPolicy) String() string {
	switch p {
	case DontCheck:
		return "DONT_CHECK"
	case Nullify:
		return "NULLIFY"
	default:
		return "UNKNOWN"
	}
}

// ParseNullEquality parses "equal" or "unequal".
func ParseNullEquality(s string) (NullEquality, error) {
	switch normalizePolicyName(s) {
	case "equal", "nulls_equal":
		return NullsEqual, nil
	case "unequal", "nulls_unequal":
		return NullsUnequal, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown null equality %q", s)
}

// ParseNullPolicy parses "include" or "exclude".
func ParseNullPolicy(s string) (NullPolicy, error) {
	switch normalizePolicyName(s) {
	case "include", "include_nulls":
		return IncludeNulls, nil
	case "exclude", "exclude_nulls":
		return ExcludeNulls, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown null policy %q", s)
}

// ParseNaNPolicy parses "value" or "null" (with or without a "nan_is_" prefix).
func ParseNaNPolicy(s string) (NaNPolicy, error) {
	switch strings.TrimPrefix(normalizePolicyName(s), "nan_is_") {
	case "value":
		return NaNIsValue, nil
	case "null":
		return NaNIsNull, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown NaN policy %q", s)
}

// ParseOutOfBoundsPolicy parses "dont_check" or "nullify".
func ParseOutOfBoundsPolicy(s string) (OutOfBoundsPolicy, error) {
	switch normalizePolicyName(s) {
	case "dont_check", "dontcheck":
		return DontCheck, nil
	case "nullify":
		return Nullify, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown out of bounds policy %q", s)
}

func normalizePolicyName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "-", "_")
}

func (e NullEquality) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *NullEquality) UnmarshalText(b []byte) (err error) {
	*e, err = ParseNullEquality(string(b))
	return err
}

func (p NullPolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *NullPolicy) UnmarshalText(b []byte) (err error) {
	*p, err = ParseNullPolicy(string(b))
	return err
}

func (p NaNPolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *NaNPolicy) UnmarshalText(b []byte) (err error) {
	*p, err = ParseNaNPolicy(string(b))
	return err
}
