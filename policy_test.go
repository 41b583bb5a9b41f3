package columnar_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/segmentio/columnar"
)

func TestParsePolicies(t *testing.T) {
	tests := []struct {
		input string
		parse func(string) (fmt.Stringer, error)
		want  fmt.Stringer
	}{
		{"equal", parseNullEquality, columnar.NullsEqual},
		{"UNEQUAL", parseNullEquality, columnar.NullsUnequal},
		{"nulls-equal", parseNullEquality, columnar.NullsEqual},
		{"include", parseNullPolicy, columnar.IncludeNulls},
		{" Exclude ", parseNullPolicy, columnar.ExcludeNulls},
		{"value", parseNaNPolicy, columnar.NaNIsValue},
		{"nan-is-null", parseNaNPolicy, columnar.NaNIsNull},
		{"NAN_IS_VALUE", parseNaNPolicy, columnar.NaNIsValue},
		{"dont-check", parseOutOfBoundsPolicy, columnar.DontCheck},
		{"nullify", parseOutOfBoundsPolicy, columnar.Nullify},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := test.parse(test.input)
			if err != nil {
				t.Fatal(err)
			}
			if got != test.want {
				t.Errorf("want=%s got=%s", test.want, got)
			}
			// The names returned by String must parse back to the same value.
			again, err := test.parse(got.String())
			if err != nil {
				t.Fatal(err)
			}
			if again != got {
				t.Errorf("%s does not parse back to itself: %s", got, again)
			}
		})
	}
}

func TestParsePoliciesErrors(t *testing.T) {
	for _, parse := range []func(string) (fmt.Stringer, error){
		parseNullEquality,
		parseNullPolicy,
		parseNaNPolicy,
		parseOutOfBoundsPolicy,
	} {
		if _, err := parse("whatever"); !errors.Is(err, columnar.ErrInvalidArgument) {
			t.Errorf("wrong error: %v", err)
		}
	}
}

func TestPolicyUnmarshalText(t *testing.T) {
	var p columnar.NaNPolicy
	if err := p.UnmarshalText([]byte("null")); err != nil {
		t.Fatal(err)
	}
	if p != columnar.NaNIsNull {
		t.Errorf("want=%s got=%s", columnar.NaNIsNull, p)
	}
	b, _ := p.MarshalText()
	if string(b) != "NAN_IS_NULL" {
		t.Errorf("wrong text: %q", b)
	}
}

func TestParseKind(t *testing.T) {
	for _, test := range []struct {
		input string
		want  columnar.Kind
	}{
		{"int32", columnar.Int32},
		{"INT64", columnar.Int64},
		{"int", columnar.Int64},
		{"float64", columnar.Double},
		{"string", columnar.ByteArray},
		{"BYTE_ARRAY", columnar.ByteArray},
		{"Uuid", columnar.UUID},
	} {
		got, err := columnar.ParseKind(test.input)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("%q: want=%s got=%s", test.input, test.want, got)
		}
	}

	if _, err := columnar.ParseKind("decimal"); !errors.Is(err, columnar.ErrInvalidKind) {
		t.Errorf("wrong error: %v", err)
	}
}

func parseNullEquality(s string) (fmt.Stringer, error) { return columnar.ParseNullEquality(s) }

func parseNullPolicy(s string) (fmt.Stringer, error) { return columnar.ParseNullPolicy(s) }

func parseNaNPolicy(s string) (fmt.Stringer, error) { return columnar.ParseNaNPolicy(s) }

func parseOutOfBoundsPolicy(s string) (fmt.Stringer, error) {
	return columnar.ParseOutOfBoundsPolicy(s)
}
