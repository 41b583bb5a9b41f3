// Package quick implements property checks over slices holding runs of
// repeated values.
package quick

import (
	"fmt"
	"math/rand"
	"reflect"
	"strconv"
)

// Check is inspired by the standard quick.Check package, but tests slices of
// larger sizes than the maximum of 50 hardcoded in testing/quick.
//
// f must be a function taking a single slice argument and returning a bool.
// The values of the slices are drawn from a domain of about a quarter of their
// size, so sorting them produces runs of equal values.
func Check(f interface{}) error {
	v := reflect.ValueOf(f)
	t := v.Type().In(0)
	r := rand.New(rand.NewSource(0))

	set := setterOf(t.Elem())
	if set == nil {
		panic("cannot run quick check on function with input of type " + t.String())
	}

	for _, n := range [...]int{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
		10, 11, 12, 13, 14, 15, 16, 17, 18, 19,
		20, 21, 22, 23, 24, 25, 26, 27, 28, 29,
		30, 31, 32, 33, 34, 35, 36, 37, 38, 39,
		99, 100, 101,
		127, 128, 129,
		255, 256, 257,
		1000, 1023, 1024, 1025,
		2000, 2095, 2048, 2049,
		4000, 4095, 4096, 4097,
	} {
		for i := 0; i < 3; i++ {
			in := reflect.MakeSlice(t, n, n)
			domain := n/4 + 1
			for j := 0; j < n; j++ {
				set(in.Index(j), r.Intn(domain))
			}
			ok := v.Call([]reflect.Value{in})
			if !ok[0].Bool() {
				return fmt.Errorf("test #%d: failed on input of size %d: %#v", i+1, n, in.Interface())
			}
		}
	}
	return nil
}

// setterOf returns a function assigning a value derived from x to values of
// type t. Distinct values of x produce distinct values, except for booleans.
func setterOf(t reflect.Type) func(reflect.Value, int) {
	switch t.Kind() {
	case reflect.Bool:
		return func(v reflect.Value, x int) { v.SetBool(x%2 != 0) }

	case reflect.Int32, reflect.Int64:
		return func(v reflect.Value, x int) { v.SetInt(int64(x)) }

	case reflect.Uint32, reflect.Uint64:
		return func(v reflect.Value, x int) { v.SetUint(uint64(x)) }

	case reflect.Float32, reflect.Float64:
		return func(v reflect.Value, x int) { v.SetFloat(float64(x) / 2) }

	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return func(v reflect.Value, x int) { v.SetBytes([]byte(strconv.Itoa(x))) }
		}

	case reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 && t.Len() == 16 {
			return func(v reflect.Value, x int) {
				for i := 0; i < 8; i++ {
					v.Index(15 - i).SetUint(uint64(x>>(8*i)) & 0xFF)
				}
			}
		}
	}
	return nil
}
