// Package unsafecast exposes functions to bypass the Go type system and
// reinterpret the memory of slices.
//
// The functions of this package are unsafe: the program must ensure that the
// memory being reinterpreted is valid for the target type, and that the
// original slice outlives the converted one.
package unsafecast

import "unsafe"

// Slice converts the data slice of type []From to a slice of type []To sharing
// the same backing array. The length and capacity of the returned slice are
// scaled according to the size difference between the two element types.
func Slice[To, From any](data []From) []To {
	var zf From
	var zt To
	size := unsafe.Sizeof(zf)
	into := unsafe.Sizeof(zt)
	return unsafe.Slice((*To)(unsafe.Pointer(unsafe.SliceData(data))), (uintptr(cap(data))*size)/into)[:(uintptr(len(data))*size)/into]
}

// Pointer returns the address of the first element of data, which may be nil
// for empty slices.
func Pointer[T any](data []T) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(data))
}
