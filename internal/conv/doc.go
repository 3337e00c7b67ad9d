// Package conv provides checked integer conversions.
//
// They guard values decoded from untrusted input (encoded bit counts, frame
// lengths) before they are used to size buffers. Conversions that are safe by
// construction use plain casts instead.
package conv
