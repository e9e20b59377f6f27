package analysis

import "unicode/utf16"

// Hash folds s into a signed 32-bit integer with acc = code + (acc<<5) - acc,
// i.e. acc*31 + code with two's-complement wraparound. Characters are folded
// as UTF-16 code units, so a rune outside the BMP contributes two surrogates.
func Hash(s string) int32 {
	var acc int32
	for _, code := range utf16.Encode([]rune(s)) {
		acc = int32(code) + ((acc << 5) - acc)
	}
	return acc
}

// bounded maps h into [floor, floor+width) after an arithmetic right shift.
// The absolute value is taken in 64 bits so math.MinInt32 does not overflow.
func bounded(h int32, shift uint, floor, width int) int {
	v := int64(h >> shift)
	if v < 0 {
		v = -v
	}
	return floor + int(v%int64(width))
}
