// internal/adc/convert.go
package adc

// ToMillivolts maps a raw sample to a voltage:
//
//	(raw / 2^bits) * vref + offset
//
// The raw value is promoted to floating point before the division. A
// full-scale sample maps to vref*(1 - 2^-bits) + offset, never exactly
// vref + offset.
func ToMillivolts(raw uint32, bits uint, vrefMv, offsetMv float64) float64 {
	return float64(raw)/float64(uint64(1)<<bits)*vrefMv + offsetMv
}
