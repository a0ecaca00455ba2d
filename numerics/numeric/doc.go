// Package numeric describes the integer representations a safe value can use.
//
// A Kind names one fixed-width representation (int8 through uint64) together
// with its range. A Value is an exact integer held in sign-magnitude form so
// that values of any kind, signed or unsigned, compare and combine without
// conversion loss.
//
// Kinds are always derived from Go types, never from values:
//
//	numeric.KindOf[int16]() // numeric.Int16
package numeric
