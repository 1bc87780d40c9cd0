// Package bignum implements arbitrary-precision integers on base 2^32 digits.
//
// Nat is an unsigned magnitude stored little-endian (least significant digit
// first) and always trimmed, so two equal values have identical digit
// sequences. Int pairs a Nat with a sign and keeps the invariant that the
// sign is Zero exactly when the magnitude is zero.
//
// Both types have value semantics. Every operation returns a fresh value and
// never shares digit storage with its operands, so values can be passed
// between goroutines without synchronization. Failures (underflow, division
// by zero, malformed input) are returned as errors wrapping the sentinels of
// the apperrors package; the operands are never modified.
//
// Division uses Knuth's Algorithm D (TAOCP vol. 2, §4.3.1) with a short
// division fast path for single-digit divisors. Multiplication is schoolbook.
// None of the operations run in constant time.
package bignum
