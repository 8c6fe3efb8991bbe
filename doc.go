/*
Package decint implements immutable arbitrary-precision integers stored
as decimal digits, together with the number-theoretic routines needed
for textbook RSA: greatest common divisor, modular inverse and modular
exponentiation.

# Representation

[Int] is a struct with two fields:

  - Sign: a boolean indicating whether the integer is negative.
  - Magnitude: a sequence of decimal digits, least significant digit first.
    For example, 1234 is stored as [4 3 2 1].

The magnitude never has leading zeros, so every value has exactly one
representation.
Zero is stored as the single digit 0 and is never negative.
The zero value of [Int] is 0.

# Conversions

The package provides methods for converting integers:

  - from/to decimal string:
    [Parse], [MustParse], [Int.String], [Int.Format].
  - from/to hexadecimal string:
    [ParseHex], [MustParseHex], [Int.Hex].
  - from/to int64:
    [New], [Int.Int64].

Hexadecimal strings use uppercase digits only, without a "0x" prefix.

# Operations

Arithmetic operations work digit by digit, the way it is done on paper:

  - [Int.Add] and [Int.Sub] propagate a carry or a borrow through the digits.
  - [Int.Mul] is the schoolbook product of every pair of digits.
  - [Int.QuoRem], [Int.Quo] and [Int.Rem] are long division.
    The dividend is consumed from its most significant digit, and each
    quotient digit is found by a binary search over 0..9.

Division truncates towards zero and the remainder takes the sign of
the dividend:

	| x  | y  | x / y | x % y |
	| -- | -- | ----- | ----- |
	|  7 |  3 |     2 |     1 |
	| -7 |  3 |    -2 |    -1 |
	|  7 | -3 |    -2 |     1 |
	| -7 | -3 |     2 |    -1 |

Modular routines return canonical residues instead:
[ModInverse] and [ModExp] always produce results in the range [0, m).

Comparison is available both for signed values ([Int.Cmp]) and for
magnitudes only ([Int.CmpAbs]).

# Errors

All methods are pure.
Errors are returned in the following cases:

  - Invalid Input.
    [Parse] and [ParseHex] return errors wrapping [ErrInvalidInt] and
    [ErrInvalidHex] for empty strings and unexpected characters.
    Input is never silently replaced by zero.

  - Division by Zero.
    Unlike the standard library, [Int.Quo], [Int.Rem], [Int.QuoRem], [ModInverse]
    and [ModExp] do not panic when dividing by 0.
    Instead, they return an error wrapping [ErrDivisionByZero].

  - No Inverse.
    [ModInverse] returns an error wrapping [ErrNoInverse] when its arguments
    are not coprime.

Use [errors.Is] to test for a particular kind of error.

[errors.Is]: https://pkg.go.dev/errors#Is
*/
package decint
