// Package palindrome reports whether a phrase reads the same forwards and
// backwards once case is ignored and everything but letters and digits is
// dropped ("A man, a plan, a canal: Panama" is a palindrome).
//
// Four interchangeable strategies:
//
//   - IsPalindrome: two indices moving inward over runes, O(n) time, O(n) memory
//     for the rune slice.
//   - Recursive:    the same walk written recursively.
//   - CleanReverse: normalise into a new rune slice and compare it with its reverse.
//   - ASCII:        byte-level walk that only knows [A-Za-z0-9], O(1) memory.
//
// The first three use unicode.IsLetter/unicode.IsNumber and unicode.ToLower and
// agree on any valid UTF-8 input; ASCII agrees with them on ASCII input.
// The empty string and strings without letters or digits are palindromes.
package palindrome
