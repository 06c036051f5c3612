package palindrome

import "unicode"

// IsPalindrome walks two indices inward, skipping runes that are neither
// letters nor digits and comparing the rest case-insensitively.
func IsPalindrome(s string) bool {
	r := []rune(s)
	left, right := 0, len(r)-1
	for left < right {
		for left < right && !isAlnum(r[left]) {
			left++
		}
		for left < right && !isAlnum(r[right]) {
			right--
		}
		if !equalFold(r[left], r[right]) {
			return false
		}
		left++
		right--
	}

	return true
}

// Recursive is IsPalindrome expressed as a recursive walk. Recursion depth is
// at most half the number of runes.
func Recursive(s string) bool {
	r := []rune(s)

	var walk func(left, right int) bool
	walk = func(left, right int) bool {
		for left < right && !isAlnum(r[left]) {
			left++
		}
		for left < right && !isAlnum(r[right]) {
			right--
		}
		if left >= right {
			return true
		}
		if !equalFold(r[left], r[right]) {
			return false
		}

		return walk(left+1, right-1)
	}

	return walk(0, len(r)-1)
}

// CleanReverse keeps only lower-cased letters and digits, then compares the
// result with its reverse.
func CleanReverse(s string) bool {
	clean := make([]rune, 0, len(s))
	for _, c := range s {
		if isAlnum(c) {
			clean = append(clean, unicode.ToLower(c))
		}
	}
	for i, j := 0, len(clean)-1; i < j; i, j = i+1, j-1 {
		if clean[i] != clean[j] {
			return false
		}
	}

	return true
}

// isAlnum accepts letters and every numeric rune (decimal digits, but also
// superscripts, fractions and Roman numerals).
func isAlnum(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsNumber(c)
}

func equalFold(a, b rune) bool {
	return unicode.ToLower(a) == unicode.ToLower(b)
}
