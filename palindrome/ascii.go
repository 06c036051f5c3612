package palindrome

// ASCII is IsPalindrome restricted to bytes: only [A-Za-z0-9] count, and
// upper-case letters are folded by adding 32. Any other byte, including
// every byte of a multi-byte UTF-8 sequence, is skipped.
func ASCII(s string) bool {
	left, right := 0, len(s)-1
	for left < right {
		for left < right && !isAlnumASCII(s[left]) {
			left++
		}
		for left < right && !isAlnumASCII(s[right]) {
			right--
		}
		if lowerASCII(s[left]) != lowerASCII(s[right]) {
			return false
		}
		left++
		right--
	}

	return true
}

func isAlnumASCII(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}

	return c
}
