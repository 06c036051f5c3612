package palindrome_test

import (
	"fmt"

	"github.com/katalvlaran/twopointers/palindrome"
)

func ExampleIsPalindrome() {
	fmt.Println(palindrome.IsPalindrome("A man, a plan, a canal: Panama"))
	fmt.Println(palindrome.IsPalindrome("race a car"))
	// Output:
	// true
	// false
}
