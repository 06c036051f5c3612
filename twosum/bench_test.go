package twosum_test

import (
	"testing"

	"github.com/katalvlaran/twopointers/twosum"
)

// worstCase places the only answer at the last two positions.
func worstCase(n int) ([]int, int) {
	nums := make([]int, n)
	for i := range nums {
		nums[i] = i * 2
	}
	nums[n-2], nums[n-1] = -1, -2

	return nums, -3
}

func BenchmarkTwoSum_10K(b *testing.B) {
	nums, target := worstCase(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = twosum.TwoSum(nums, target)
	}
}

func BenchmarkSorted_10K(b *testing.B) {
	nums, target := worstCase(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = twosum.Sorted(nums, target)
	}
}

func BenchmarkBruteForce_1K(b *testing.B) {
	nums, target := worstCase(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = twosum.BruteForce(nums, target)
	}
}
