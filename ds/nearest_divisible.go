package ds

import (
	"fmt"
)

// NearestDivisibleByM returns the smallest number that is at least n and
// divisible by m. Aligning a cursor at offset 37 to a 256-byte record
// stride is NearestDivisibleByM(37, 256) = 256.
func NearestDivisibleByM(n int, m int) int {
	for i := n; i < n+m; i++ {
		if i%m == 0 {
			return i
		}
	}

	err := fmt.Errorf(
		`NearestDivisibleByM unreachable code with n = %d and m = %d`,
		n, m,
	)
	panic(err)
}
