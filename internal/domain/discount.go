package domain

import "strconv"

// The two discount predicates below gate the ticket and invoice
// discounts respectively. Both are pure functions over the customer's
// identity number.

// IsPerfectNumber reports whether n equals the sum of its proper
// divisors (6, 28, 496, ...).
func IsPerfectNumber(n int) bool {
	if n < 2 {
		return false
	}
	sum := 0
	for i := 1; i < n; i++ {
		if n%i == 0 {
			sum += i
		}
	}
	return sum == n
}

// IsVampireNumber reports whether n has an even digit count and some
// permutation of its digits splits into two halves whose product is n,
// with at most one half ending in zero (1260 = 21*60, 1395 = 15*93, ...).
func IsVampireNumber(n int) bool {
	digits := strconv.Itoa(n)
	if len(digits)%2 != 0 {
		return false
	}

	for _, combo := range permutations(digits) {
		mid := len(combo) / 2
		a, err := strconv.Atoi(combo[:mid])
		if err != nil {
			continue
		}
		b, err := strconv.Atoi(combo[mid:])
		if err != nil {
			continue
		}
		if a*b == n && !(a%10 == 0 && b%10 == 0) {
			return true
		}
	}
	return false
}

func permutations(s string) []string {
	if len(s) <= 1 {
		return []string{s}
	}
	var out []string
	for i := range s {
		head := string(s[i])
		rest := s[:i] + s[i+1:]
		for _, tail := range permutations(rest) {
			out = append(out, head+tail)
		}
	}
	return out
}
