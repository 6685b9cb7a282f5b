package main

import "strings"

const codeDigits = 4

// Score counts bulls (right digit, right position) and cows (right digit,
// wrong position) for a guess against a secret. Both inputs must already be
// validated 4-digit codes; secrets are digit-unique so the left-to-right
// scan cannot double count.
func Score(secret, guess string) (bulls, cows int) {
	for i := 0; i < codeDigits; i++ {
		if guess[i] == secret[i] {
			bulls++
		} else if strings.IndexByte(secret, guess[i]) >= 0 {
			cows++
		}
	}
	return bulls, cows
}

// IsValidCode reports whether s is exactly four ASCII digits, all distinct.
// Applied to secrets and guesses alike before any scoring happens.
func IsValidCode(s string) bool {
	if len(s) != codeDigits {
		return false
	}
	var seen [10]bool
	for i := 0; i < codeDigits; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		d := c - '0'
		if seen[d] {
			return false
		}
		seen[d] = true
	}
	return true
}
