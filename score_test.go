package main

import "testing"

func TestScore(t *testing.T) {
	cases := []struct {
		secret, guess string
		bulls, cows   int
	}{
		{"1234", "1234", 4, 0},
		{"1234", "4321", 0, 4},
		{"1234", "1243", 2, 2},
		{"1234", "5678", 0, 0},
		{"5678", "5678", 4, 0},
		{"1234", "1567", 1, 0},
		{"9072", "0972", 2, 2},
	}
	for _, c := range cases {
		bulls, cows := Score(c.secret, c.guess)
		if bulls != c.bulls || cows != c.cows {
			t.Errorf("Score(%q, %q) = (%d, %d), want (%d, %d)", c.secret, c.guess, bulls, cows, c.bulls, c.cows)
		}
		if bulls+cows > 4 {
			t.Errorf("Score(%q, %q): bulls+cows = %d, must not exceed 4", c.secret, c.guess, bulls+cows)
		}
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	b1, c1 := Score("1234", "1243")
	b2, c2 := Score("1234", "1243")
	if b1 != b2 || c1 != c2 {
		t.Errorf("same inputs scored differently: (%d, %d) vs (%d, %d)", b1, c1, b2, c2)
	}
}

func TestIsValidCode(t *testing.T) {
	cases := []struct {
		code  string
		valid bool
	}{
		{"1234", true},
		{"0987", true},
		{"123", false},
		{"12345", false},
		{"1123", false},
		{"12a4", false},
		{"12 4", false},
		{"", false},
		{"๑๒๓๔", false},
	}
	for _, c := range cases {
		if IsValidCode(c.code) != c.valid {
			t.Errorf("IsValidCode(%q) = %v, want %v", c.code, !c.valid, c.valid)
		}
	}
}
