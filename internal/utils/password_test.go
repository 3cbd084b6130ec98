package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash equals plaintext")
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}

func TestVerifyPasswordRejectsBadHash(t *testing.T) {
	if VerifyPassword("not-a-bcrypt-hash", "anything") {
		t.Error("malformed hash accepted")
	}
}

func TestNormalizeCost(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, bcrypt.DefaultCost},
		{-3, bcrypt.DefaultCost},
		{bcrypt.MinCost - 1, bcrypt.MinCost},
		{bcrypt.MinCost, bcrypt.MinCost},
		{10, 10},
		{bcrypt.MaxCost, bcrypt.MaxCost},
		{bcrypt.MaxCost + 5, bcrypt.MaxCost},
	}
	for _, tc := range cases {
		if got := normalizeCost(tc.in); got != tc.want {
			t.Errorf("normalizeCost(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestHashPasswordSurvivesBadCost(t *testing.T) {
	// A misconfigured cost must not break signup.
	hash, err := HashPassword("s3cret", -1)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Error("correct password rejected")
	}
}
