package utils

import "testing"

func TestPasswordRoundTrip(t *testing.T) {
	h := HashPassword("hunter2")
	if h == "" || h == "hunter2" {
		t.Fatalf("hash looks wrong: %q", h)
	}
	if !CheckPassword("hunter2", h) {
		t.Fatal("correct password rejected")
	}
	if CheckPassword("hunter3", h) {
		t.Fatal("wrong password accepted")
	}
}

func TestHashesAreSalted(t *testing.T) {
	if HashPassword("same") == HashPassword("same") {
		t.Fatal("two hashes of the same input should differ")
	}
}
