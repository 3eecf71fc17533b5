package core

import "testing"

func TestValidIdentity(t *testing.T) {
	valid := []string{"abc", "Abc", "a12", "Zz9", "abcdefghij123456"}
	for _, s := range valid {
		if !ValidIdentity(s) {
			t.Errorf("ValidIdentity(%q) = false, want true", s)
		}
	}

	invalid := []string{
		"",
		"ab",                // too short
		"abcdefghij1234567", // too long
		"1abc",              // starts with a digit
		"_abc",              // non-alphanumeric start
		"ab c",              // space
		"ab-c",              // punctuation
		"abç",               // non-ASCII
	}
	for _, s := range invalid {
		if ValidIdentity(s) {
			t.Errorf("ValidIdentity(%q) = true, want false", s)
		}
	}
}

func TestValidRoomID(t *testing.T) {
	long32 := "a2345678901234567890123456789012"
	if !ValidRoomID(long32) {
		t.Errorf("ValidRoomID(%q) = false, want true", long32)
	}
	if ValidRoomID(long32 + "3") {
		t.Errorf("33-char room id accepted")
	}
	if ValidRoomID("1abc") || ValidRoomID("ab") {
		t.Errorf("malformed room id accepted")
	}
	if !ValidRoomID(MainHallID) {
		t.Errorf("MainHall must be a valid room id")
	}
}

func TestIdentityRegistryRegisterRenameRelease(t *testing.T) {
	ir := NewIdentityRegistry("guest")

	if err := ir.Register("alice"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := ir.Register("alice"); err != ErrIdentityTaken {
		t.Fatalf("duplicate register: %v, want ErrIdentityTaken", err)
	}
	if err := ir.Register("9bad"); err != ErrInvalidIdentity {
		t.Fatalf("invalid register: %v, want ErrInvalidIdentity", err)
	}

	if err := ir.Rename("alice", "alicia"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if ir.Has("alice") || !ir.Has("alicia") {
		t.Fatalf("rename did not replace the identity")
	}

	// A failed rename leaves the old identity registered.
	if err := ir.Register("bob"); err != nil {
		t.Fatalf("register bob: %v", err)
	}
	if err := ir.Rename("alicia", "bob"); err != ErrIdentityTaken {
		t.Fatalf("rename onto taken: %v, want ErrIdentityTaken", err)
	}
	if !ir.Has("alicia") {
		t.Fatalf("failed rename dropped the old identity")
	}

	ir.Release("alicia")
	if ir.Has("alicia") {
		t.Fatalf("release did not remove the identity")
	}
}

func TestNextGuestSkipsTakenNames(t *testing.T) {
	ir := NewIdentityRegistry("guest")

	if got := ir.NextGuest(); got != "guest1" {
		t.Fatalf("first guest = %s, want guest1", got)
	}

	// A user grabbed the next number; the sequence walks past it.
	if err := ir.Register("guest2"); err != nil {
		t.Fatalf("register guest2: %v", err)
	}
	if got := ir.NextGuest(); got != "guest3" {
		t.Fatalf("next guest = %s, want guest3", got)
	}

	// Released numbers are never reissued.
	ir.Release("guest3")
	if got := ir.NextGuest(); got != "guest4" {
		t.Fatalf("next guest = %s, want guest4", got)
	}
}
