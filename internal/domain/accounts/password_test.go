package accounts

import "testing"

func TestValidatePassword_RejectsEntirelyNumeric(t *testing.T) {
	msgs := ValidatePassword("12345678")
	if len(msgs) == 0 {
		t.Fatalf("expected violations for entirely numeric password")
	}

	found := false
	for _, m := range msgs {
		if m == "This password is entirely numeric." {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected numeric violation, got %v", msgs)
	}
}

func TestValidatePassword_RejectsTooShort(t *testing.T) {
	if msgs := ValidatePassword("abc12"); len(msgs) == 0 {
		t.Fatalf("expected violation for short password")
	}
}

func TestValidatePassword_RejectsCommon(t *testing.T) {
	// El match es case-insensitive.
	if msgs := ValidatePassword("QwErTy123"); len(msgs) == 0 {
		t.Fatalf("expected violation for common password")
	}
}

func TestValidatePassword_RejectsSimilarToProfile(t *testing.T) {
	msgs := ValidatePassword("frodobaggins", "frodo", "Frodo", "Baggins", "frodo@shire.example")
	if len(msgs) == 0 {
		t.Fatalf("expected violation for password similar to profile")
	}

	// La parte local del email también cuenta.
	msgs = ValidatePassword("xfrodo99x", "someone", "", "", "frodo@shire.example")
	if len(msgs) == 0 {
		t.Fatalf("expected violation for password containing email local part")
	}
}

func TestValidatePassword_AcceptsStrong(t *testing.T) {
	if msgs := ValidatePassword("Tr0ub4dor&3", "frodo", "Frodo", "Baggins", "frodo@shire.example"); len(msgs) != 0 {
		t.Fatalf("expected no violations, got %v", msgs)
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Tr0ub4dor&3")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "Tr0ub4dor&3" {
		t.Fatalf("hash must not equal plaintext")
	}

	if !CheckPassword(hash, "Tr0ub4dor&3") {
		t.Fatalf("expected password to verify")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Fatalf("expected wrong password to fail")
	}
}
