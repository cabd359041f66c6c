package accounts

import (
	"net/url"
	"testing"
)

func validRegisterValues() url.Values {
	return url.Values{
		"username":   {"frodo"},
		"first_name": {"Frodo"},
		"last_name":  {"Baggins"},
		"email":      {"frodo@shire.example"},
		"password1":  {"Tr0ub4dor&3"},
		"password2":  {"Tr0ub4dor&3"},
	}
}

func TestParseRegisterForm_Valid(t *testing.T) {
	f, e := ParseRegisterForm(validRegisterValues())
	if !e.Ok() {
		t.Fatalf("unexpected errors: %v", e)
	}
	if f.Username != "frodo" || f.Email != "frodo@shire.example" {
		t.Fatalf("unexpected form: %+v", f)
	}
}

func TestParseRegisterForm_RequiredFields(t *testing.T) {
	_, e := ParseRegisterForm(url.Values{})
	for _, field := range []string{"username", "first_name", "last_name", "email", "password1", "password2"} {
		if !e.Has(field) {
			t.Errorf("missing required error for %q", field)
		}
	}
}

func TestParseRegisterForm_UsernameCharset(t *testing.T) {
	v := validRegisterValues()
	v.Set("username", "frodo baggins")
	if _, e := ParseRegisterForm(v); !e.Has("username") {
		t.Fatalf("expected charset error for username with space")
	}

	// @ . + - _ sí están permitidos.
	v.Set("username", "frodo.baggins@shire+1_-")
	if _, e := ParseRegisterForm(v); e.Has("username") {
		t.Fatalf("unexpected error for allowed characters: %v", e["username"])
	}
}

func TestParseRegisterForm_PasswordPolicy(t *testing.T) {
	v := validRegisterValues()
	v.Set("password1", "12345678")
	v.Set("password2", "12345678")
	if _, e := ParseRegisterForm(v); !e.Has("password1") {
		t.Fatalf("expected policy error for numeric password")
	}

	// La política recibe el perfil: parecido al username se rechaza.
	v = validRegisterValues()
	v.Set("password1", "frodo12345")
	v.Set("password2", "frodo12345")
	if _, e := ParseRegisterForm(v); !e.Has("password1") {
		t.Fatalf("expected similarity error")
	}
}

func TestParseRegisterForm_PasswordMismatch(t *testing.T) {
	v := validRegisterValues()
	v.Set("password2", "Tr0ub4dor&4")
	if _, e := ParseRegisterForm(v); !e.Has("password2") {
		t.Fatalf("expected mismatch error on password2")
	}
}

func TestParseDeleteForm(t *testing.T) {
	_, e := ParseDeleteForm(url.Values{})
	if !e.Has("password") || !e.Has("confirm_password") {
		t.Fatalf("expected required errors, got %v", e)
	}

	f, e := ParseDeleteForm(url.Values{"password": {"a"}, "confirm_password": {"b"}})
	if !e.Ok() {
		t.Fatalf("presence-only validation, got %v", e)
	}
	if f.Password != "a" || f.Confirm != "b" {
		t.Fatalf("unexpected form: %+v", f)
	}
}
