package forms

import (
	"net/url"
	"strings"
	"testing"
)

func TestErrors(t *testing.T) {
	e := Errors{}
	if !e.Ok() {
		t.Fatalf("empty Errors must be Ok")
	}

	e.Add("name", "This field is required.")
	e.Add("name", "Too long.")
	if e.Ok() || !e.Has("name") {
		t.Fatalf("errors not recorded: %v", e)
	}
	if len(e["name"]) != 2 {
		t.Fatalf("messages not accumulated: %v", e["name"])
	}
	if e.Has("other") {
		t.Fatalf("Has must be false for clean fields")
	}
}

func TestTrimmed(t *testing.T) {
	v := url.Values{"city": {"  Springfield  "}}
	if got := Trimmed(v, "city"); got != "Springfield" {
		t.Fatalf("Trimmed = %q", got)
	}
	if got := Trimmed(v, "missing"); got != "" {
		t.Fatalf("missing key = %q", got)
	}
}

func TestMaxLen_CountsRunes(t *testing.T) {
	e := Errors{}
	MaxLen(e, "name", strings.Repeat("ñ", 50), 50)
	if e.Has("name") {
		t.Fatalf("50 runes within a 50 limit must pass")
	}
	MaxLen(e, "name", strings.Repeat("a", 51), 50)
	if !e.Has("name") {
		t.Fatalf("51 characters must fail a 50 limit")
	}
}

func TestEmail(t *testing.T) {
	ok := []string{"a@b.co", "ana.perez@example.com"}
	bad := []string{"not-an-email", "@example.com", "a@b", "a@b.", "a b@c.co"}

	for _, v := range ok {
		e := Errors{}
		Email(e, "email", v)
		if e.Has("email") {
			t.Errorf("%q rejected", v)
		}
	}
	for _, v := range bad {
		e := Errors{}
		Email(e, "email", v)
		if !e.Has("email") {
			t.Errorf("%q accepted", v)
		}
	}

	// Vacío lo maneja Required, no Email.
	e := Errors{}
	Email(e, "email", "")
	if e.Has("email") {
		t.Fatalf("empty value is Required's problem")
	}
}

func TestChoice(t *testing.T) {
	allowed := []string{"Dog", "Cat", "Other"}

	e := Errors{}
	Choice(e, "species", "Cat", allowed)
	if e.Has("species") {
		t.Fatalf("valid choice rejected")
	}

	Choice(e, "species", "Dragon", allowed)
	if !e.Has("species") {
		t.Fatalf("invalid choice accepted")
	}
}
