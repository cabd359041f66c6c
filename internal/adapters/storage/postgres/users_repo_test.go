package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_username_key"}
	if !isUniqueViolation(unique) {
		t.Fatalf("unique violation not detected")
	}

	// También envuelto, como lo devuelve el driver en la práctica.
	if !isUniqueViolation(fmt.Errorf("exec insert: %w", unique)) {
		t.Fatalf("wrapped unique violation not detected")
	}

	if isUniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}) {
		t.Fatalf("foreign key violation misclassified")
	}
	if isUniqueViolation(errors.New("users_username_key mentioned in text only")) {
		t.Fatalf("plain error misclassified by message text")
	}
	if isUniqueViolation(nil) {
		t.Fatalf("nil error misclassified")
	}
}

func TestListRoundTrip(t *testing.T) {
	if got := joinList([]string{"Employee", "clients.create"}); got != "Employee,clients.create" {
		t.Fatalf("joinList = %q", got)
	}
	if got := splitList("Employee,clients.create"); len(got) != 2 || got[0] != "Employee" {
		t.Fatalf("splitList = %v", got)
	}
	if got := splitList(""); got != nil {
		t.Fatalf("empty list must be nil, got %v", got)
	}
	if got := joinList(nil); got != "" {
		t.Fatalf("joinList(nil) = %q", got)
	}
}
