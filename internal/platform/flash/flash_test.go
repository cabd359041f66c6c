package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// carry copia las cookies de una respuesta al request siguiente, como
// haría el browser.
func carry(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge >= 0 {
			r.AddCookie(c)
		}
	}
	return r
}

func TestAddAndPop(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", nil)

	Success(rec, r, "Client created.")

	next := carry(t, rec)
	rec2 := httptest.NewRecorder()
	msgs := Pop(rec2, next)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages", len(msgs))
	}
	if msgs[0].Level != LevelSuccess || msgs[0].Text != "Client created." {
		t.Fatalf("unexpected message: %+v", msgs[0])
	}

	// Pop limpia: la cookie resultante está vencida.
	cleared := false
	for _, c := range rec2.Result().Cookies() {
		if c.Name == cookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("flash cookie not cleared after pop")
	}
}

func TestAccumulatesWithinRequest(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", nil)

	Error(rec, r, "first")

	// El segundo mensaje del mismo request ve al primero vía la request
	// cookie, así que se simula el carry intermedio.
	next := carry(t, rec)
	rec2 := httptest.NewRecorder()
	Success(rec2, next, "second")

	msgs := Pop(httptest.NewRecorder(), carry(t, rec2))
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[0].Text != "first" || msgs[1].Text != "second" {
		t.Fatalf("order lost: %+v", msgs)
	}
}

func TestPop_Empty(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if msgs := Pop(rec, r); msgs != nil {
		t.Fatalf("expected nil, got %+v", msgs)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("no cookie should be written when nothing is pending")
	}
}

func TestPeek_GarbageCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: cookieName, Value: "%%%not-base64%%%"})
	if msgs := Pop(httptest.NewRecorder(), r); msgs != nil {
		t.Fatalf("garbage cookie must decode to nothing, got %+v", msgs)
	}
}
