package accounts

import (
	"context"
	"net/http"
	"time"
)

type ctxKey string

const userKey ctxKey = "user"

// SessionCookieName es la cookie de sesión del registro.
const SessionCookieName = "registry_session"

// SessionContext resuelve la cookie de sesión y deja el usuario en el
// contexto. Si no hay sesión (o está vencida) el request sigue igual;
// los guards de cada handler deciden si exigen auth.
func SessionContext(svc *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(SessionCookieName)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			u, err := svc.UserFromSession(r.Context(), c.Value)
			if err != nil {
				// Sesión inválida: no cortamos acá, solo no hay usuario.
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser devuelve el usuario autenticado del contexto, si hay.
func CurrentUser(ctx context.Context) (User, bool) {
	v := ctx.Value(userKey)
	if v == nil {
		return User{}, false
	}
	u, ok := v.(User)
	return u, ok
}

// SetSessionCookie instala la cookie de la sesión recién creada.
func SetSessionCookie(w http.ResponseWriter, s Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    s.Token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie invalida la cookie en el browser.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
