package accounts

import (
	"errors"
	"net/http"

	"pet-registry/internal/platform/flash"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/ports/render"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, rnd render.Renderer, log logger.Logger) {
	r.HandleFunc("/register/", registerHandler(svc, rnd, log))
	r.HandleFunc("/logout/", logoutHandler(svc, log))
}

func registerHandler(svc *Service, rnd render.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			renderPage(rnd, w, r, http.StatusOK, "register", map[string]any{
				"Form":   RegisterForm{},
				"Errors": map[string][]string{},
			})
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		f, errs := ParseRegisterForm(r.PostForm)
		if !errs.Ok() {
			renderPage(rnd, w, r, http.StatusOK, "register", map[string]any{
				"Form":   f,
				"Errors": errs,
			})
			return
		}

		u, err := svc.Register(r.Context(), f)
		if err != nil {
			if errors.Is(err, ErrUsernameTaken) {
				errs.Add("username", "A user with that username already exists.")
				renderPage(rnd, w, r, http.StatusOK, "register", map[string]any{
					"Form":   f,
					"Errors": errs,
				})
				return
			}
			log.Error("register failed", map[string]any{"err": err.Error()})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// Alta exitosa: sesión inmediata, sin paso de login aparte.
		sess, err := svc.StartSession(r.Context(), u.ID)
		if err != nil {
			log.Error("start session failed", map[string]any{"err": err.Error()})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		SetSessionCookie(w, sess)

		flash.Success(w, r, "You have successfully signed up!")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// LoginHandler procesa el POST de login embebido en la home.
func LoginHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		username := r.PostForm.Get("username")
		password := r.PostForm.Get("password")

		u, err := svc.Authenticate(r.Context(), username, password)
		if err != nil {
			// El mensaje no distingue usuario desconocido de clave mala.
			flash.Error(w, r, "Login Failed")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		sess, err := svc.StartSession(r.Context(), u.ID)
		if err != nil {
			log.Error("start session failed", map[string]any{"err": err.Error()})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		SetSessionCookie(w, sess)

		flash.Success(w, r, "Login Successful")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func logoutHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(SessionCookieName); err == nil {
			if err := svc.EndSession(r.Context(), c.Value); err != nil {
				log.Warn("end session failed", map[string]any{"err": err.Error()})
			}
		}
		ClearSessionCookie(w)

		flash.Success(w, r, "You have been logged out.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// renderPage está duplicado a propósito en los handlers de cada módulo
// (accounts/clients/pets) para no crear helpers compartidos antes de
// tiempo.
func renderPage(rnd render.Renderer, w http.ResponseWriter, r *http.Request, status int, page string, data map[string]any) {
	// Mensajes generados en este mismo request pueden venir ya en
	// data["Flashes"]; se suman a los pendientes de la cookie.
	msgs := flash.Pop(w, r)
	if extra, ok := data["Flashes"].([]flash.Message); ok {
		msgs = append(msgs, extra...)
	}
	data["Flashes"] = msgs
	if u, ok := CurrentUser(r.Context()); ok {
		data["User"] = u
	}
	_ = rnd.Render(w, status, page, data)
}
