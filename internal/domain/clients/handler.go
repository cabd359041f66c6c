package clients

import (
	"errors"
	"net/http"

	"pet-registry/internal/domain/accounts"
	"pet-registry/internal/domain/pets"
	"pet-registry/internal/platform/flash"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/ports/render"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(
	r chi.Router,
	svc *Service,
	petsSvc *pets.Service,
	accountsSvc *accounts.Service,
	login http.HandlerFunc,
	rnd render.Renderer,
	log logger.Logger,
) {
	r.HandleFunc("/", homeHandler(svc, login, rnd, log))
	r.Get("/view/{id}", viewHandler(svc, petsSvc, rnd, log))
	r.HandleFunc("/create/", createHandler(svc, rnd, log))
	r.HandleFunc("/edit/{id}", editHandler(svc, rnd, log))
	r.HandleFunc("/delete/{id}", deleteHandler(svc, accountsSvc, rnd, log))
}

// homeHandler lista todos los clientes. El POST es el login embebido.
func homeHandler(svc *Service, login http.HandlerFunc, rnd render.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			login(w, r)
			return
		}

		list, err := svc.List(r.Context())
		if err != nil {
			log.Error("list clients failed", map[string]any{"err": err.Error()})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		renderPage(rnd, w, r, http.StatusOK, "home", map[string]any{
			"Clients": list,
		})
	}
}

func viewHandler(svc *Service, petsSvc *pets.Service, rnd render.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		c, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				renderNotFound(rnd, w, r)
				return
			}
			log.Error("get client failed", map[string]any{"err": err.Error(), "client_id": id})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// Cliente sin mascotas => lista vacía, nunca error.
		ps, err := petsSvc.ListByOwner(r.Context(), c.ID)
		if err != nil {
			log.Error("list pets failed", map[string]any{"err": err.Error(), "client_id": id})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		renderPage(rnd, w, r, http.StatusOK, "view", map[string]any{
			"Client": c,
			"Pets":   ps,
		})
	}
}

func createHandler(svc *Service, rnd render.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := accounts.CurrentUser(r.Context())
		if d := accounts.RequireClientWrite(u, ok, accounts.PermCreateClients); !d.Allowed {
			denyAndRedirect(w, r, "You do not have permission to create a new client.")
			return
		}

		if r.Method != http.MethodPost {
			renderPage(rnd, w, r, http.StatusOK, "create", map[string]any{
				"Form":   Form{},
				"Errors": map[string][]string{},
			})
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		f, errs := ParseForm(r.PostForm)
		if !errs.Ok() {
			renderPage(rnd, w, r, http.StatusOK, "create", map[string]any{
				"Form":   f,
				"Errors": errs,
			})
			return
		}

		c, err := svc.Create(r.Context(), f)
		if err != nil {
			log.Error("create client failed", map[string]any{"err": err.Error()})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		flash.Success(w, r, "Client created.")
		http.Redirect(w, r, "/view/"+c.ID, http.StatusSeeOther)
	}
}

func editHandler(svc *Service, rnd render.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Editar solo exige sesión; sin chequeo de grupo/permiso,
		// a diferencia de crear/borrar.
		u, ok := accounts.CurrentUser(r.Context())
		if d := accounts.RequireSession(u, ok); !d.Allowed {
			denyAndRedirect(w, r, "You must be logged in to edit.")
			return
		}

		id := chi.URLParam(r, "id")
		current, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				renderNotFound(rnd, w, r)
				return
			}
			log.Error("get client failed", map[string]any{"err": err.Error(), "client_id": id})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if r.Method != http.MethodPost {
			renderPage(rnd, w, r, http.StatusOK, "edit", map[string]any{
				"Client": current,
				"Form": Form{
					FirstName:   current.FirstName,
					LastName:    current.LastName,
					Email:       current.Email,
					PhoneNumber: current.PhoneNumber,
					Address:     current.Address,
					City:        current.City,
					State:       current.State,
				},
				"Errors": map[string][]string{},
			})
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		f, errs := ParseForm(r.PostForm)
		if !errs.Ok() {
			renderPage(rnd, w, r, http.StatusOK, "edit", map[string]any{
				"Client": current,
				"Form":   f,
				"Errors": errs,
			})
			return
		}

		updated, err := svc.Update(r.Context(), id, f)
		if err != nil {
			log.Error("update client failed", map[string]any{"err": err.Error(), "client_id": id})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		flash.Success(w, r, "Client updated.")
		http.Redirect(w, r, "/view/"+updated.ID, http.StatusSeeOther)
	}
}

func deleteHandler(svc *Service, accountsSvc *accounts.Service, rnd render.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := accounts.CurrentUser(r.Context())
		if d := accounts.RequireClientWrite(u, ok, accounts.PermDeleteClients); !d.Allowed {
			denyAndRedirect(w, r, "You do not have permission to delete a client.")
			return
		}

		id := chi.URLParam(r, "id")
		c, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				renderNotFound(rnd, w, r)
				return
			}
			log.Error("get client failed", map[string]any{"err": err.Error(), "client_id": id})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if r.Method != http.MethodPost {
			renderPage(rnd, w, r, http.StatusOK, "delete_client", map[string]any{
				"Client": c,
			})
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		f, errs := accounts.ParseDeleteForm(r.PostForm)
		if !errs.Ok() || !accountsSvc.ConfirmDelete(u, f) {
			// Rechazado: el registro queda intacto y el aviso sale en
			// esta misma página, no vía cookie.
			renderPage(rnd, w, r, http.StatusOK, "delete_client", map[string]any{
				"Client": c,
				"Flashes": []flash.Message{
					{Level: flash.LevelError, Text: "Password authentication failed or passwords don't match."},
				},
			})
			return
		}

		// Confirmado: el borrado cascadea a las mascotas del cliente
		// (regla del storage).
		if err := svc.Delete(r.Context(), id); err != nil {
			log.Error("delete client failed", map[string]any{"err": err.Error(), "client_id": id})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		flash.Success(w, r, "Client record has been deleted.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// denyAndRedirect emite la notificación de error y vuelve a la página
// anterior (o home si no hay referer).
func denyAndRedirect(w http.ResponseWriter, r *http.Request, reason string) {
	flash.Error(w, r, reason)

	target := r.Referer()
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func renderNotFound(rnd render.Renderer, w http.ResponseWriter, r *http.Request) {
	renderPage(rnd, w, r, http.StatusNotFound, "notfound", map[string]any{})
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
	if u, ok := accounts.CurrentUser(r.Context()); ok {
		data["User"] = u
	}
	_ = rnd.Render(w, status, page, data)
}
