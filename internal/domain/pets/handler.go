package pets

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"pet-registry/internal/domain/accounts"
	"pet-registry/internal/platform/flash"
	"pet-registry/internal/platform/forms"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/ports/files"
	"pet-registry/internal/ports/render"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxUploadBytes = 10 << 20 // 10 MiB

var allowedImageExts = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {},
}

// Owner es el resumen del cliente dueño que necesita este módulo.
type Owner struct {
	ID        string
	FirstName string
	LastName  string
}

// OwnerDirectory resuelve clientes sin importar el módulo clients
// (evita ciclos de imports: clients ya importa pets para la vista).
type OwnerDirectory interface {
	GetOwner(ctx context.Context, id string) (Owner, error)
}

func RegisterRoutes(
	r chi.Router,
	svc *Service,
	owners OwnerDirectory,
	accountsSvc *accounts.Service,
	uploads files.Store,
	rnd render.Renderer,
	log logger.Logger,
) {
	r.HandleFunc("/add_pet/{clientID}", addHandler(svc, owners, uploads, rnd, log))
	r.HandleFunc("/edit_pet/{id}", editHandler(svc, uploads, rnd, log))
	r.HandleFunc("/delete_pet/{id}", deleteHandler(svc, accountsSvc, rnd, log))
}

func addHandler(svc *Service, owners OwnerDirectory, uploads files.Store, rnd render.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := accounts.CurrentUser(r.Context())
		if d := accounts.RequireSession(u, ok); !d.Allowed {
			denyAndRedirect(w, r, "You must be logged in to add a pet.")
			return
		}

		clientID := chi.URLParam(r, "clientID")
		owner, err := owners.GetOwner(r.Context(), clientID)
		if err != nil {
			renderNotFound(rnd, w, r)
			return
		}

		if r.Method != http.MethodPost {
			renderPage(rnd, w, r, http.StatusOK, "add_pet", map[string]any{
				"Owner":  owner,
				"Form":   Form{Sex: SexUnknown},
				"Errors": map[string][]string{},
			})
			return
		}

		if err := parseSubmission(w, r); err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				errs := forms.Errors{}
				errs.Add("pet_img", "The submitted file is too big (10 MiB maximum).")
				renderPage(rnd, w, r, http.StatusOK, "add_pet", map[string]any{
					"Owner":  owner,
					"Form":   Form{Sex: SexUnknown},
					"Errors": errs,
				})
				return
			}
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		f, errs := ParseForm(r.PostForm)
		imagePath, imgErr := saveUpload(r, uploads)
		if imgErr != "" {
			errs.Add("pet_img", imgErr)
		}

		if !errs.Ok() {
			renderPage(rnd, w, r, http.StatusOK, "add_pet", map[string]any{
				"Owner":  owner,
				"Form":   f,
				"Errors": errs,
			})
			return
		}

		if _, err := svc.Create(r.Context(), owner.ID, f, imagePath); err != nil {
			log.Error("create pet failed", map[string]any{"err": err.Error(), "client_id": owner.ID})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		flash.Success(w, r, "Pet added.")
		http.Redirect(w, r, "/view/"+owner.ID, http.StatusSeeOther)
	}
}

func editHandler(svc *Service, uploads files.Store, rnd render.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
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
			log.Error("get pet failed", map[string]any{"err": err.Error(), "pet_id": id})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if r.Method != http.MethodPost {
			renderPage(rnd, w, r, http.StatusOK, "edit_pet", map[string]any{
				"Pet":    current,
				"Form":   FormFromPet(current),
				"Errors": map[string][]string{},
			})
			return
		}

		if err := parseSubmission(w, r); err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				errs := forms.Errors{}
				errs.Add("pet_img", "The submitted file is too big (10 MiB maximum).")
				renderPage(rnd, w, r, http.StatusOK, "edit_pet", map[string]any{
					"Pet":    current,
					"Form":   FormFromPet(current),
					"Errors": errs,
				})
				return
			}
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		f, errs := ParseForm(r.PostForm)
		imagePath, imgErr := saveUpload(r, uploads)
		if imgErr != "" {
			errs.Add("pet_img", imgErr)
		}

		if !errs.Ok() {
			renderPage(rnd, w, r, http.StatusOK, "edit_pet", map[string]any{
				"Pet":    current,
				"Form":   f,
				"Errors": errs,
			})
			return
		}

		updated, err := svc.Update(r.Context(), id, f, imagePath)
		if err != nil {
			log.Error("update pet failed", map[string]any{"err": err.Error(), "pet_id": id})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		flash.Success(w, r, "Pet information updated.")

		// Mascota sin dueño: no hay página de detalle a la que volver.
		target := "/"
		if updated.OwnerID != "" {
			target = "/view/" + updated.OwnerID
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}

func deleteHandler(svc *Service, accountsSvc *accounts.Service, rnd render.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := accounts.CurrentUser(r.Context())
		if d := accounts.RequireSession(u, ok); !d.Allowed {
			denyAndRedirect(w, r, "You must be logged in to delete.")
			return
		}

		id := chi.URLParam(r, "id")
		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				renderNotFound(rnd, w, r)
				return
			}
			log.Error("get pet failed", map[string]any{"err": err.Error(), "pet_id": id})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if r.Method != http.MethodPost {
			renderPage(rnd, w, r, http.StatusOK, "delete_pet", map[string]any{
				"Pet": p,
			})
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		f, errs := accounts.ParseDeleteForm(r.PostForm)
		if !errs.Ok() || !accountsSvc.ConfirmDelete(u, f) {
			// Rechazado: la mascota queda intacta y el aviso sale en
			// esta misma página, no vía cookie.
			renderPage(rnd, w, r, http.StatusOK, "delete_pet", map[string]any{
				"Pet": p,
				"Flashes": []flash.Message{
					{Level: flash.LevelError, Text: "Password authentication failed or passwords don't match."},
				},
			})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			log.Error("delete pet failed", map[string]any{"err": err.Error(), "pet_id": id})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		flash.Success(w, r, "Pet record has been deleted.")

		target := "/"
		if p.OwnerID != "" {
			target = "/view/" + p.OwnerID
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}

// parseSubmission acepta tanto multipart (con imagen) como urlencoded.
// El body completo queda acotado a maxUploadBytes: ParseMultipartForm
// solo limita el buffering en memoria, no lo que llega por el wire.
func parseSubmission(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	err := r.ParseMultipartForm(maxUploadBytes)
	if errors.Is(err, http.ErrNotMultipart) {
		return r.ParseForm()
	}
	return err
}

// saveUpload guarda el archivo pet_img si vino. Devuelve la referencia
// ("" si no hubo archivo) y un mensaje de error de campo.
func saveUpload(r *http.Request, uploads files.Store) (string, string) {
	file, hdr, err := r.FormFile("pet_img")
	if err != nil {
		// Sin archivo: la imagen es opcional.
		return "", ""
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(hdr.Filename))
	if _, ok := allowedImageExts[ext]; !ok {
		return "", "Upload a valid image (jpg, jpeg, png, gif or webp)."
	}

	name := "images/" + uuid.NewString() + ext
	path, err := uploads.Save(r.Context(), name, file)
	if err != nil {
		return "", "Could not store the uploaded image."
	}
	return path, ""
}

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
