package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"pet-registry/internal/adapters/files/local"
	"pet-registry/internal/adapters/render/htmltemplate"
	mem "pet-registry/internal/adapters/storage/memory"
	pg "pet-registry/internal/adapters/storage/postgres"
	"pet-registry/internal/domain/accounts"
	"pet-registry/internal/domain/clients"
	"pet-registry/internal/domain/pets"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/ports/files"
	"pet-registry/internal/ports/render"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, intenta DB_DSN por env
	// y cae a in-memory.
	DB *sql.DB

	// Opcional: store de imágenes. Default: disco local (MEDIA_DIR).
	Uploads files.Store

	// Opcional: colaborador de presentación. Default: html/template.
	Renderer render.Renderer

	Log        logger.Logger
	SessionTTL time.Duration

	// Overrides de repos, para tests y wiring especial.
	UserRepo     accounts.Repository
	SessionStore accounts.SessionStore
	ClientRepo   clients.Repository
	PetRepo      pets.Repository
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	rnd := opts.Renderer
	if rnd == nil {
		r, err := htmltemplate.New()
		if err != nil {
			return nil, err
		}
		rnd = r
	}

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err != nil {
				return nil, err
			}
			db = opened
		}
	}

	var (
		clientRepo   = opts.ClientRepo
		petRepo      = opts.PetRepo
		userRepo     = opts.UserRepo
		sessionStore = opts.SessionStore
	)

	if db != nil {
		if clientRepo == nil {
			clientRepo = pg.NewClientsRepo(db)
		}
		if petRepo == nil {
			petRepo = pg.NewPetsRepo(db)
		}
		if userRepo == nil {
			userRepo = pg.NewUsersRepo(db)
		}
	} else {
		// In-memory: el repo de clientes necesita el de mascotas para
		// aplicar la cascada de borrado.
		memPets := mem.NewPetRepo()
		if petRepo == nil {
			petRepo = memPets
		}
		if clientRepo == nil {
			clientRepo = mem.NewClientRepo(memPets)
		}
		if userRepo == nil {
			userRepo = mem.NewUserRepo()
		}
	}

	// Las sesiones viven en memoria detrás del SessionStore, con o
	// sin Postgres para el resto.
	if sessionStore == nil {
		sessionStore = mem.NewSessionStore()
	}

	uploads := opts.Uploads
	var mediaRoot string
	if uploads == nil {
		localStore, err := local.New(os.Getenv("MEDIA_DIR"))
		if err != nil {
			return nil, err
		}
		uploads = localStore
		mediaRoot = localStore.Root()
	}

	// Services por módulo
	accountsSvc := accounts.NewService(userRepo, sessionStore, opts.SessionTTL)
	clientsSvc := clients.NewService(clientRepo)
	petsSvc := pets.NewService(petRepo)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(accounts.SessionContext(accountsSvc))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Con store local, las imágenes se sirven bajo /media.
	if mediaRoot != "" {
		r.Handle("/media/*", http.StripPrefix("/media/", http.FileServer(http.Dir(mediaRoot))))
	}

	// Rutas por módulo
	accounts.RegisterRoutes(r, accountsSvc, rnd, log)
	clients.RegisterRoutes(r, clientsSvc, petsSvc, accountsSvc, accounts.LoginHandler(accountsSvc, log), rnd, log)
	pets.RegisterRoutes(r, petsSvc, ownerDirectory{svc: clientsSvc}, accountsSvc, uploads, rnd, log)

	seedAdminFromEnv(accountsSvc, userRepo, log)

	return r, nil
}

// ownerDirectory adapta el service de clientes a la vista angosta que
// necesita el módulo pets (evita el ciclo clients <-> pets).
type ownerDirectory struct {
	svc *clients.Service
}

func (d ownerDirectory) GetOwner(ctx context.Context, id string) (pets.Owner, error) {
	c, err := d.svc.GetByID(ctx, id)
	if err != nil {
		return pets.Owner{}, err
	}
	return pets.Owner{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName}, nil
}

// seedAdminFromEnv crea una cuenta administradora con permisos de
// crear/borrar clientes (y fuera del grupo Employee). Los permisos no
// se pueden otorgar desde la app, así que este seed es la vía de
// bootstrap en dev.
func seedAdminFromEnv(svc *accounts.Service, repo accounts.Repository, log logger.Logger) {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return
	}

	ctx := context.Background()
	if _, err := repo.GetByUsername(ctx, username); err == nil {
		return // ya existe
	}

	u, err := svc.Register(ctx, accounts.RegisterForm{
		Username: username,
		Password: password,
		Confirm:  password,
	})
	if err != nil {
		log.Warn("seed admin failed", map[string]any{"err": err.Error()})
		return
	}

	u.Groups = nil
	u.Permissions = []string{accounts.PermCreateClients, accounts.PermDeleteClients}
	if err := repo.Update(ctx, u); err != nil {
		log.Warn("seed admin update failed", map[string]any{"err": err.Error()})
		return
	}

	log.Info("admin account seeded", map[string]any{"username": username})
}
