package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"pet-registry/internal/adapters/files/s3"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/ports/files"
	"pet-registry/internal/router"
)

func main() {
	// .env opcional para dev; en producción todo llega por env real.
	_ = godotenv.Load()

	appLog := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	var uploads files.Store
	if bucket := os.Getenv("S3_BUCKET"); bucket != "" {
		store, err := s3.New(os.Getenv("AWS_REGION"), bucket)
		if err != nil {
			log.Fatalf("s3 store: %v", err)
		}
		uploads = store
	}

	r, err := router.NewRouter(router.Options{
		Uploads:    uploads,
		Log:        appLog,
		SessionTTL: sessionTTLFromEnv(),
	})
	if err != nil {
		log.Fatalf("router: %v", err)
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	appLog.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

// SESSION_TTL en horas; 0 o ausente usa el default del service.
func sessionTTLFromEnv() time.Duration {
	v := os.Getenv("SESSION_TTL")
	if v == "" {
		return 0
	}
	hours, err := strconv.Atoi(v)
	if err != nil || hours <= 0 {
		return 0
	}
	return time.Duration(hours) * time.Hour
}
