package main

import (
	"context"
	"errors"
	"log"

	"tourbook/internal/config"
	"tourbook/internal/domain"
	"tourbook/internal/repository/sqlite"
	"tourbook/internal/service"
	"tourbook/internal/storage"
)

// main prepares everything the windowed UI needs before it takes over:
// the store with its schema, the image library, and the bootstrap admin
// account.
func main() {
	cfg := config.Load()
	ctx := context.Background()

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer db.Close()

	if _, err := storage.NewLibrary(cfg.ImageDir, cfg.ImageMaxDimension); err != nil {
		log.Fatalf("open image library: %v", err)
	}

	users := service.NewUserService(sqlite.NewUserRepo(db))
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		seedAdmin(ctx, users, cfg.AdminUsername, cfg.AdminPassword)
	}

	catalog := service.NewCatalogService(
		sqlite.NewDestinationRepo(db),
		sqlite.NewImageRepo(db),
		sqlite.NewSavedRepo(db),
		sqlite.NewReviewRepo(db),
	)
	views, err := catalog.List(ctx, domain.SortByName, domain.NoUser)
	if err != nil {
		log.Fatalf("read catalog: %v", err)
	}

	log.Printf("store ready at %s: %d destinations, images in %s", cfg.DBPath, len(views), cfg.ImageDir)
}

// seedAdmin creates the bootstrap admin account on first start. An existing
// username means a previous run already seeded it.
func seedAdmin(ctx context.Context, users *service.UserService, username, password string) {
	_, err := users.SignUp(ctx, username, password, domain.RoleAdmin)
	switch {
	case err == nil:
		log.Printf("created admin account %q", username)
	case errors.Is(err, service.ErrUsernameTaken):
		// already seeded
	default:
		log.Fatalf("seed admin account: %v", err)
	}
}
