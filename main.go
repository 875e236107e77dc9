package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/chart0729-create/hany1/internal/config"
	"github.com/chart0729-create/hany1/internal/handler"
	"github.com/chart0729-create/hany1/internal/mapurl"
	"github.com/chart0729-create/hany1/internal/mongo"
	"github.com/chart0729-create/hany1/internal/repository"
)

func main() {
	cfg := config.Load()
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("data dir %s: %v", cfg.DataDir, err)
	}

	// Listings live in Postgres when DATABASE_URL is set, otherwise in
	// a flat JSON file. Users and contact info are always file-backed.
	var listings repository.ListingStore
	if cfg.DatabaseURL != "" {
		db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db connect error: %v", err)
		}
		repo := repository.NewListingRepository(db)
		if err := repo.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("db schema error: %v", err)
		}
		listings = repo
		log.Println("listing store: postgres")
	} else {
		listings = repository.NewFileListingRepository(cfg.ListingsFile())
		log.Printf("listing store: file %s", cfg.ListingsFile())
	}

	users := repository.NewUserRepository(cfg.UsersFile())
	if err := users.SeedAdmin(context.Background(), cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	contact := repository.NewContactRepository(cfg.ContactFile())

	r := gin.Default()
	api := r.Group("/api")

	(&handler.ListingHandler{Store: listings}).RegisterRoutes(api)
	(&handler.UserHandler{Repo: users}).RegisterRoutes(api)
	(&handler.ContactHandler{Repo: contact}).RegisterRoutes(api)
	(&handler.MapHandler{Resolver: mapurl.NewResolver()}).RegisterRoutes(api)

	// Photo storage is optional; without MONGO_URI the routes stay off.
	if cfg.MongoURI != "" {
		client, err := mongo.NewClient(cfg.MongoURI)
		if err != nil {
			log.Fatalf("mongo error: %v", err)
		}
		photos := repository.NewPhotoRepository(client, cfg.MongoDBName)
		(&handler.PhotoHandler{Repo: photos, Store: listings}).RegisterRoutes(api)
		log.Println("photo store: gridfs")
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
