package cmd

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/mvdbroek/go-jewelry/app/configs"
	"github.com/mvdbroek/go-jewelry/app/db/seeders"
	"github.com/mvdbroek/go-jewelry/app/models/migrations"
	"github.com/mvdbroek/go-jewelry/app/services"
	"github.com/mvdbroek/go-jewelry/app/utils/renderer"
	"github.com/urfave/cli/v3"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed the database with sample catalog data",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := seeders.DBSeed(db); err != nil {
						return err
					}
					log.Println("✅ Seeding complete")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication and encryption keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					log.Println("✅ Key generation complete. Please copy the keys to your .env file.")
					return nil
				},
			},
			{
				Name:  "upload-auth",
				Usage: "Run the standalone upload credential server",
				Action: func(ctx context.Context, c *cli.Command) error {
					return runUploadAuthServer()
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// runUploadAuthServer serves GET /auth with fresh upload credentials so
// browser clients can push files straight to the CDN. It is a separate
// process from the storefront and shares nothing but the env config.
func runUploadAuthServer() error {
	imageKit := services.NewImageKitService()
	render := renderer.New()

	router := mux.NewRouter()
	router.HandleFunc("/auth", func(w http.ResponseWriter, r *http.Request) {
		_ = render.JSON(w, http.StatusOK, imageKit.AuthParams())
	}).Methods(http.MethodGet)

	addr := ":" + configs.LoadENV.UploadAuthPort
	if configs.LoadENV.UploadAuthPort == "" {
		addr = ":3001"
	}
	log.Printf("🚀 Upload auth server starting on %s", addr)
	return http.ListenAndServe(addr, router)
}
