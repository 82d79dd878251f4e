package main

import (
	"log"
	"net/http"
	"os"

	"github.com/mvdbroek/go-jewelry/app/cmd"
	"github.com/mvdbroek/go-jewelry/app/configs"
	"github.com/mvdbroek/go-jewelry/app/routes"
	"github.com/mvdbroek/go-jewelry/app/utils/logger"
)

func main() {
	env := configs.LoadENV

	logger.Init(env.AppEnv)
	defer logger.Sync()

	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatal("Session keys missing: ", err)
	}

	router := routes.NewRouter(db, keys)

	server := http.Server{
		Addr:    ":" + env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("server stopped: ", err)
	}
}
