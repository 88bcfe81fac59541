package main

import (
	"os"
	"time"

	"github.com/bicudoweb/galeria/config"
	"github.com/bicudoweb/galeria/models"
	"github.com/bicudoweb/galeria/routes"
	"github.com/bicudoweb/galeria/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	// Schema init happens here, once, before any request is accepted.
	db := config.InitDatabase(&models.Image{}, &models.PageView{})

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		utils.Sugar.Fatalf("cannot create upload directory %s: %v", cfg.UploadDir, err)
	}

	r := routes.SetupRouter(db)

	// Background reconciliation of blobs left behind by interrupted uploads
	utils.StartOrphanSweeper(db, cfg.UploadDir, 30*time.Minute)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
