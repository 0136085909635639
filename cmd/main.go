package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodapi/config"
	"foodapi/importer"
	"foodapi/logger"
	"foodapi/models"
	"foodapi/routes"
)

func main() {
	config.LoadEnv()

	mode := config.Getenv("GIN_MODE", gin.DebugMode)
	gin.SetMode(mode)

	logg, err := logger.New(mode)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logg.Sync()

	db, err := config.ConnectDB(logg)
	if err != nil {
		logg.Fatal("connect database", "error", err)
	}
	if err := config.Migrate(db); err != nil {
		logg.Fatal("migrate database", "error", err)
	}

	autoInitialize(context.Background(), db, logg)

	r := routes.SetupRouter(db, logg)
	addr := ":" + config.Getenv("PORT", "8080")
	logg.Info("starting server", "addr", addr)
	if err := r.Run(addr); err != nil {
		logg.Fatal("server stopped", "error", err)
	}
}

// autoInitialize imports the conventional workbook once when the store is
// empty. Failures here are logged, not fatal; the API still works with an
// empty table.
func autoInitialize(ctx context.Context, db *gorm.DB, logg *logger.Logger) {
	var count int64
	if err := db.Model(&models.Food{}).Count(&count).Error; err != nil {
		logg.Error("count foods for auto-initialization", "error", err)
		return
	}
	if count > 0 {
		logg.Info("database already initialized", "count", count)
		return
	}

	path := config.Getenv("FOOD_EXCEL_PATH", "food_nutrition_db.xlsx")
	if _, err := os.Stat(path); err != nil {
		logg.Warn("database is empty and no workbook was found, skipping auto-initialization", "path", path)
		return
	}

	logg.Info("database is empty, importing from workbook", "path", path)
	if _, err := importer.Run(ctx, db, logg, importer.Options{Path: path}); err != nil {
		logg.Error("auto-initialization failed", "error", err)
	}
}
