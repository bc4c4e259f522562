package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bettyia/clinic-scheduler/internal/bootstrap"
	"github.com/bettyia/clinic-scheduler/internal/config"
	dbpkg "github.com/bettyia/clinic-scheduler/internal/db"
	"github.com/bettyia/clinic-scheduler/internal/middleware"
	"github.com/bettyia/clinic-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if err := bootstrap.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
