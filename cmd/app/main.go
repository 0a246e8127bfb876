package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"swoon/cmd/fx/accountfx"
	"swoon/cmd/fx/controllersfx"
	"swoon/cmd/fx/crawlfx"
	"swoon/cmd/fx/dbfx"
	"swoon/cmd/fx/memcachefx"
	"swoon/cmd/fx/profilefx"
	"swoon/cmd/fx/shortlistfx"
	"swoon/cmd/fx/swipefx"
	"swoon/cmd/fx/venuesfx"
	"swoon/internal/api/controllers"
	"swoon/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		dbfx.Module,
		memcachefx.Module,
		accountfx.Module,
		venuesfx.Module,
		swipefx.Module,
		profilefx.Module,
		shortlistfx.Module,
		crawlfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	venuesController *controllers.VenuesController,
	swipeController *controllers.SwipeController,
	profileController *controllers.ProfileController,
	shortlistController *controllers.ShortlistController,
	crawlController *controllers.CrawlController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, venuesController, swipeController,
		profileController, shortlistController, crawlController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	venuesController *controllers.VenuesController,
	swipeController *controllers.SwipeController,
	profileController *controllers.ProfileController,
	shortlistController *controllers.ShortlistController,
	crawlController *controllers.CrawlController) {

	accounts := r.Group("/accounts")
	accounts.POST("/signup", accountController.Signup)
	accounts.POST("/login", accountController.Login)

	venues := r.Group("/venues", middleware.JWTAuthMiddleware())
	venues.GET("/search", venuesController.Search)
	venues.GET("/:id", venuesController.GetVenueByID)

	swipes := r.Group("/swipes", middleware.JWTAuthMiddleware())
	swipes.POST("", swipeController.Submit)
	swipes.POST("/undo", swipeController.Undo)
	swipes.GET("/feed", swipeController.Feed)

	profile := r.Group("/profile", middleware.JWTAuthMiddleware())
	profile.GET("", profileController.GetCurrent)
	profile.POST("/refine", profileController.Refine)

	shortlist := r.Group("/shortlist", middleware.JWTAuthMiddleware())
	shortlist.GET("", shortlistController.List)
	shortlist.POST("/toggle", shortlistController.Toggle)

	crawl := r.Group("/crawl", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	crawl.POST("/plan", crawlController.Plan)
	crawl.POST("/run", crawlController.Run)
}
