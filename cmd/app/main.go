package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/anskp/Flexi-Fit-sub001/cmd/fx/account_fx"
	"github.com/anskp/Flexi-Fit-sub001/cmd/fx/controllers_fx"
	"github.com/anskp/Flexi-Fit-sub001/cmd/fx/dashboard_fx"
	"github.com/anskp/Flexi-Fit-sub001/cmd/fx/db_fx"
	"github.com/anskp/Flexi-Fit-sub001/cmd/fx/mail_fx"
	"github.com/anskp/Flexi-Fit-sub001/cmd/fx/profile_fx"
	"github.com/anskp/Flexi-Fit-sub001/internal/api/controllers"
	"github.com/anskp/Flexi-Fit-sub001/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		profile_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
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
	profileController *controllers.ProfileController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, profileController, dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	profileController *controllers.ProfileController,
	dashboardController *controllers.DashboardController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/signup", accountController.Signup)
	r.POST("/login", accountController.Login)
	r.POST("/auth/google", accountController.GoogleLogin)
	r.POST("/forgot-password", accountController.ForgotPassword)
	r.POST("/reset-password", accountController.ResetPassword)

	authed := r.Group("/", middleware.JWTAuthMiddleware())
	authed.GET("/me", accountController.Me)
	authed.POST("/change-password", accountController.ChangePassword)
	authed.POST("/select-role", profileController.SelectRole)
	authed.POST("/create-member-profile", profileController.CreateMemberProfile)
	authed.POST("/create-trainer-profile", profileController.CreateTrainerProfile)
	authed.POST("/create-gym-profile", profileController.CreateGymProfile)
	authed.POST("/create-multi-gym-profile", profileController.CreateMultiGymProfile)
	authed.GET("/dashboard", dashboardController.GetDashboard)

	admin := authed.Group("/admin", middleware.AdminOnlyMiddleware())
	admin.GET("/dashboard", dashboardController.GetDashboard)
}
