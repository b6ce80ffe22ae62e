package v1

import (
	"go_assettag/api/v1/assets"
	"go_assettag/api/v1/auth"
	"go_assettag/api/v1/categories"
	"go_assettag/api/v1/companies"
	"go_assettag/api/v1/dashboard"
	"go_assettag/api/v1/employees"
	"go_assettag/api/v1/middleware"
	"go_assettag/api/v1/servers"
	"go_assettag/api/v1/tags"
	"go_assettag/internal/config"
	"go_assettag/internal/httpx"
	"go_assettag/internal/model"
	"go_assettag/internal/tag"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter sets up the API v1 routes
func SetupRouter(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())

	// Archived tag images are served directly
	r.Static("/storage", cfg.Tag.StorageDir)

	authHandler := auth.NewHandler(db, cfg)
	companiesHandler := companies.NewHandler(db)
	categoriesHandler := categories.NewHandler(db)
	employeesHandler := employees.NewHandler(db)
	serversHandler := servers.NewHandler(db)
	assetsHandler := assets.NewHandler(db)
	tagsHandler := tags.NewHandler(db, tag.QRRenderer{Size: cfg.Tag.QRSize}, tag.Archive{Dir: cfg.Tag.StorageDir})
	dashboardHandler := dashboard.NewHandler(db)

	v1 := r.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.GET("/ping", pingHandler)
		v1.POST("/register", authHandler.Register)
		v1.POST("/login", authHandler.Login)

		// Any authenticated user
		protected := v1.Group("")
		protected.Use(middleware.RequireRoles())
		{
			protected.GET("/user", authHandler.Me)
			protected.POST("/logout", authHandler.Logout)

			companiesGroup := protected.Group("/companies")
			{
				companiesGroup.GET("", companiesHandler.List)
				companiesGroup.GET("/:id", companiesHandler.Show)
				companiesGroup.POST("", companiesHandler.Create)
				companiesGroup.PUT("/:id", companiesHandler.Update)
				companiesGroup.DELETE("/:id", companiesHandler.Delete)
			}

			categoriesGroup := protected.Group("/categories")
			{
				categoriesGroup.GET("", categoriesHandler.List)
				categoriesGroup.GET("/:id", categoriesHandler.Show)
				categoriesGroup.POST("", categoriesHandler.Create)
				categoriesGroup.PUT("/:id", categoriesHandler.Update)
				categoriesGroup.DELETE("/:id", categoriesHandler.Delete)
			}

			employeesGroup := protected.Group("/employees")
			{
				employeesGroup.GET("", employeesHandler.List)
				employeesGroup.GET("/:id", employeesHandler.Show)
				employeesGroup.POST("", employeesHandler.Create)
				employeesGroup.PUT("/:id", employeesHandler.Update)
				employeesGroup.DELETE("/:id", employeesHandler.Delete)
			}

			assetsGroup := protected.Group("/assets")
			{
				assetsGroup.GET("", assetsHandler.List)
				assetsGroup.POST("", assetsHandler.Create)
				assetsGroup.GET("/by-unique-code", assetsHandler.ByUniqueCode)
				assetsGroup.GET("/unique-code-suggestions", assetsHandler.SuggestUniqueCodes)
				assetsGroup.POST("/unique-code", assetsHandler.SaveUniqueCode)
				assetsGroup.GET("/:id", assetsHandler.Show)
				assetsGroup.PUT("/:id", assetsHandler.Update)
				assetsGroup.DELETE("/:id", assetsHandler.Delete)
				assetsGroup.GET("/:id/download-tag", tagsHandler.DownloadTag)
			}

			protected.GET("/asset_list", assetsHandler.AssetList)
			protected.GET("/asset_list_all", assetsHandler.AssetListAll)

			tagsGroup := protected.Group("/tags")
			{
				tagsGroup.GET("", tagsHandler.List)
				tagsGroup.POST("", tagsHandler.Create)
				tagsGroup.POST("/mark-printed", tagsHandler.MarkPrinted)
				tagsGroup.DELETE("/:id", tagsHandler.Delete)
			}

			protected.GET("/dashboard/summary", dashboardHandler.Summary)
		}

		// Admin only
		admin := v1.Group("")
		admin.Use(middleware.RequireRoles(model.RoleAdmin))
		{
			admin.GET("/users", authHandler.ListUsers)
			admin.POST("/users", authHandler.CreateUser)
			admin.DELETE("/users/:id", authHandler.DeleteUser)
			admin.PATCH("/users/:id/role", authHandler.UpdateRole)

			serversGroup := admin.Group("/servers")
			{
				serversGroup.GET("", serversHandler.List)
				serversGroup.GET("/:id", serversHandler.Show)
				serversGroup.POST("", serversHandler.Create)
				serversGroup.PUT("/:id", serversHandler.Update)
				serversGroup.DELETE("/:id", serversHandler.Delete)
			}
		}
	}
}

// pingHandler handles the ping request using unified response
func pingHandler(c *gin.Context) {
	httpx.OK(c, gin.H{
		"pong": true,
	})
}
