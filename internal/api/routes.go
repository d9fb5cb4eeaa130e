package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"jobhub/internal/api/middleware"
	"jobhub/internal/auth"
	"jobhub/internal/config"
	"jobhub/internal/database"
	"jobhub/internal/store"
)

// RegisterRoutes wires the /api surface. The redis client and object store
// may be nil (tests run without them); the routes that need them are only
// mounted when they are present.
func RegisterRoutes(
	router *gin.Engine,
	st *store.Store,
	verifier auth.Verifier,
	redisClient *redis.Client,
	logger *slog.Logger,
	storageClient objectStore,
	uploads config.UploadConfig,
	rateLimit config.RateLimitConfig,
) {
	authHandler := NewAuthHandler(st)
	templateHandler := NewTemplateHandler(st)
	cvHandler := NewCvHandler(st)
	jobHandler := NewJobHandler(st)
	companyHandler := NewCompanyHandler(st)
	applicationHandler := NewApplicationHandler(st)
	adminHandler := NewAdminHandler(st)

	authMiddleware := middleware.AuthMiddleware(verifier)
	employerOnly := middleware.RequireRole(st, database.RoleEmployer, database.RoleAdmin)
	adminOnly := middleware.RequireRole(st, database.RoleAdmin)

	writeLimit := func(c *gin.Context) { c.Next() }
	if redisClient != nil {
		writeLimit = middleware.RateLimit(redisClient, "write", int64(rateLimit.WritesPerWindow), rateLimit.Window)
	}

	apiGroup := router.Group("/api")
	apiGroup.Use(middleware.CorrelationIDMiddleware(), middleware.SlogLoggerMiddleware(logger))
	{
		apiGroup.GET("/auth/user", authMiddleware, authHandler.GetCurrentUser)

		apiGroup.GET("/cv-templates", templateHandler.ListTemplates)
		apiGroup.POST("/cv-templates", authMiddleware, adminOnly, writeLimit, templateHandler.CreateTemplate)

		cvGroup := apiGroup.Group("/cvs")
		cvGroup.Use(authMiddleware)
		{
			cvGroup.GET("", cvHandler.ListCvs)
			cvGroup.POST("", writeLimit, cvHandler.CreateCv)
			cvGroup.GET("/:id", cvHandler.GetCv)
			cvGroup.PUT("/:id", writeLimit, cvHandler.UpdateCv)
			cvGroup.DELETE("/:id", writeLimit, cvHandler.DeleteCv)
		}

		apiGroup.GET("/jobs", jobHandler.ListJobs)
		apiGroup.GET("/jobs/:id", jobHandler.GetJob)
		apiGroup.POST("/jobs", authMiddleware, employerOnly, writeLimit, jobHandler.CreateJob)
		apiGroup.PUT("/jobs/:id", authMiddleware, employerOnly, writeLimit, jobHandler.UpdateJob)
		apiGroup.DELETE("/jobs/:id", authMiddleware, employerOnly, writeLimit, jobHandler.DeleteJob)
		apiGroup.GET("/jobs/:id/applications", authMiddleware, employerOnly, jobHandler.ListJobApplications)

		apiGroup.GET("/companies", companyHandler.ListCompanies)
		apiGroup.GET("/companies/:id", companyHandler.GetCompany)
		apiGroup.POST("/companies", authMiddleware, writeLimit, companyHandler.CreateCompany)
		apiGroup.PUT("/companies/:id", authMiddleware, writeLimit, companyHandler.UpdateCompany)

		applicationGroup := apiGroup.Group("/applications")
		applicationGroup.Use(authMiddleware)
		{
			applicationGroup.GET("", applicationHandler.ListMyApplications)
			applicationGroup.POST("", writeLimit, applicationHandler.CreateApplication)
			applicationGroup.PUT("/:id", employerOnly, writeLimit, applicationHandler.UpdateApplication)
		}

		apiGroup.GET("/admin/stats", authMiddleware, adminOnly, adminHandler.GetStats)

		if storageClient != nil {
			assetHandler := NewAssetHandler(storageClient, uploads.ClamdAddr, uploads.MaxBytes)
			assetGroup := apiGroup.Group("/assets")
			assetGroup.Use(authMiddleware)
			{
				assetGroup.GET("", assetHandler.ListAssets)
				assetGroup.POST("/upload", writeLimit, assetHandler.UploadAsset)
				assetGroup.GET("/view", assetHandler.GetAssetURL)
				assetGroup.DELETE("", writeLimit, assetHandler.DeleteAsset)
			}
		}
	}
}
