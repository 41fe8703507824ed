package web

import (
	"context"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/scienceol/labprofile/internal/config"
	"github.com/scienceol/labprofile/pkg/common"
	"github.com/scienceol/labprofile/pkg/common/code"
	"github.com/scienceol/labprofile/pkg/middleware/db"
	"github.com/scienceol/labprofile/pkg/middleware/logger"
	configureView "github.com/scienceol/labprofile/pkg/web/views/configure"
	"github.com/scienceol/labprofile/pkg/web/views/health"
	labView "github.com/scienceol/labprofile/pkg/web/views/labprofile"
	policyView "github.com/scienceol/labprofile/pkg/web/views/policy"
	"github.com/scienceol/labprofile/pkg/web/views/root"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func NewRouter(ctx context.Context, g *gin.Engine, ds *db.Datastore) {
	installMiddleware(g)
	installURL(ctx, g, ds)
}

func installMiddleware(g *gin.Engine) {
	g.ContextWithFallback = true
	server := config.Global().Server
	g.Use(cors.Default())
	g.Use(otelgin.Middleware(fmt.Sprintf("%s-%s", server.Platform, server.Service)))
	g.Use(logger.LogWithWriter())
	g.Use(gin.CustomRecovery(func(ctx *gin.Context, rec any) {
		logger.Errorf(ctx, "panic recovered: %v", rec)
		common.ReplyErr(ctx, code.UnDefineErr)
	}))
}

func installURL(_ context.Context, g *gin.Engine, ds *db.Datastore) {
	g.GET("/", root.Root)

	api := g.Group("/api")
	hHandle := health.New(ds)
	api.GET("/health", health.Health)
	api.GET("/health/live", health.Live)
	api.GET("/health/ready", hHandle.Ready)

	if config.Global().Swagger.Enable {
		g.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	{
		lHandle := labView.NewLabProfileHandle(ds)
		g.POST("/create_lab_profile/", lHandle.CreateLabProfile)
		g.GET("/lab_profiles/", lHandle.LabProfiles)
	}

	{
		cHandle := configureView.NewConfigureHandle(ds)
		g.POST("/create_configure/", cHandle.CreateConfigure)
		g.GET("/configures/", cHandle.Configures)
	}

	{
		pHandle := policyView.NewPolicyHandle(ds)
		g.POST("/create_permission_policy/", pHandle.CreatePermissionPolicy)
		g.GET("/permission_policies/", pHandle.PermissionPolicies)
	}
}
