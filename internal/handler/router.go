package handler

import (
	"fmt"
	"time"

	_ "ContactForm_SheetsProject/docs"
	"ContactForm_SheetsProject/internal/metrics"
	"ContactForm_SheetsProject/internal/middleware"
	"ContactForm_SheetsProject/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Gateway        Appender
	Logger         *zap.Logger
	AllowOrigins   []string // 비어있으면 모든 origin 허용
	RequestTimeout time.Duration
	EnableMetrics  bool
}

func NewRouter(rc RouterConfig) (*gin.Engine, error) {
	log := rc.Logger
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.AccessLog(log), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(rc.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = rc.AllowOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Accept", middleware.RequestIDHeader)
	corsConfig.ExposeHeaders = append(corsConfig.ExposeHeaders, middleware.RequestIDHeader)
	router.Use(cors.New(corsConfig))

	if rc.EnableMetrics {
		metrics.Use(router)
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("NewRouter(): failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", web.Static())

	submit := NewSubmitHandler(rc.Gateway, log)

	router.GET("/", Index)
	router.GET("/healthz", Health)
	router.POST(submitPath, middleware.Timeout(rc.RequestTimeout), submit.Submit)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router, nil
}
