package routes

import (
	"strconv"

	_ "seguros_xpto/docs" // This will be auto-generated
	"seguros_xpto/internal/adapter/http/handlers"
	"seguros_xpto/internal/usecase"
	"seguros_xpto/internal/usecase/interfaces"
	"seguros_xpto/pkg/config"
	"seguros_xpto/pkg/logger"
	"seguros_xpto/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Options{
		ServiceName: "quotation-service",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
	})

	if cfg.App.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	getRoutes(router, registry)

	addr := ":" + strconv.Itoa(cfg.App.Port)
	log.Info().Str("addr", addr).Str("env", cfg.App.Env).Msg("starting quotation service")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

func getRoutes(router *gin.Engine, registry prometheus.Registerer) {
	clock := interfaces.SystemClock{}
	validator := usecase.NewQuoteValidator(clock)
	calculator := usecase.NewQuoteCalculator()
	quoteUseCase := usecase.NewQuoteUseCase(validator, calculator, clock)

	quoteMetrics := metrics.NewQuoteMetrics(registry)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, quoteMetrics)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
}
