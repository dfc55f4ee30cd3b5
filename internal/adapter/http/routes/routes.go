package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "quickestimate/docs" // swag generated
	"quickestimate/internal/adapter/http/handlers"
	"quickestimate/internal/adapter/http/middleware"
	"quickestimate/internal/config"
	"quickestimate/internal/infrastructure/openai"
	"quickestimate/internal/infrastructure/pdf"
	"quickestimate/internal/infrastructure/storage"
	"quickestimate/internal/usecase"
	"quickestimate/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run builds the router from cfg and serves until SIGINT or SIGTERM.
func Run(cfg config.Config) error {
	router, err := NewRouter(cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Bool("openai_mock", cfg.OpenAI.Mock).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info().Msg("server exited")
	return nil
}

// NewRouter wires the engine: middlewares, swagger and the API routes.
func NewRouter(cfg config.Config) (*gin.Engine, error) {
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(router, cfg); err != nil {
		return nil, err
	}
	return router, nil
}

func getRoutes(router *gin.Engine, cfg config.Config) error {
	transcriber, extractor, err := newProviders(cfg.OpenAI)
	if err != nil {
		return err
	}

	renderer := pdf.NewEstimateRenderer(pdf.WithCompression(cfg.PDF.Compress))
	estimateUseCase := usecase.NewEstimateUseCase(renderer)
	voiceUseCase := usecase.NewVoiceEstimateUseCase(storage.NewTempAudioStore(cfg.Upload.TempDir), transcriber, extractor)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	transcriptionHandler := handlers.NewTranscriptionHandler(voiceUseCase, cfg.Upload.MaxBytes)

	// Public routes live at the root; the frontend calls them without a prefix.
	root := router.Group("")
	addPingRoutes(root)
	addEstimateRoutes(root, cfg.Upload.MaxBytes, estimateHandler, transcriptionHandler)
	return nil
}

// newProviders picks the OpenAI clients, or local stubs in mock mode.
func newProviders(cfg config.OpenAIConfig) (interfaces.ITranscriber, interfaces.IEstimateExtractor, error) {
	if cfg.Mock {
		log.Warn().Msg("[MOCK] OPENAI_MOCK enabled; speech and extraction providers are stubbed")
		return openai.StubTranscriber{}, openai.StubExtractor{}, nil
	}

	client, err := openai.NewClient(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("openai client not configured: %w", err)
	}
	return openai.NewTranscriber(client, cfg.TranscriptionModel, cfg.TranscriptionTimeout),
		openai.NewExtractor(client, cfg.CompletionModel, cfg.CompletionTimeout),
		nil
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.Origins))
}
