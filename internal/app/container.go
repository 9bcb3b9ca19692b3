package app

import (
	"context"
	"log"
	"os"
	"time"

	"jobfit/internal/ai/gemini"
	"jobfit/internal/config"
	"jobfit/internal/extractor"
	"jobfit/internal/fetcher"
	"jobfit/internal/gate"
	"jobfit/internal/infrastructure/cache"
	"jobfit/internal/modelrouter"
	"jobfit/internal/personalizer"
	"jobfit/internal/pkg/jwt"
	"jobfit/internal/usecase"
	"jobfit/internal/ws"
)

// Container wires the full dependency graph once at startup. Everything the
// route tree needs hangs off it; handlers never construct collaborators.
type Container struct {
	Config config.Config
	Logger *log.Logger

	JWT jwt.Service
	Hub *ws.Hub

	Extraction      usecase.ExtractionUsecase
	Matching        usecase.MatchingUsecase
	Personalization usecase.PersonalizationUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	generator, err := gemini.NewClient(initCtx, cfg.Gemini.APIKey, logger)
	if err != nil {
		return nil, err
	}

	router := modelrouter.New(cfg.Gemini.FastModel, cfg.Gemini.QualityModel)

	chain := fetcher.NewChain(logger,
		fetcher.NewScrapingBee(cfg.Fetch.ScrapingBeeAPIKey),
		fetcher.NewReader(cfg.Fetch.ReaderBaseURL),
		fetcher.NewHeadless(cfg.Fetch.HeadlessEnabled),
		fetcher.NewStatic(),
	)

	redisCache := cache.NewRedis(logger)

	hub := ws.NewHub(logger)
	ws.SetDefaultHub(hub)
	go hub.Run()

	extractionUC := usecase.NewExtractionUsecase(
		chain,
		gate.New(generator, logger),
		extractor.New(generator, logger),
		router,
		redisCache,
		cache.DefaultTTLFromEnv(),
		logger,
	)
	matchingUC := usecase.NewMatchingUsecase()
	personalizationUC := usecase.NewPersonalizationUsecase(personalizer.New(generator, logger), router)

	return &Container{
		Config:          cfg,
		Logger:          logger,
		JWT:             jwt.NewHMACService(cfg.Auth.JWTAccessSecret, 24*time.Hour),
		Hub:             hub,
		Extraction:      extractionUC,
		Matching:        matchingUC,
		Personalization: personalizationUC,
	}, nil
}

func (c *Container) Close() error {
	return nil
}
