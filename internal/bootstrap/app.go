package bootstrap

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"energy-optimizer/internal/analyses"
	"energy-optimizer/internal/analyses/recommendations"
	"energy-optimizer/internal/services/health"
	"energy-optimizer/internal/shared/config"
	"energy-optimizer/internal/shared/server"
	"energy-optimizer/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	Catalog         *recommendations.Catalog
	Engine          *recommendations.Engine
	AnalysesService *analyses.Service
	AnalysisHandler *analyses.Handler
	Health          *health.Service
}

// Build wires the catalog, services and router from cfg.
func Build(cfg config.Config) (*App, error) {
	if err := validateOrigins(cfg.CORSAllowOrigin); err != nil {
		return nil, err
	}
	telemetry.SetDebug(cfg.Debug)

	catalog := recommendations.DefaultCatalog()
	rnd := recommendations.DefaultRand()
	if cfg.RandomSeed != nil {
		rnd = recommendations.NewSeededRand(*cfg.RandomSeed)
		telemetry.Info("bootstrap.seeded_sampling", map[string]any{"seed": *cfg.RandomSeed})
	}

	engine := recommendations.NewEngine(catalog, rnd)
	svc := analyses.NewService(engine)
	handler := analyses.NewHandler(svc)

	app := &App{
		Config:          cfg,
		Catalog:         catalog,
		Engine:          engine,
		AnalysesService: svc,
		AnalysisHandler: handler,
		Health:          health.NewService(),
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		Health:          app.Health,
		AnalysisHandler: handler,
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":            cfg.Env,
		"debug":          cfg.Debug,
		"building_types": catalog.BuildingTypes(),
	})
	return app, nil
}

// validateOrigins rejects CORS origins the cors middleware would panic on.
func validateOrigins(origins []string) error {
	for _, o := range origins {
		if o == "*" || strings.HasPrefix(o, "http://") || strings.HasPrefix(o, "https://") {
			continue
		}
		return fmt.Errorf("invalid CORS origin %q: must be * or start with http:// or https://", o)
	}
	return nil
}
