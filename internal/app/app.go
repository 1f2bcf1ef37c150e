package app

import (
	"context"

	"fueleu-backend/internal/banking"
	"fueleu-backend/internal/config"
	"fueleu-backend/internal/database"
	"fueleu-backend/internal/health"
	"fueleu-backend/internal/metrics"
	"fueleu-backend/internal/middleware"
	"fueleu-backend/internal/pooling"
	"fueleu-backend/internal/routes"
	"fueleu-backend/internal/shipcompliance"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with all global middleware and route
// registration. The returned DB and Redis clients are nil when the
// corresponding URL is not configured; the API then runs on in-memory stores.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
	}))

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
		rdb = redis.NewClient(opt)
		app.Use(middleware.HealthMarker(rdb))
	}

	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
	}

	// Health module (GET /, GET /reset, GET /health/json, GET /health/errors)
	var pinger health.DBPinger
	if db != nil {
		pinger = &gormPinger{db: db}
	}
	healthHandlers := &health.Handlers{
		Rdb:            rdb,
		DB:             pinger,
		HealthAdminKey: cfg.HealthAdminKey,
	}
	app.Get("/", healthHandlers.Dashboard)
	app.Get("/health/json", healthHandlers.JSON)
	if rdb != nil {
		app.Get("/reset", healthHandlers.Reset)
		app.Get("/health/errors", healthHandlers.Errors)
	}

	// Prometheus metrics
	m := metrics.New()
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	// Stores: GORM-backed when a database is configured, in-memory otherwise.
	var (
		routeStore   routes.Store
		shipStore    shipcompliance.Store
		bankingStore banking.Store
		poolStore    pooling.Store
	)
	if db != nil {
		routeStore = &routes.GormStore{DB: db}
		shipStore = &shipcompliance.GormStore{DB: db}
		bankingStore = &banking.GormStore{DB: db}
		poolStore = &pooling.GormStore{DB: db}
	} else {
		routeStore = routes.NewMemoryStore(nil)
		shipStore = shipcompliance.NewMemoryStore()
		bankingStore = banking.NewMemoryStore()
		poolStore = pooling.NewMemoryStore()
	}
	if cfg.Env == "development" || db == nil {
		if err := routes.Seed(context.Background(), routeStore); err != nil {
			return nil, nil, nil, err
		}
	}

	routeService := &routes.Service{Store: routeStore}
	routeHandlers := &routes.Handlers{Service: routeService}

	shipService := &shipcompliance.Service{Store: shipStore, Calculator: routeService}
	shipHandlers := &shipcompliance.Handlers{Service: shipService, Metrics: m}

	bankingService := &banking.Service{Store: bankingStore}
	bankingHandlers := &banking.Handlers{Service: bankingService, Metrics: m}

	poolService := &pooling.Service{Store: poolStore, Compliance: shipStore}
	poolHandlers := &pooling.Handlers{Service: poolService, Metrics: m}

	v1 := app.Group("/api/v1")

	bankingGroup := v1.Group("/banking")
	bankingGroup.Post("/bank", bankingHandlers.Bank)
	bankingGroup.Post("/apply", bankingHandlers.Apply)
	bankingGroup.Get("/balance/:year", bankingHandlers.GetBalance)
	bankingGroup.Get("/banked/:year", bankingHandlers.GetBankedAmount)

	poolGroup := v1.Group("/pools")
	poolGroup.Post("/", poolHandlers.CreatePool)
	poolGroup.Get("/", poolHandlers.ListPools)
	poolGroup.Get("/:poolId", poolHandlers.GetPool)

	shipGroup := v1.Group("/ship-compliance")
	shipGroup.Post("/compute", shipHandlers.Compute)
	shipGroup.Get("/year/:year", shipHandlers.ListByYear)
	shipGroup.Get("/:shipId/:year", shipHandlers.GetByShipAndYear)

	v1.Get("/routes", routeHandlers.GetAllRoutes)
	v1.Post("/routes/:routeId/baseline", routeHandlers.SetBaseline)
	v1.Get("/routes/:routeId/comparison", routeHandlers.GetComparison)
	v1.Get("/comparisons", routeHandlers.GetAllComparisons)

	return app, db, rdb, nil
}

// gormPinger adapts *gorm.DB to the health DBPinger.
type gormPinger struct {
	db *gorm.DB
}

func (p *gormPinger) Ping() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
