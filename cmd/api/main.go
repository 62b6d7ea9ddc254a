package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jhoicas/ventaspro-admin-api/internal/application/auth"
	"github.com/jhoicas/ventaspro-admin-api/internal/application/importer"
	"github.com/jhoicas/ventaspro-admin-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/ventaspro-admin-api/internal/infrastructure/pdf"
	"github.com/jhoicas/ventaspro-admin-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ventaspro-admin-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/ventaspro-admin-api/internal/interfaces/http"
	"github.com/jhoicas/ventaspro-admin-api/pkg/closer"
	"github.com/jhoicas/ventaspro-admin-api/pkg/config"
	"github.com/jhoicas/ventaspro-admin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:        cfg.App.Env,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")
	if cfg.UsesDevSecret() {
		log.Warn().Msg("JWT_SECRET no definido: se usa el secreto de desarrollo")
	}

	defer log.Close()
	// fail registra el error y cierra el archivo de log antes de salir; os.Exit no ejecuta los defer.
	fail := func(err error, msg string) {
		log.Error().Err(err).Msg(msg)
		_ = log.Close()
		os.Exit(1)
	}

	res := closer.New()

	ctx := context.Background()
	if cfg.DB.Migrate {
		version, err := postgres.RunMigrations(cfg.DB.ConnectionString(), cfg.DB.MigrationsPath)
		if err != nil {
			fail(err, "migraciones")
		}
		log.Info().Uint("version", version).Msg("esquema actualizado")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail(err, "conexión a PostgreSQL")
	}
	res.Add("postgres", func(context.Context) error {
		pool.Close()
		return nil
	})

	var uploads importer.UploadStore
	switch cfg.Upload.Driver {
	case "minio":
		uploads, err = storage.NewMinioStore(ctx, storage.MinioConfig{
			Endpoint:  cfg.Upload.MinioEndpoint,
			AccessKey: cfg.Upload.MinioAccess,
			SecretKey: cfg.Upload.MinioSecret,
			Bucket:    cfg.Upload.MinioBucket,
			UseSSL:    cfg.Upload.MinioUseSSL,
		})
	default:
		uploads, err = storage.NewLocalStore(cfg.Upload.Dir)
	}
	if err != nil {
		fail(err, "almacén de archivos ("+cfg.Upload.Driver+")")
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	workerRepo := postgres.NewWorkerRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	workerUC := auth.NewWorkerUseCase(txRunner, workerRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	reportGenerator := infrapdf.NewProductReportGenerator("Reporte de productos")
	productUC := usecase.NewProductUseCase(productRepo, reportGenerator, cfg.Upload.ImageMaxBytes())
	importUC := importer.NewImportUseCase(uploads, productRepo, importer.Config{
		ExpectedFilename: cfg.Upload.CSVFilename,
		MaxConcurrency:   cfg.Import.MaxConcurrency,
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimitMB << 20,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "VentasPro Admin API",
	}))

	if cfg.Upload.Driver == "local" {
		app.Static("/uploads", cfg.Upload.Dir)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		pingCtx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "db_unavailable", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		WorkerUC:   workerUC,
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		ImportUC:   importUC,
		JWTSecret:  cfg.JWT.Secret,
	})
	// El servidor se cierra antes que el pool (orden inverso de registro).
	res.Add("http", app.ShutdownWithContext)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := res.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado de la aplicación")
	}
	log.Info().Msg("aplicación detenida")
}
