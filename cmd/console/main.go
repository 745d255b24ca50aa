package main

import (
	"context"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"golang.org/x/text/language"

	"github.com/jhoicas/gastos-admin/internal/application/export"
	"github.com/jhoicas/gastos-admin/internal/application/usecase"
	"github.com/jhoicas/gastos-admin/internal/infrastructure/blobstore"
	infrapdf "github.com/jhoicas/gastos-admin/internal/infrastructure/pdf"
	"github.com/jhoicas/gastos-admin/internal/infrastructure/restapi"
	httpRouter "github.com/jhoicas/gastos-admin/internal/interfaces/http"
	"github.com/jhoicas/gastos-admin/pkg/config"
	"github.com/jhoicas/gastos-admin/pkg/datefmt"
	"github.com/jhoicas/gastos-admin/pkg/logger"
	"github.com/jhoicas/gastos-admin/pkg/money"
	"github.com/jhoicas/gastos-admin/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando consola")

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria")
	}
	datefmt.SetLocation(loc)

	// Backend REST
	client := restapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), log.Component("restapi"))
	expenseRepo := restapi.NewExpenseRepository(client)
	customerRepo := restapi.NewCustomerRepository(client)
	organizationRepo := restapi.NewOrganizationRepository(client)
	authGateway := restapi.NewAuthGateway(client)

	pageSize := cfg.Console.PageSize
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, pageSize)
	customerUC := usecase.NewCustomerUseCase(customerRepo, pageSize)
	organizationUC := usecase.NewOrganizationUseCase(organizationRepo, pageSize)
	authUC := usecase.NewAuthUseCase(authGateway, usecase.SessionConfig{
		Secret:     cfg.Session.Secret,
		ExpMinutes: cfg.Session.Expiration,
		Issuer:     cfg.Session.Issuer,
	})

	// PDF: reportes de gastos por rango de índices o de fechas
	formatter := money.NewFormatter(cfg.Console.CurrencyLabel, language.Und)
	exportDeps := export.Deps{
		Expenses:   expenseRepo,
		Customers:  customerRepo,
		Generator:  infrapdf.NewMarotoReportGenerator(cfg.App.Name),
		Money:      formatter,
		FetchLimit: cfg.Console.ExportFetchLimit,
	}
	documents := blobstore.New(cfg.Console.DocumentTTL(), 10*time.Minute)
	defer documents.Close()

	views, err := httpRouter.NewViews(web.TemplatesFS, formatter)
	if err != nil {
		log.Fatal().Err(err).Msg("plantillas")
	}
	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		log.Fatal().Err(err).Msg("estáticos")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gastos Admin",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ExpenseUC:      expenseUC,
		CustomerUC:     customerUC,
		OrganizationUC: organizationUC,
		AuthUC:         authUC,
		RangeExport:    export.NewRangeExportUseCase(exportDeps),
		DateExport:     export.NewDateRangeExportUseCase(exportDeps),
		Documents:      documents,
		Views:          views,
		Static:         static,
		Logger:         log,
		WriteRateLimit: cfg.HTTP.WriteRateLimit,
		SecureCookie:   cfg.App.Env == "production",
	})

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

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("consola detenida")
}
