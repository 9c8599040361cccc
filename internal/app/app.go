package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/greenmart/storefront/config"
	"github.com/greenmart/storefront/internal/adapter/httphandler"
	"github.com/greenmart/storefront/internal/adapter/kafka"
	"github.com/greenmart/storefront/internal/adapter/pagestate"
	"github.com/greenmart/storefront/internal/adapter/storage"
	"github.com/greenmart/storefront/internal/core/domain"
	"github.com/greenmart/storefront/internal/core/port"
	"github.com/greenmart/storefront/internal/core/service"
	"github.com/greenmart/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type coreServices struct {
	catalog  *service.CatalogService
	forms    *service.FormsService
	notifier *service.NotifierService
}

type App struct {
	ctx          context.Context
	cfg          config.Config
	sqldb        storage.SQLDB
	catalog      domain.Catalog
	page         *pagestate.Page
	interactions port.InteractionsProducer
	tallyProc    port.SearchTallyProcessor
	statsView    *kafka.InteractionStatsView
	services     coreServices
	httpServer   httphandler.HTTPServer

	closeProducer func()
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initPage()
	app.initInteractions()
	app.initCoreServices()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

// initPage loads the catalog and builds the page model. A database
// without cards yields an empty catalog: the page still serves, the
// filter operations keep their semantics over the empty set.
func (app *App) initPage() {
	const op = "App.initPage"

	sqldb, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.sqldb = sqldb

	repo := storage.NewCardsRepository(sqldb)
	catalog, err := repo.LoadCards(app.ctx)
	if err != nil {
		app.fallDown(op, err)
	}

	app.catalog = catalog
	app.page = pagestate.New(catalog)
}

// initInteractions wires the analytics stream when a broker is
// configured, otherwise interaction emission no-ops.
func (app *App) initInteractions() {
	const op = "App.initInteractions"

	if !app.cfg.BrokerEnabled() {
		slog.Info("broker is not configured, interactions disabled", "op", op)
		app.interactions = service.NoInteractions
		return
	}

	serde := app.makeInteractionSerde()

	producer, err := kafka.NewInteractionsProducer(
		kafka.ProducerClientOpt(
			app.ctx,
			app.cfg.Broker.SeedBrokers,
			app.cfg.Broker.Topics.Interactions,
		),
		kafka.ProducerEncoderOpt(serde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.interactions = producer
	app.closeProducer = producer.Close

	tallyProc, err := kafka.NewSearchTallyProc(
		app.cfg.Broker.SeedBrokers,
		app.cfg.Broker.Topics.Interactions,
		app.cfg.Broker.Consumers.SearchTallyGroup,
		serde,
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.tallyProc = tallyProc

	statsView, err := kafka.NewInteractionStatsView(
		app.cfg.Broker.SeedBrokers,
		app.cfg.Broker.Consumers.SearchTallyGroup,
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.statsView = &statsView
}

func (app *App) makeInteractionSerde() schema.Serde {
	const op = "App.makeInteractionSerde"

	srClient, err := sr.NewClient(sr.URLs(app.cfg.Broker.SchemaRegistryURLs...))
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	subject := app.cfg.Broker.Topics.Interactions + "-value"
	serde, err := schema.NewSerdeInteractionV1(
		app.ctx,
		schema.SubjectOpt(subject),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	return serde
}

func (app *App) initCoreServices() {
	app.services.catalog = service.NewCatalog(
		app.catalog, app.page, app.interactions, service.SearchDebounce,
	)
	app.services.notifier = service.NewNotifier(
		app.page, service.NotificationTTL,
	)
	app.services.forms = service.NewForms(
		app.page, app.services.notifier, app.interactions,
	)
}

func (app *App) initHTTPServer() {
	r := chi.NewRouter()
	r.Use(httphandler.CORSHandler())
	r.Use(httphandler.AllowJSON)

	httphandler.RegisterPage(r, app.page)
	httphandler.RegisterCatalog(r, app.services.catalog, app.page)
	httphandler.RegisterForms(r, app.services.forms, app.services.forms)
	if app.statsView != nil {
		httphandler.RegisterStats(r, app.statsView)
	}

	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, r)
}

// Run starts the HTTP server and, when configured, the tally processor.
//
// Blocks current goroutine while the processor is preparing to ready state.
func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	if app.tallyProc != nil {
		var wg sync.WaitGroup
		wg.Add(1)
		go app.tallyProc.Run(app.ctx, stopFn, &wg)
		wg.Wait()
	}
	if app.statsView != nil {
		go app.statsView.Run(app.ctx)
	}

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if app.tallyProc != nil {
		app.tallyProc.Close()
	}
	if app.closeProducer != nil {
		app.closeProducer()
	}
	app.services.notifier.Close()
	app.sqldb.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
