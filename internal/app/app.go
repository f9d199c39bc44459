package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter/dummyjson"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/kafka"
	"github.com/niksmo/storefront/internal/adapter/metrics"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sr"
)

type outbound struct {
	productsFetcher port.ProductsFetcher
	eventsProducer  *kafka.BrowseEventsProducer
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	metrics    *metrics.Metrics
	outbound   outbound
	storefront port.Storefront
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initMetrics()
	app.initOutboundAdapters()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initMetrics() {
	app.metrics = metrics.New()
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	upstream := app.cfg.Upstream
	fetcher, err := dummyjson.NewClient(
		upstream.BaseURL,
		dummyjson.TimeoutOpt(upstream.Timeout),
		dummyjson.RateLimitOpt(upstream.RateLimit, upstream.Burst),
		dummyjson.ObserverOpt(app.metrics),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.productsFetcher = fetcher

	if !app.cfg.BrowseEventsEnabled() {
		slog.Info("browse events are disabled, no seed brokers configured")
		return
	}

	app.initEventsProducer()
}

func (app *App) initEventsProducer() {
	const op = "App.initEventsProducer"

	ctx := app.ctx
	broker := app.cfg.Broker
	topic := broker.Topics.BrowseEvents

	srClient, err := sr.NewClient(sr.URLs(broker.SchemaRegistryURLs...))
	if err != nil {
		app.fallDown(op, err)
	}

	serde, err := schema.NewSerdeBrowseEventV1(
		ctx,
		schema.SubjectOpt(topic+"-value"),
		schema.SchemaIdentifierOpt(schema.NewSchemaIdentifier(srClient)),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	var clientOpts []kgo.Opt
	if broker.TLS.Enabled() {
		tlsOpt, err := kafka.DialTLSOpt(
			broker.TLS.CAFile, broker.TLS.CertFile, broker.TLS.KeyFile,
		)
		if err != nil {
			app.fallDown(op, err)
		}
		clientOpts = append(clientOpts, tlsOpt)
	}

	producer, err := kafka.NewBrowseEventsProducer(
		kafka.ProducerClientOpt(ctx, broker.SeedBrokers, topic, clientOpts...),
		kafka.ProducerEncoderOpt(serde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.eventsProducer = &producer
}

func (app *App) initCoreService() {
	var eventsProducer port.BrowseEventsProducer
	if app.outbound.eventsProducer != nil {
		eventsProducer = app.outbound.eventsProducer
	}
	app.storefront = service.New(app.outbound.productsFetcher, eventsProducer)
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()
	httphandler.RegisterStorefront(mux, app.storefront)
	mux.Handle("GET /metrics", app.metrics.Handler())

	handler := httphandler.AllowJSON(mux)
	handler = httphandler.RecordMetrics(app.metrics, handler)
	app.httpServer = httphandler.NewHTTPServer(addr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if app.outbound.eventsProducer != nil {
		app.outbound.eventsProducer.Close()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
