package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/RaikyD/charms-admin/internal/application"
	"github.com/RaikyD/charms-admin/internal/cache"
	"github.com/RaikyD/charms-admin/internal/config"
	"github.com/RaikyD/charms-admin/internal/gateway"
	"github.com/RaikyD/charms-admin/internal/kafka"
	"github.com/RaikyD/charms-admin/internal/logger"
	"github.com/RaikyD/charms-admin/internal/metrics"
	"github.com/RaikyD/charms-admin/internal/migrate"
	"github.com/RaikyD/charms-admin/internal/notify"
	"github.com/RaikyD/charms-admin/internal/ports"
	"github.com/RaikyD/charms-admin/internal/presentation"
	"github.com/RaikyD/charms-admin/internal/repository"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Init("info", "json")
		logger.Error("config load failed", "err", err)
		os.Exit(1)
	}
	logger.Init(cfg.LOG_LEVEL, cfg.LOG_FORMAT)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	gw := gateway.NewClient(cfg.GATEWAY_BASE_URL, cfg.GATEWAY_TIMEOUT,
		gateway.WithToken(cfg.GATEWAY_TOKEN),
		gateway.WithMetrics(m),
	)

	// Notifications: in-memory journal always, Postgres and Kafka when configured.
	journal := notify.NewJournal(0)
	fanout := notify.NewFanout(journal)

	var history presentation.HistoryReader
	if cfg.DB_STRING != "" {
		if err := migrate.Up(ctx, cfg.DB_STRING); err != nil {
			logger.Error("migrations failed", "err", err)
			os.Exit(1)
		}
		pool, err := pgxpool.New(ctx, cfg.DB_STRING)
		if err != nil {
			logger.Error("pgxpool new failed", "err", err)
			os.Exit(1)
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			logger.Error("db ping failed", "err", err)
			os.Exit(1)
		}
		logger.Info("db connected")

		repo := repository.NewNotificationRepository(pool)
		fanout.Add("postgres", repo)
		history = repo
	}

	if cfg.KAFKA_BROKERS != "" {
		prod := kafka.NewProducer(cfg.KAFKA_BROKERS, cfg.KAFKA_NOTIFY_TOPIC)
		defer prod.Close()
		fanout.Add("kafka", prod)
	}

	var revenueCache ports.RevenueCache
	var redisCache *cache.RevenueCache
	if cfg.REDIS_ADDR != "" {
		redisCache = cache.NewRevenueCache(cfg.REDIS_ADDR, cfg.REDIS_PASSWORD, cfg.REDIS_DB, cfg.REVENUE_CACHE_TTL)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			logger.Warn("redis unavailable, revenue cache disabled", "err", err)
		} else {
			revenueCache = redisCache
		}
	}

	// Wiring
	orders := application.NewOrdersConsole(gw, fanout, cfg.PAGE_SIZE)
	revenue := application.NewRevenueView(gw, revenueCache, fanout)
	stock := application.NewStockConsole(gw, fanout, cfg.PAGE_SIZE)
	reviews := application.NewReviewsConsole(gw, fanout)
	charms := application.NewCharmsConsole(gw, fanout, cfg.PAGE_SIZE)

	if err := orders.Refresh(ctx); err != nil {
		logger.Warn("initial orders load failed", "err", err)
	}
	if err := stock.Load(ctx); err != nil {
		logger.Warn("initial stock load failed", "err", err)
	}
	if err := reviews.Load(ctx); err != nil {
		logger.Warn("initial reviews load failed", "err", err)
	}
	if err := charms.Load(ctx); err != nil {
		logger.Warn("initial charms load failed", "err", err)
	}

	// Order events from the shop backend trigger a reload and drop cached revenue.
	if cfg.KAFKA_BROKERS != "" {
		reload := kafka.ReloaderFunc(func(ctx context.Context) error {
			if revenueCache != nil {
				if err := redisCache.Invalidate(ctx); err != nil {
					logger.Warn("revenue cache invalidate failed", "err", err)
				}
			}
			_, err := orders.LoadOrders(ctx)
			return err
		})
		_, err := kafka.StartConsumer(ctx, reload, kafka.ConsumerConfig{
			Brokers: cfg.KAFKA_BROKERS,
			Topic:   cfg.KAFKA_ORDERS_TOPIC,
			GroupID: cfg.KAFKA_GROUP_ID,
		})
		if err != nil {
			logger.Warn("order consumer not started", "err", err)
		}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(m.Middleware)
	r.Use(middleware.Timeout(60 * time.Second))

	h := presentation.NewAdminHandler(orders, revenue, stock, reviews, charms, journal, history)
	h.Register(r)
	r.Handle("/metrics", metrics.Handler(reg))

	presentation.MountStatic(r)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTP_PORT,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server crashed", "err", err)
			stop()
		}
	}()
	logger.Info("starting http", "addr", srv.Addr)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
	logger.Info("stopped")
}
