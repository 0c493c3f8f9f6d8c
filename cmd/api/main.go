package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"ShopDemo/internal/api"
	"ShopDemo/internal/cart"
	"ShopDemo/internal/catalog"
	"ShopDemo/internal/config"
	"ShopDemo/internal/session"
	"ShopDemo/pkg/kit"
)

func main() {
	service := "shopdemo-api"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &api.Server{
		Log:      log,
		Sessions: session.NewManager(session.DevVerifier(cfg.Auth.Password), log),
		Products: catalog.NewStore(log),
		Carts:    cart.NewStore(log),
		Subs:     api.NewSubmissionLog(),
		Cfg:      cfg,
	}

	h := api.NewHandler(s, api.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsToken:   cfg.Metrics.Token,
	})

	if err := kit.RunHTTPServer(cfg.Server.Addr, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
