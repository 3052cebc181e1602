package bootstrap

import (
	"log/slog"

	"bookswap-engine/internal/infra/feed"
	"bookswap-engine/internal/infra/gateway"
	"bookswap-engine/internal/pkg/config"
	"bookswap-engine/internal/usecase"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewGatewayClient,
		func(c *gateway.Client) usecase.Gateway { return c },
		func(c *gateway.Client) usecase.BookCatalog { return c },
		NewFeedConsumer,
	),
)

func NewGatewayClient(cfg config.Config) *gateway.Client {
	return gateway.NewClient(
		cfg.Gateway.BaseURL,
		cfg.Gateway.Token,
		gateway.WithTimeout(cfg.Gateway.Timeout),
	)
}

func NewFeedConsumer(cfg config.Config, logger *slog.Logger) *feed.Consumer {
	return feed.NewConsumer(cfg.Feed.URL, cfg.Gateway.Token, &feed.Config{
		ReconnectDelay:    cfg.Feed.ReconnectDelay,
		MaxReconnectDelay: cfg.Feed.MaxReconnectDelay,
		PingInterval:      cfg.Feed.PingInterval,
		ReadTimeout:       cfg.Feed.ReadTimeout,
	}, logger)
}
