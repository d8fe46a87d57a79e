package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	cartService "github.com/pttech/storefront/cart/service"
	"github.com/pttech/storefront/internal/config"
	"github.com/pttech/storefront/internal/log"
	"github.com/pttech/storefront/internal/otel"
	"github.com/pttech/storefront/internal/rest"
	"github.com/pttech/storefront/internal/session"
	orderService "github.com/pttech/storefront/order/service"
	productService "github.com/pttech/storefront/product/service"
	reviewService "github.com/pttech/storefront/review/service"
	userService "github.com/pttech/storefront/user/service"
)

const appName = "storefront-client"

type services struct {
	cart    *cartService.CartService
	order   orderService.OrderService
	review  reviewService.ReviewService
	catalog productService.CatalogService
	user    userService.UserService
	config  *config.Config
}

func Start() {
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.InitConfig(c, "storefront")
	logger := log.InitLogger(cfg.LogFile, cfg.Env).
		With().
		Str(log.KeyAppName, appName).
		Str(log.KeyTag, "main Start").
		Logger()
	c = logger.WithContext(c)

	logger.Info().Msg("initializing otel sdk")
	otelShutdowns, err := otel.InitOtelSdk(c, appName, cfg.Otel.Endpoint())
	if err != nil {
		logger.Warn().Err(err).Msg("otel sdk unavailable, continuing without it")
	}
	defer func() {
		if err := otel.ShutdownOtel(context.Background(), otelShutdowns); err != nil {
			logger.Error().Err(err).Msg("failed shutting down otel")
		}
	}()

	sessionPath := cfg.SessionFile
	if sessionPath == "" {
		sessionPath = session.DefaultPath()
	}
	store := session.NewStore(sessionPath)
	client := rest.NewClient(
		cfg.BaseURL,
		store,
		time.Duration(cfg.TimeoutSeconds)*time.Second,
	)

	svc := services{
		cart:    cartService.NewCartService(client, store),
		order:   orderService.NewOrderService(client, store),
		review:  reviewService.NewReviewService(client, store),
		catalog: productService.NewCatalogService(client),
		user:    userService.NewUserService(client, store),
		config:  cfg,
	}

	rootCmd := &cobra.Command{
		Use:           "storefront",
		Short:         "PTTech storefront client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		authCommand(svc),
		cartCommand(svc),
		orderCommand(svc),
		catalogCommand(svc),
		profileCommand(svc),
	)
	if err := rootCmd.ExecuteContext(c); err != nil {
		logger.Error().Err(err).Msgf("error when executing command=%s", err.Error())
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func printJson(v interface{}) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed marshaling output with error=%w", err)
	}
	fmt.Println(string(encoded))
	return nil
}
