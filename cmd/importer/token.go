package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vtt-importer/internal/auth"
	"github.com/KirkDiggler/vtt-importer/internal/cache"
	redisclient "github.com/KirkDiggler/vtt-importer/internal/redis"
)

var (
	tokenSessionID  string
	tokenCredential string
	tokenEndpoint   string
	tokenFallback   string
	tokenRedisAddr  string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Exchange a session credential for a bearer token",
	Long: `Token exchanges a session credential against the provider's token
service and prints the resulting bearer token. With --redis the token
cache is shared across processes.`,
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSessionID, "session-id", "", "session identifier to cache the token under")
	tokenCmd.Flags().StringVar(&tokenCredential, "credential", "", "session credential to exchange")
	tokenCmd.Flags().StringVar(&tokenEndpoint, "endpoint", "", "token exchange URL")
	tokenCmd.Flags().StringVar(&tokenFallback, "fallback", "", "fallback credential when --credential is empty")
	tokenCmd.Flags().StringVar(&tokenRedisAddr, "redis", "", "redis address for a shared token cache (optional)")

	_ = tokenCmd.MarkFlagRequired("session-id")
	_ = tokenCmd.MarkFlagRequired("endpoint")
}

func runToken(cmd *cobra.Command, args []string) error {
	tokenCache, err := buildTokenCache()
	if err != nil {
		return err
	}

	broker, err := auth.NewBroker(&auth.Config{
		HTTPClient:         &http.Client{Timeout: 30 * time.Second},
		Cache:              tokenCache,
		Endpoint:           tokenEndpoint,
		FallbackCredential: tokenFallback,
	})
	if err != nil {
		return fmt.Errorf("failed to create token broker: %w", err)
	}

	token := broker.GetBearerToken(context.Background(), tokenSessionID, tokenCredential)
	if token == "" {
		return fmt.Errorf("authentication failed for session %s", tokenSessionID)
	}

	fmt.Println(token)
	return nil
}

func buildTokenCache() (cache.Cache[string], error) {
	if tokenRedisAddr == "" {
		return cache.NewMemory[string](&cache.MemoryConfig{TTL: auth.DefaultTokenTTL}), nil
	}

	client, err := redisclient.NewClient(tokenRedisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return cache.NewRedis[string](&cache.RedisConfig{
		Client: client,
		TTL:    auth.DefaultTokenTTL,
	}), nil
}
