package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is read once at cold start and passed by value.
type Config struct {
	WebhookURL  string
	Channel     string
	MinSeverity Threshold
	Timeout     time.Duration
}

var (
	errNoWebhookURL = errors.New("no webhook url configured")
	errNoChannel    = errors.New("SLACK_CHANNEL is not set")
)

// secretSources opens the stores that can hold the webhook URL. Each is only
// opened when its env var names a secret.
type secretSources struct {
	ssm   func() (secretSource, error)
	redis func(redisURL string) (secretSource, error)
}

func newEnv() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("MIN_SEVERITY_LEVEL", string(ThresholdHigh))
	v.SetDefault("WEBHOOK_TIMEOUT", "10s")
	v.SetDefault("LOG_LEVEL", "info")
	return v
}

func loadConfig(ctx context.Context, v *viper.Viper, src secretSources) (Config, error) {
	cfg := Config{
		Channel:     strings.TrimSpace(v.GetString("SLACK_CHANNEL")),
		MinSeverity: parseThreshold(v.GetString("MIN_SEVERITY_LEVEL")),
		Timeout:     v.GetDuration("WEBHOOK_TIMEOUT"),
	}
	if cfg.Channel == "" {
		return Config{}, errNoChannel
	}
	if cfg.Timeout <= 0 {
		return Config{}, fmt.Errorf("invalid WEBHOOK_TIMEOUT %q", v.GetString("WEBHOOK_TIMEOUT"))
	}

	url, err := resolveWebhookURL(ctx, v, src)
	if err != nil {
		return Config{}, err
	}
	cfg.WebhookURL = url

	return cfg, nil
}

func resolveWebhookURL(ctx context.Context, v *viper.Viper, src secretSources) (string, error) {
	if u := strings.TrimSpace(v.GetString("WEBHOOK_URL")); u != "" {
		return u, nil
	}

	if param := v.GetString("WEBHOOK_URL_SSM_PARAM"); param != "" {
		s, err := src.ssm()
		if err != nil {
			return "", fmt.Errorf("failed to open ssm: %w", err)
		}
		return lookupSecret(ctx, s, param)
	}

	if key := v.GetString("WEBHOOK_URL_REDIS_KEY"); key != "" {
		s, err := src.redis(v.GetString("REDIS_URL"))
		if err != nil {
			return "", fmt.Errorf("failed to open redis: %w", err)
		}
		return lookupSecret(ctx, s, key)
	}

	return "", errNoWebhookURL
}

func lookupSecret(ctx context.Context, s secretSource, name string) (string, error) {
	u, err := s.lookup(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to fetch webhook url(%s): %w", name, err)
	}
	if u = strings.TrimSpace(u); u == "" {
		return "", fmt.Errorf("webhook url(%s): %w", name, errNoWebhookURL)
	}
	return u, nil
}
