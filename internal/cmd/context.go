package cmd

import (
	"context"

	"github.com/opsgrove/hostreport/internal/config"
)

type (
	appKey    struct{}
	configKey struct{}
	debugKey  struct{}
)

// WithApp stores the App in the context.
func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

// AppFromContext retrieves the App from the context, or nil.
func AppFromContext(ctx context.Context) *App {
	if v, ok := ctx.Value(appKey{}).(*App); ok {
		return v
	}
	return nil
}

// WithConfig stores loaded CLI config in context for downstream helpers.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFromContext retrieves CLI config from context.
func ConfigFromContext(ctx context.Context) *config.Config {
	if v, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return v
	}
	return nil
}

// WithDebug stores the debug flag in the context.
func WithDebug(ctx context.Context, debug bool) context.Context {
	return context.WithValue(ctx, debugKey{}, debug)
}

// DebugFromContext reports whether debug mode is enabled.
func DebugFromContext(ctx context.Context) bool {
	if v, ok := ctx.Value(debugKey{}).(bool); ok {
		return v
	}
	return false
}
