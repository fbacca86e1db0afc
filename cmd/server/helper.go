package main

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/yourorg/amm-envconfig/internal/catalog"
	"github.com/yourorg/amm-envconfig/internal/config"
	"github.com/yourorg/amm-envconfig/internal/metrics"
	"github.com/yourorg/amm-envconfig/internal/otel"
	"github.com/yourorg/amm-envconfig/internal/resolver"
	"github.com/yourorg/amm-envconfig/internal/types"
	"github.com/yourorg/amm-envconfig/internal/walletkit"
)

// setupLogging configures the logging for the application
func setupLogging(format, level string) {
	switch strings.ToLower(format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	switch strings.ToLower(level) {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "warn", "warning":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// activeKey decodes ACTIVE_NETWORK, falling back to the default environment when unset
func activeKey(raw string) (types.EnvironmentKey, error) {
	if strings.TrimSpace(raw) == "" {
		return types.DefaultEnvironmentKey, nil
	}
	return types.ParseEnvironmentKey(raw)
}

// resolveEnvironment runs the one startup resolution against the built-in catalogs.
// m may be nil.
func resolveEnvironment(ctx context.Context, cfg config.Config, m *metrics.Metrics) (resolver.Bundle, []resolver.Warning, error) {
	key, err := activeKey(cfg.ActiveNetwork)
	if err != nil {
		return resolver.Bundle{}, nil, err
	}

	ctx, span := otel.StartResolveSpan(ctx, key.String())
	defer span.End()

	networks, contracts := catalog.DefaultNetworks(), catalog.DefaultContracts()
	if err := resolver.CheckCatalogs(networks, contracts); err != nil {
		otel.RecordError(ctx, err)
		return resolver.Bundle{}, nil, err
	}

	opts := resolver.DefaultValidationOptions()
	if !cfg.StrictValidation {
		opts = resolver.LenientValidationOptions()
	}

	bundle, warnings, err := resolver.ResolveWithOptions(key, networks, contracts, opts)
	if err != nil {
		otel.RecordError(ctx, err)
		if m != nil {
			m.ObserveFailure(err)
		}
		return resolver.Bundle{}, nil, err
	}

	if m != nil {
		m.ObserveBundle(bundle)
		m.ObserveWarnings(warnings)
	}
	return bundle, warnings, nil
}

func logWarnings(warnings []resolver.Warning) {
	for _, w := range warnings {
		logrus.WithFields(logrus.Fields{
			"kind": w.Kind,
			"key":  w.Key,
		}).Warn(w.Message)
	}
}

// buildSettings layers the optional YAML file, then environment overrides, over the defaults
func buildSettings(cfg config.Config) (walletkit.Settings, error) {
	settings := walletkit.DefaultSettings()
	if cfg.WalletKitConfig != "" {
		var err error
		if settings, err = walletkit.LoadSettingsFile(cfg.WalletKitConfig); err != nil {
			return walletkit.Settings{}, err
		}
	}
	if cfg.ProjectID != "" {
		settings.ProjectID = cfg.ProjectID
	}
	if cfg.AppURL != "" {
		settings.Metadata.URL = cfg.AppURL
	}
	return settings, nil
}
