/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
)

// Provides registry from config. Intended to be used by wire injectors.
func Provide(cfg Config) (*Registry, error) {
	return New(cfg)
}

// Provides collector of registry metrics.
func ProvideCollector(r *Registry) prometheus.Collector {
	return r.Collector()
}

// Registry with its metrics collector, built by WireRegistry
type WiredRegistry struct {
	Registry  *Registry
	Collector prometheus.Collector
}

// Wire provider set: Config → *Registry → prometheus.Collector
var ProviderSet = wire.NewSet(Provide, ProvideCollector)
