/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/mdtypes/pkg/mlname"
	"github.com/voedger/mdtypes/pkg/objcache"
)

// Process-scoped registry of interned references and custom value types.
//
// Registry owns names interner, references cache and custom types cache.
// Values are never evicted.
//
// @ConcurrentAccess
type Registry struct {
	name    string
	names   *mlname.Interner
	refs    objcache.ICache[string, *MdoReference]
	customs objcache.ICache[string, *CustomType]
	metrics *metrics

	refsCount    atomic.Int64
	customsCount atomic.Int64
}

// Creates new registry and preloads references and value types from config.
//
// Returns error if config is not valid or some preloaded reference is ill-formed.
// Registry is returned even if preload fails.
func New(cfg Config) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ns := cfg.Metrics.Namespace
	if ns == "" {
		ns = DefaultMetricsNamespace
	}

	r := &Registry{
		name:    cfg.Name,
		names:   mlname.NewInterner(),
		refs:    objcache.New[string, *MdoReference](),
		customs: objcache.New[string, *CustomType](),
	}
	r.metrics = newMetrics(ns, cfg.Name, map[string]func() int{
		"names":        r.names.NamesLen,
		"references":   func() int { return int(r.refsCount.Load()) },
		"custom_types": func() int { return int(r.customsCount.Load()) },
	})

	err := r.preload(cfg.Preload)

	logger.Info(fmt.Sprintf("registry «%s» created: %d references, %d custom types preloaded",
		r.name, r.refsCount.Load(), r.customsCount.Load()))

	return r, err
}

// Creates new registry. Panics if error occurs.
func MustNew(cfg Config) *Registry {
	r, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) preload(cfg PreloadConfig) (err error) {
	for _, s := range cfg.References {
		if _, e := r.ParseMdoRef(s); e != nil {
			err = errors.Join(err, e)
		}
	}
	for _, s := range cfg.ValueTypes {
		_ = r.ValueTypeOrCompute(s)
	}
	return err
}

// Returns registry name.
func (r *Registry) Name() string { return r.name }

// Returns names interner of registry.
func (r *Registry) Names() *mlname.Interner { return r.names }

// Returns prometheus collector of registry metrics.
//
// Collector is not registered, registration is the caller's choice.
func (r *Registry) Collector() prometheus.Collector { return r.metrics }

// Returns count of interned references.
func (r *Registry) ReferencesLen() int { return int(r.refsCount.Load()) }

// Returns count of computed custom types.
func (r *Registry) CustomTypesLen() int { return int(r.customsCount.Load()) }

func (r *Registry) String() string {
	return fmt.Sprintf("registry «%s»", r.name)
}
