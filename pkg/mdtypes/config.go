/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/prometheus/common/model"
	"gopkg.in/yaml.v3"
)

// Registry configuration.
//
// # Example:
//
//	name: main
//	metrics:
//	  namespace: mdtypes
//	preload:
//	  references: [Catalog.Products, Документ.Заказ]
//	  valueTypes: [CatalogRef.Products]
type Config struct {
	// Registry name. Used as metrics label and in log messages
	Name string `yaml:"name"`

	Metrics MetricsConfig `yaml:"metrics"`
	Preload PreloadConfig `yaml:"preload"`
}

type MetricsConfig struct {
	// Prometheus namespace of registry metrics
	Namespace string `yaml:"namespace"`
}

// Values which are created by registry at start
type PreloadConfig struct {
	// References full names, English or Russian, e.g. `Catalog.Products`
	References []string `yaml:"references"`

	// Value type names, e.g. `CatalogRef.Products`
	ValueTypes []string `yaml:"valueTypes"`
}

// Returns default configuration: default name and metrics namespace, nothing to preload.
func DefaultConfig() Config {
	return Config{
		Name:    DefaultRegistryName,
		Metrics: MetricsConfig{Namespace: DefaultMetricsNamespace},
	}
}

// Parses YAML configuration. Omitted fields have default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse registry config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validates configuration. Returns joined errors if any.
func (c Config) Validate() (err error) {
	if strings.TrimSpace(c.Name) == "" {
		err = errors.Join(err, ErrMissed("registry name"))
	}
	if c.Metrics.Namespace != "" && !model.LegacyValidation.IsValidMetricName(c.Metrics.Namespace) {
		err = errors.Join(err, ErrInvalid("metrics namespace «%s»", c.Metrics.Namespace))
	}
	for i, r := range c.Preload.References {
		if strings.TrimSpace(r) == "" {
			err = errors.Join(err, ErrMissed("preload reference #%d", i))
		}
	}
	for i, t := range c.Preload.ValueTypes {
		if strings.TrimSpace(t) == "" {
			err = errors.Join(err, ErrMissed("preload value type #%d", i))
		}
	}
	return err
}
