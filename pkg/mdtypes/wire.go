//go:generate go run github.com/google/wire/cmd/wire
//go:build wireinject
// +build wireinject

/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes

import "github.com/google/wire"

// Builds registry and its metrics collector from config.
func WireRegistry(cfg Config) (WiredRegistry, error) {
	panic(
		wire.Build(
			ProviderSet,
			wire.Struct(new(WiredRegistry), "*"),
		),
	)
}
