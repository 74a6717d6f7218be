/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes_test

import (
	"os"
	"testing"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/mdtypes/pkg/mdtypes"
	"github.com/voedger/mdtypes/pkg/mlname"
)

func TestMain(m *testing.M) {
	// registry creation is logged to stdout, examples output must be exact
	logger.SetLogLevel(logger.LogLevelError)
	os.Exit(m.Run())
}

func mlnameOf(en, ru string) *mlname.Name { return mlname.NewName(en, ru) }

// Returns new registry with default config and specified name
func testRegistry(name string) *mdtypes.Registry {
	cfg := mdtypes.DefaultConfig()
	cfg.Name = name
	return mdtypes.MustNew(cfg)
}
