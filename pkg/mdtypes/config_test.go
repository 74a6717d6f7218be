/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/voedger/mdtypes/pkg/goutils/testingu/require"
	"github.com/voedger/mdtypes/pkg/mdtypes"
)

func TestParseConfig(t *testing.T) {
	require := require.New(t)

	t.Run("full config", func(t *testing.T) {
		cfg, err := mdtypes.ParseConfig([]byte(`
name: main
metrics:
  namespace: bsl
preload:
  references: [Catalog.Products, Документ.Заказ]
  valueTypes: [CatalogRef.Products]
`))
		require.NoError(err)
		require.Equal("main", cfg.Name)
		require.Equal("bsl", cfg.Metrics.Namespace)
		require.Equal([]string{"Catalog.Products", "Документ.Заказ"}, cfg.Preload.References)
		require.Equal([]string{"CatalogRef.Products"}, cfg.Preload.ValueTypes)
	})

	t.Run("omitted fields have default values", func(t *testing.T) {
		cfg, err := mdtypes.ParseConfig([]byte(`preload: {}`))
		require.NoError(err)
		require.Equal(mdtypes.DefaultConfig(), cfg)
		require.Equal(mdtypes.DefaultRegistryName, cfg.Name)
		require.Equal(mdtypes.DefaultMetricsNamespace, cfg.Metrics.Namespace)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := mdtypes.ParseConfig([]byte("name: [main"))
		require.ErrorWith(err, require.Has("parse registry config"))
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := mdtypes.ParseConfig([]byte(`
name: " "
metrics:
  namespace: 1bad-ns
preload:
  references: [""]
`))
		require.ErrorWith(err,
			require.Is(mdtypes.ErrMissedError),
			require.Is(mdtypes.ErrInvalidError),
			require.Has("registry name", "1bad-ns", "preload reference #0"))
	})

	t.Run("metrics namespace", func(t *testing.T) {
		for _, ns := range []string{"mdtypes", "_bsl", "bsl:registry", "bsl_2"} {
			cfg := mdtypes.DefaultConfig()
			cfg.Metrics.Namespace = ns
			require.NoError(cfg.Validate(), ns)
		}
		for _, ns := range []string{"2bsl", "bsl-registry", "метрики", "bsl registry"} {
			cfg := mdtypes.DefaultConfig()
			cfg.Metrics.Namespace = ns
			require.ErrorWith(cfg.Validate(), require.Is(mdtypes.ErrInvalidError), require.Has(ns))
		}
	})
}

func TestNew(t *testing.T) {
	require := require.New(t)

	t.Run("preload", func(t *testing.T) {
		cfg := mdtypes.DefaultConfig()
		cfg.Name = "preload"
		cfg.Preload.References = []string{"Catalog.Products", "Документ.Заказ"}
		cfg.Preload.ValueTypes = []string{"CatalogRef.Products", "String"}

		r, err := mdtypes.New(cfg)
		require.NoError(err)
		require.Equal("preload", r.Name())
		require.Equal(2, r.ReferencesLen())
		require.Equal(1, r.CustomTypesLen())

		ref, ok := r.FindMdoRef("Document.Заказ")
		require.True(ok)
		require.Equal(mdtypes.ObjectKind_Document, ref.Kind())

		_, ok = r.FindCustomValueType("СправочникСсылка.Products")
		require.True(ok)
	})

	t.Run("ill-formed preloaded references", func(t *testing.T) {
		cfg := mdtypes.DefaultConfig()
		cfg.Preload.References = []string{"nope", "Catalog.Products", "test.test"}

		r, err := mdtypes.New(cfg)
		require.ErrorWith(err,
			require.Is(mdtypes.ErrIllFormedReferenceError),
			require.Has("nope", "test.test"))
		require.NotNil(r)
		require.Equal(1, r.ReferencesLen())

		require.PanicsWith(func() { mdtypes.MustNew(cfg) }, require.Is(mdtypes.ErrIllFormedReferenceError))
	})

	t.Run("invalid config", func(t *testing.T) {
		r, err := mdtypes.New(mdtypes.Config{})
		require.ErrorWith(err, require.Is(mdtypes.ErrMissedError))
		require.Nil(r)
	})

	t.Run("registry names interner", func(t *testing.T) {
		r := testRegistry("names")
		require.Same(mlnameOf("Catalog", "Справочник"), r.Names().Name("Catalog", "Справочник"))
		require.Equal(1, r.Names().NamesLen())
		require.Equal("registry «names»", r.String())
	})
}

func TestProvide(t *testing.T) {
	require := require.New(t)

	r, err := mdtypes.Provide(mdtypes.DefaultConfig())
	require.NoError(err)
	require.Equal(mdtypes.DefaultRegistryName, r.Name())
	require.Same(r.Collector(), mdtypes.ProvideCollector(r))

	t.Run("wired registry", func(t *testing.T) {
		cfg := mdtypes.DefaultConfig()
		cfg.Name = "wired"
		cfg.Preload.References = []string{"Catalog.Products"}

		w, err := mdtypes.WireRegistry(cfg)
		require.NoError(err)
		require.Equal("wired", w.Registry.Name())
		require.Same(w.Registry.Collector(), w.Collector)
		require.Equal(1, w.Registry.ReferencesLen())

		reg := prometheus.NewPedanticRegistry()
		require.NoError(reg.Register(w.Collector))
	})

	t.Run("wired registry with invalid config", func(t *testing.T) {
		w, err := mdtypes.WireRegistry(mdtypes.Config{})
		require.ErrorWith(err, require.Is(mdtypes.ErrMissedError))
		require.Nil(w.Registry)
		require.Nil(w.Collector)
	})
}
