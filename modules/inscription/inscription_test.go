package inscription

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gaze-network/inscription-indexer/internal/config"
	inscriptionconfig "github.com/gaze-network/inscription-indexer/modules/inscription/config"
	badgerrepo "github.com/gaze-network/inscription-indexer/modules/inscription/repository/badger"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReleasesStoreOnError(t *testing.T) {
	badgerConf := inscriptionconfig.BadgerConfig{Path: t.TempDir()}

	var conf config.Config
	conf.Reporting.Disabled = true
	conf.Modules.Inscription = inscriptionconfig.Config{
		Database:   "badger",
		Badger:     badgerConf,
		FilterFile: filepath.Join(t.TempDir(), "missing.json"),
	}
	injector := do.New()
	do.ProvideValue[context.Context](injector, context.Background())
	do.ProvideValue(injector, conf)

	_, err := New(injector)
	require.Error(t, err)

	// the directory lock must be released
	db, err := badgerrepo.Open(badgerConf)
	require.NoError(t, err)
	assert.NoError(t, db.Close())
}
