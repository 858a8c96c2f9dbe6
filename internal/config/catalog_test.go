package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/coverdesk/claims-go/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestLoadCatalog_Defaults(t *testing.T) {
	catalog, err := config.LoadCatalog("")
	assert.NoError(t, err)

	life, ok := catalog.OptionsFor("life")
	assert.True(t, ok)
	assert.Contains(t, life, "hospitalization")

	vehicle, ok := catalog.OptionsFor("vehicle")
	assert.True(t, ok)
	assert.Contains(t, vehicle, "accident")

	_, ok = catalog.OptionsFor("pet")
	assert.False(t, ok)
}

func TestLoadCatalog_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
claimTypes:
  - type: travel
    options: [lost-luggage, cancellation]
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	catalog, err := config.LoadCatalog(path)
	assert.NoError(t, err)

	travel, ok := catalog.OptionsFor("travel")
	assert.True(t, ok)
	assert.Equal(t, []string{"lost-luggage", "cancellation"}, travel)

	_, ok = catalog.OptionsFor("life")
	assert.False(t, ok)
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := config.LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadCatalog_EmptyCatalogRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("claimTypes: []\n"), 0o644))

	_, err := config.LoadCatalog(path)
	assert.Error(t, err)
}
