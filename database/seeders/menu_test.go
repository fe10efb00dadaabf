package seeders_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/dinein/app/repositories"
	"github.com/shashiranjanraj/dinein/config"
	"github.com/shashiranjanraj/dinein/database/seeders"
)

func TestRunAllSeedsDefaultMenuIdempotently(t *testing.T) {
	config.Set("SEED_FILE", "")
	store := repositories.NewMemoryStore()
	target := seeders.Target{Menu: store.Menu()}

	var out bytes.Buffer
	require.NoError(t, seeders.RunAll(context.Background(), target, &out))
	require.NoError(t, seeders.RunAll(context.Background(), target, &out))
	assert.Contains(t, out.String(), "menu")

	items, err := store.Menu().All(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, len(seeders.DefaultMenu))
}

func TestSeedMenuFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"foodName":"Vada","price":40},{"foodName":"Upma","price":55.5}]`), 0o600))
	config.Set("SEED_FILE", path)
	t.Cleanup(func() { config.Set("SEED_FILE", "") })

	store := repositories.NewMemoryStore()
	require.NoError(t, seeders.SeedMenu(context.Background(), seeders.Target{Menu: store.Menu()}))

	item, err := store.Menu().FindByName(context.Background(), "Upma")
	require.NoError(t, err)
	assert.Equal(t, 55.5, item.Price)
}

func TestLoadMenuRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()

	noName := filepath.Join(dir, "noname.json")
	require.NoError(t, os.WriteFile(noName, []byte(`[{"price":10}]`), 0o600))
	_, err := seeders.LoadMenu(noName)
	assert.Error(t, err)

	garbage := filepath.Join(dir, "garbage.json")
	require.NoError(t, os.WriteFile(garbage, []byte(`{`), 0o600))
	_, err = seeders.LoadMenu(garbage)
	assert.Error(t, err)

	_, err = seeders.LoadMenu(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
