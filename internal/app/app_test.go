package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mx-space/blog/internal/app"
	"github.com/mx-space/blog/internal/config"
	"github.com/mx-space/blog/internal/modules/content/category"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) *config.AppConfig {
	t.Helper()
	cfg, err := config.Parse([]byte("env: production\ndatabase:\n  driver: sqlite\n  path: " +
		filepath.Join(t.TempDir(), "blog.db") + "\n"))
	require.NoError(t, err)
	return cfg
}

func TestNewWiresServices(t *testing.T) {
	a, err := app.New(nil, sqliteConfig(t), true)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, a.Close()) })

	cat, err := a.Categories.Create(&category.CreateCategoryDTO{Name: "misc"})
	require.NoError(t, err)
	assert.NotZero(t, cat.ID)

	s, err := a.Settings.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 300, s.ArticleSubLength)
}

func TestNewRejectsNilConfig(t *testing.T) {
	_, err := app.New(nil, nil, false)
	assert.Error(t, err)
}
