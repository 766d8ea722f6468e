//go:build integration

package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/mx-space/blog/internal/config"
	"github.com/mx-space/blog/internal/database"
	"github.com/mx-space/blog/internal/models"
	"github.com/mx-space/blog/internal/modules/content/article"
	"github.com/mx-space/blog/internal/modules/content/category"
	"github.com/mx-space/blog/internal/pkg/dberr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mysql"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMySQLSchema(t *testing.T) {
	ctx := context.Background()

	container, err := mysql.Run(ctx,
		"mysql:8.0.36",
		mysql.WithDatabase("blog"),
		mysql.WithUsername("blog"),
		mysql.WithPassword("secret"),
	)
	require.NoError(t, err, "start mysql")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate mysql: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "charset=utf8mb4", "parseTime=true", "loc=Local")
	require.NoError(t, err)

	db, err := database.Open(config.DriverMySQL, dsn, logger.Silent)
	require.NoError(t, err)
	exerciseSchema(t, db)
}

func TestPostgresSchema(t *testing.T) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("blog"),
		postgres.WithUsername("blog"),
		postgres.WithPassword("secret"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "start postgres")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate postgres: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.Open(config.DriverPostgres, dsn, logger.Silent)
	require.NoError(t, err)
	exerciseSchema(t, db)
}

// exerciseSchema checks the constraints that depend on the server rather than on GORM.
func exerciseSchema(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Migrate(db))

	author := models.UserModel{Username: "admin", IsActive: true}
	require.NoError(t, db.Create(&author).Error)

	cats := category.NewService(db)
	root, err := cats.Create(&category.CreateCategoryDTO{Name: "root"})
	require.NoError(t, err)
	child, err := cats.Create(&category.CreateCategoryDTO{Name: "child", ParentCategoryID: &root.ID})
	require.NoError(t, err)
	_, err = cats.Create(&category.CreateCategoryDTO{Name: "root"})
	assert.ErrorIs(t, err, dberr.ErrDuplicate)

	articles := article.NewService(db)
	a, err := articles.Create(&article.CreateArticleDTO{Title: "hello", Body: "body", AuthorID: author.ID, CategoryID: child.ID})
	require.NoError(t, err)
	_, err = articles.Create(&article.CreateArticleDTO{Title: "hello", Body: "body", AuthorID: author.ID, CategoryID: child.ID})
	assert.ErrorIs(t, err, dberr.ErrDuplicate)
	_, err = articles.Create(&article.CreateArticleDTO{Title: "ghost", Body: "body", AuthorID: 999, CategoryID: child.ID})
	assert.ErrorIs(t, err, dberr.ErrForeignKey)

	views, err := articles.IncrViews(a.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), views)

	// The database cascade alone removes the child category and its article.
	require.NoError(t, db.Delete(&models.CategoryModel{}, root.ID).Error)
	var n int64
	require.NoError(t, db.Model(&models.ArticleModel{}).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, db.Model(&models.CategoryModel{}).Count(&n).Error)
	assert.Zero(t, n)
}
