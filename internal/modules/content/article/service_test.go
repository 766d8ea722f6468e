package article_test

import (
	"testing"
	"time"

	"github.com/mx-space/blog/internal/models"
	"github.com/mx-space/blog/internal/modules/content/article"
	"github.com/mx-space/blog/internal/pkg/dberr"
	"github.com/mx-space/blog/internal/pkg/dbtest"
	"github.com/mx-space/blog/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	svc      *article.Service
	author   models.UserModel
	category models.CategoryModel
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.New(t)
	f := &fixture{db: db, svc: article.NewService(db)}
	f.author = models.UserModel{Username: "admin", Email: "admin@example.com", IsActive: true}
	require.NoError(t, db.Create(&f.author).Error)
	f.category = models.CategoryModel{Name: "misc"}
	require.NoError(t, db.Create(&f.category).Error)
	return f
}

func (f *fixture) create(t *testing.T, dto article.CreateArticleDTO) *models.ArticleModel {
	t.Helper()
	if dto.AuthorID == 0 {
		dto.AuthorID = f.author.ID
	}
	if dto.CategoryID == 0 {
		dto.CategoryID = f.category.ID
	}
	if dto.Body == "" {
		dto.Body = "body"
	}
	a, err := f.svc.Create(&dto)
	require.NoError(t, err)
	require.NotNil(t, a)
	return a
}

func (f *fixture) tag(t *testing.T, name string) models.TagModel {
	t.Helper()
	tg := models.TagModel{Name: name}
	require.NoError(t, f.db.Create(&tg).Error)
	return tg
}

func titles(items []models.ArticleModel) []string {
	out := make([]string, len(items))
	for i, a := range items {
		out[i] = a.Title
	}
	return out
}

func TestCreateAppliesDefaults(t *testing.T) {
	f := setup(t)
	a := f.create(t, article.CreateArticleDTO{Title: "hello"})

	assert.Equal(t, models.ArticlePublished, a.Status)
	assert.Equal(t, models.CommentOpen, a.CommentStatus)
	assert.Equal(t, models.ArticlePost, a.Type)
	assert.Zero(t, a.Views)
	assert.False(t, a.ShowTOC)
	require.NotNil(t, a.PubTime)
	require.NotNil(t, a.Author)
	require.NotNil(t, a.Category)
	assert.Equal(t, "admin", a.Author.Username)
	assert.Equal(t, "misc", a.Category.Name)
}

func TestCreateRequiresAuthorAndCategory(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Create(&article.CreateArticleDTO{Title: "no author", Body: "x", CategoryID: f.category.ID})
	assert.ErrorIs(t, err, dberr.ErrRequired)

	_, err = f.svc.Create(&article.CreateArticleDTO{Title: "no category", Body: "x", AuthorID: f.author.ID})
	assert.ErrorIs(t, err, dberr.ErrRequired)

	_, err = f.svc.Create(&article.CreateArticleDTO{Title: "ghost author", Body: "x", AuthorID: 999, CategoryID: f.category.ID})
	assert.ErrorIs(t, err, dberr.ErrForeignKey)
}

func TestCreateRejectsDuplicateTitle(t *testing.T) {
	f := setup(t)
	f.create(t, article.CreateArticleDTO{Title: "same"})

	_, err := f.svc.Create(&article.CreateArticleDTO{Title: "same", Body: "x", AuthorID: f.author.ID, CategoryID: f.category.ID})
	assert.ErrorIs(t, err, dberr.ErrDuplicate)
}

func TestCreateRejectsUnknownChoice(t *testing.T) {
	f := setup(t)
	_, err := f.svc.Create(&article.CreateArticleDTO{
		Title: "odd", Body: "x", AuthorID: f.author.ID, CategoryID: f.category.ID,
		Status: models.ArticleStatus("x"),
	})
	assert.ErrorIs(t, err, dberr.ErrInvalid)
}

func TestListDefaultOrder(t *testing.T) {
	f := setup(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	at := func(d int) *time.Time { v := base.AddDate(0, 0, d); return &v }

	f.create(t, article.CreateArticleDTO{Title: "one", ArticleOrder: 1, PubTime: at(3)})
	f.create(t, article.CreateArticleDTO{Title: "five", ArticleOrder: 5, PubTime: at(1)})
	f.create(t, article.CreateArticleDTO{Title: "three-old", ArticleOrder: 3, PubTime: at(0)})
	f.create(t, article.CreateArticleDTO{Title: "three-new", ArticleOrder: 3, PubTime: at(2)})

	items, pag, err := f.svc.List(article.ListFilter{}, pagination.New(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(4), pag.Total)
	assert.Equal(t, []string{"five", "three-new", "three-old", "one"}, titles(items))
	require.NotNil(t, items[0].Author)
}

func TestListFilters(t *testing.T) {
	f := setup(t)
	child := models.CategoryModel{Name: "child", ParentCategoryID: &f.category.ID}
	require.NoError(t, f.db.Create(&child).Error)
	other := models.CategoryModel{Name: "other"}
	require.NoError(t, f.db.Create(&other).Error)
	goTag := f.tag(t, "go")

	f.create(t, article.CreateArticleDTO{Title: "root post", ArticleOrder: 3, TagIDs: []uint{goTag.ID}})
	f.create(t, article.CreateArticleDTO{Title: "child post", ArticleOrder: 2, CategoryID: child.ID})
	f.create(t, article.CreateArticleDTO{Title: "draft", ArticleOrder: 1, CategoryID: other.ID, Status: models.ArticleDraft})
	f.create(t, article.CreateArticleDTO{Title: "about", Type: models.ArticlePage, CategoryID: other.ID, Body: "contact me"})

	list := func(filter article.ListFilter) []string {
		items, _, err := f.svc.List(filter, pagination.All())
		require.NoError(t, err)
		return titles(items)
	}

	assert.Equal(t, []string{"root post"}, list(article.ListFilter{CategoryID: f.category.ID}))
	assert.Equal(t, []string{"root post", "child post"}, list(article.ListFilter{CategoryID: f.category.ID, WithSubCategories: true}))
	assert.Equal(t, []string{"draft"}, list(article.ListFilter{Status: models.ArticleDraft}))
	assert.Equal(t, []string{"about"}, list(article.ListFilter{Type: models.ArticlePage}))
	assert.Equal(t, []string{"root post"}, list(article.ListFilter{TagID: goTag.ID}))
	assert.Equal(t, []string{"about"}, list(article.ListFilter{Keyword: "contact"}))
	assert.Len(t, list(article.ListFilter{AuthorID: f.author.ID}), 4)
}

func TestUpdateReplacesTags(t *testing.T) {
	f := setup(t)
	goTag := f.tag(t, "go")
	rustTag := f.tag(t, "rust")
	a := f.create(t, article.CreateArticleDTO{Title: "hello", TagIDs: []uint{goTag.ID}})
	assert.Equal(t, []string{"go"}, a.TagNames())

	title := "hello again"
	tags := []uint{rustTag.ID, goTag.ID}
	updated, err := f.svc.Update(a.ID, &article.UpdateArticleDTO{Title: &title, TagIDs: &tags})
	require.NoError(t, err)
	assert.Equal(t, "hello again", updated.Title)
	assert.Equal(t, []string{"go", "rust"}, updated.TagNames())
	assert.False(t, updated.LastModTime.Before(a.LastModTime))

	require.NoError(t, f.svc.SetTags(a.ID, nil))
	reloaded, err := f.svc.GetByID(a.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Tags)

	assert.ErrorIs(t, f.svc.SetTags(a.ID, []uint{999}), article.ErrTagNotFound)
	assert.ErrorIs(t, f.svc.SetTags(999, nil), dberr.ErrNotFound)

	missing, err := f.svc.Update(999, &article.UpdateArticleDTO{Title: &title})
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestIncrViews(t *testing.T) {
	f := setup(t)
	a := f.create(t, article.CreateArticleDTO{Title: "hello"})

	for i := 1; i <= 3; i++ {
		views, err := f.svc.IncrViews(a.ID)
		require.NoError(t, err)
		assert.Equal(t, uint(i), views)
	}

	_, err := f.svc.IncrViews(999)
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}

func TestLatestAndNeighbours(t *testing.T) {
	f := setup(t)

	none, err := f.svc.Latest()
	require.NoError(t, err)
	assert.Nil(t, none)

	first := f.create(t, article.CreateArticleDTO{Title: "first", ArticleOrder: 9})
	f.create(t, article.CreateArticleDTO{Title: "hidden", Status: models.ArticleDraft})
	last := f.create(t, article.CreateArticleDTO{Title: "last"})

	latest, err := f.svc.Latest()
	require.NoError(t, err)
	assert.Equal(t, last.ID, latest.ID)

	next, err := f.svc.Next(first.ID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "last", next.Title)

	prev, err := f.svc.Prev(last.ID)
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, "first", prev.Title)

	end, err := f.svc.Next(last.ID)
	require.NoError(t, err)
	assert.Nil(t, end)
}

func TestDeleteUnlinksTags(t *testing.T) {
	f := setup(t)
	goTag := f.tag(t, "go")
	a := f.create(t, article.CreateArticleDTO{Title: "hello", TagIDs: []uint{goTag.ID}})

	require.NoError(t, f.svc.Delete(a.ID))

	gone, err := f.svc.GetByID(a.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	var links, tags int64
	require.NoError(t, f.db.Table(models.ArticleTagsTable).Count(&links).Error)
	require.NoError(t, f.db.Model(&models.TagModel{}).Count(&tags).Error)
	assert.Zero(t, links)
	assert.Equal(t, int64(1), tags)
}

func TestDeletingAuthorCascades(t *testing.T) {
	f := setup(t)
	f.create(t, article.CreateArticleDTO{Title: "hello"})

	require.NoError(t, f.db.Delete(&models.UserModel{}, f.author.ID).Error)

	var n int64
	require.NoError(t, f.db.Model(&models.ArticleModel{}).Count(&n).Error)
	assert.Zero(t, n)
}
