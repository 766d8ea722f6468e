package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoices(t *testing.T) {
	st, err := ParseArticleStatus("draft")
	require.NoError(t, err)
	assert.Equal(t, ArticleDraft, st)

	st, err = ParseArticleStatus("P")
	require.NoError(t, err)
	assert.Equal(t, ArticlePublished, st)

	show, err := ParseLinkShowType("links-page")
	require.NoError(t, err)
	assert.Equal(t, LinkShowLinksPage, show)

	typ, err := ParseArticleType("page")
	require.NoError(t, err)
	assert.Equal(t, ArticlePage, typ)

	cs, err := ParseCommentStatus("c")
	require.NoError(t, err)
	assert.Equal(t, "closed", cs.Label())

	_, err = ParseArticleStatus("archived")
	assert.Error(t, err)
}

func TestChoiceValidity(t *testing.T) {
	assert.True(t, LinkShowAll.Valid())
	assert.False(t, LinkShowType("x").Valid())
	assert.False(t, ArticleType("").Valid())
	assert.Equal(t, "site-wide", LinkShowAll.Label())
}

func TestResolveSlug(t *testing.T) {
	assert.Equal(t, "hello-world", resolveSlug("", "Hello World"))
	assert.Equal(t, "hello-world", resolveSlug(PlaceholderSlug, "Hello World"))
	assert.Equal(t, "custom", resolveSlug(" custom ", "Hello World"))
	assert.Equal(t, PlaceholderSlug, resolveSlug("", "!!!"))

	long := resolveSlug("", strings.Repeat("word ", 30))
	assert.LessOrEqual(t, len(long), 60)
	assert.False(t, strings.HasSuffix(long, "-"))
}

func TestValidateArticle(t *testing.T) {
	a := ArticleModel{Title: "t", AuthorID: 1, CategoryID: 1, Status: ArticlePublished, CommentStatus: CommentOpen, Type: ArticlePost}
	assert.NoError(t, Validate(&a))

	missing := a
	missing.AuthorID = 0
	assert.Error(t, Validate(&missing))

	bad := a
	bad.Status = "z"
	assert.Error(t, Validate(&bad))
}

func TestArticleHooksFillDefaults(t *testing.T) {
	a := ArticleModel{Title: "t", AuthorID: 1, CategoryID: 1}
	require.NoError(t, a.BeforeSave(nil))
	assert.Equal(t, ArticlePublished, a.Status)
	assert.Equal(t, CommentOpen, a.CommentStatus)
	assert.Equal(t, ArticlePost, a.Type)

	require.NoError(t, a.BeforeCreate(nil))
	require.NotNil(t, a.PubTime)
	assert.Equal(t, a.CreatedTime, *a.PubTime)
	assert.Equal(t, a.CreatedTime, a.LastModTime)
}

func TestBaseModelTimestamps(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	restore := Now
	Now = func() time.Time { return fixed }
	t.Cleanup(func() { Now = restore })

	var b BaseModel
	require.NoError(t, b.BeforeCreate(nil))
	assert.Equal(t, fixed, b.CreatedTime)
	assert.Equal(t, fixed, b.LastModTime)

	Now = func() time.Time { return fixed.Add(time.Hour) }
	b.Touch()
	assert.Equal(t, fixed, b.CreatedTime)
	assert.Equal(t, fixed.Add(time.Hour), b.LastModTime)
}

func TestUserPasswords(t *testing.T) {
	var u UserModel
	assert.ErrorIs(t, u.SetPassword(""), ErrEmptyPassword)

	require.NoError(t, u.SetPassword("hunter2"))
	assert.True(t, u.HasUsablePassword())
	assert.True(t, u.CheckPassword("hunter2"))
	assert.False(t, u.CheckPassword("hunter3"))

	u.SetUnusablePassword()
	assert.False(t, u.HasUsablePassword())
	assert.False(t, u.CheckPassword("hunter2"))
}

func TestUserDisplay(t *testing.T) {
	u := UserModel{Username: "alice", Email: "alice@example.com"}
	assert.Equal(t, "alice@example.com", u.String())
	assert.Equal(t, "alice", u.DisplayName())
	u.Nickname = "Ally"
	assert.Equal(t, "Ally", u.DisplayName())
}

func TestLinkEnabled(t *testing.T) {
	var l LinkModel
	assert.True(t, l.Enabled())
	off := false
	l.IsEnable = &off
	assert.False(t, l.Enabled())
}

func TestDefaultBlogSetting(t *testing.T) {
	s := DefaultBlogSetting()
	assert.Equal(t, 300, s.ArticleSubLength)
	assert.Equal(t, 10, s.SidebarArticleCount)
	assert.Equal(t, 5, s.SidebarCommentCount)
	assert.True(t, s.OpenSiteComment)
	assert.False(t, s.ShowGoogleAdsense)
	assert.Equal(t, "/var/www/resource/", s.ResourcePath)
	assert.NoError(t, Validate(&s))
}

func TestDefaultOrders(t *testing.T) {
	order := ArticleModel{}.DefaultOrder()
	require.Len(t, order, 2)
	assert.Equal(t, "article_order", order[0].Column.Name)
	assert.True(t, order[0].Desc)
	assert.Equal(t, "pub_time", order[1].Column.Name)
	assert.True(t, order[1].Desc)

	assert.False(t, TagModel{}.DefaultOrder()[0].Desc)
	assert.True(t, CategoryModel{}.DefaultOrder()[0].Desc)
	assert.True(t, UserModel{}.DefaultOrder()[0].Desc)
	assert.False(t, LinkModel{}.DefaultOrder()[0].Desc)
}
