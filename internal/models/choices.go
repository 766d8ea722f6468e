package models

import (
	"fmt"
	"strings"
)

// ArticleStatus is stored as a single letter.
type ArticleStatus string

const (
	ArticleDraft     ArticleStatus = "d"
	ArticlePublished ArticleStatus = "p"
)

var articleStatusLabels = map[ArticleStatus]string{
	ArticleDraft:     "draft",
	ArticlePublished: "published",
}

func (s ArticleStatus) Valid() bool { _, ok := articleStatusLabels[s]; return ok }
func (s ArticleStatus) Label() string { return articleStatusLabels[s] }

// CommentStatus controls whether an article accepts comments.
type CommentStatus string

const (
	CommentOpen   CommentStatus = "o"
	CommentClosed CommentStatus = "c"
)

var commentStatusLabels = map[CommentStatus]string{
	CommentOpen:   "open",
	CommentClosed: "closed",
}

func (s CommentStatus) Valid() bool { _, ok := commentStatusLabels[s]; return ok }
func (s CommentStatus) Label() string { return commentStatusLabels[s] }

// ArticleType distinguishes regular posts from standalone pages.
type ArticleType string

const (
	ArticlePost ArticleType = "a"
	ArticlePage ArticleType = "p"
)

var articleTypeLabels = map[ArticleType]string{
	ArticlePost: "post",
	ArticlePage: "page",
}

func (t ArticleType) Valid() bool { _, ok := articleTypeLabels[t]; return ok }
func (t ArticleType) Label() string { return articleTypeLabels[t] }

// LinkShowType is the page context a friendship link is displayed in.
type LinkShowType string

const (
	LinkShowHome      LinkShowType = "i"
	LinkShowList      LinkShowType = "l"
	LinkShowArticle   LinkShowType = "p"
	LinkShowAll       LinkShowType = "a"
	LinkShowLinksPage LinkShowType = "s"
)

var linkShowTypeLabels = map[LinkShowType]string{
	LinkShowHome:      "home",
	LinkShowList:      "list",
	LinkShowArticle:   "article-page",
	LinkShowAll:       "site-wide",
	LinkShowLinksPage: "links-page",
}

func (t LinkShowType) Valid() bool { _, ok := linkShowTypeLabels[t]; return ok }
func (t LinkShowType) Label() string { return linkShowTypeLabels[t] }

// ParseArticleStatus accepts either the stored letter or the label.
func ParseArticleStatus(raw string) (ArticleStatus, error) {
	return parseChoice(raw, articleStatusLabels)
}

// ParseCommentStatus accepts either the stored letter or the label.
func ParseCommentStatus(raw string) (CommentStatus, error) {
	return parseChoice(raw, commentStatusLabels)
}

// ParseArticleType accepts either the stored letter or the label.
func ParseArticleType(raw string) (ArticleType, error) {
	return parseChoice(raw, articleTypeLabels)
}

// ParseLinkShowType accepts either the stored letter or the label.
func ParseLinkShowType(raw string) (LinkShowType, error) {
	return parseChoice(raw, linkShowTypeLabels)
}

func parseChoice[T ~string](raw string, labels map[T]string) (T, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := labels[T(v)]; ok {
		return T(v), nil
	}
	for code, label := range labels {
		if label == v {
			return code, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown choice %q", raw)
}
