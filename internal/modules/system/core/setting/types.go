package setting

import (
	"context"
	"errors"
	"time"

	"github.com/mx-space/blog/internal/models"
)

// SettingDTO carries the fields to write. Nil fields keep their current or default value.
type SettingDTO struct {
	SiteName            *string `json:"sitename"`
	SiteDescription     *string `json:"site_description"`
	SiteSEODescription  *string `json:"site_seo_description"`
	SiteKeywords        *string `json:"site_keywords"`
	ArticleSubLength    *int    `json:"article_sub_length"`
	SidebarArticleCount *int    `json:"sidebar_article_count"`
	SidebarCommentCount *int    `json:"sidebar_comment_count"`
	ShowGoogleAdsense   *bool   `json:"show_google_adsense"`
	GoogleAdsenseCodes  *string `json:"google_adsense_codes"`
	OpenSiteComment     *bool   `json:"open_site_comment"`
	BeianCode           *string `json:"beiancode"`
	AnalyticsCode       *string `json:"analyticscode"`
	ShowGonganCode      *bool   `json:"show_gongan_code"`
	GonganBeianCode     *string `json:"gongan_beiancode"`
	ResourcePath        *string `json:"resource_path"`
}

func (d *SettingDTO) apply(m *models.BlogSettingModel) {
	setString(&m.SiteName, d.SiteName)
	setString(&m.SiteDescription, d.SiteDescription)
	setString(&m.SiteSEODescription, d.SiteSEODescription)
	setString(&m.SiteKeywords, d.SiteKeywords)
	setInt(&m.ArticleSubLength, d.ArticleSubLength)
	setInt(&m.SidebarArticleCount, d.SidebarArticleCount)
	setInt(&m.SidebarCommentCount, d.SidebarCommentCount)
	setBool(&m.ShowGoogleAdsense, d.ShowGoogleAdsense)
	setString(&m.GoogleAdsenseCodes, d.GoogleAdsenseCodes)
	setBool(&m.OpenSiteComment, d.OpenSiteComment)
	setString(&m.BeianCode, d.BeianCode)
	setString(&m.AnalyticsCode, d.AnalyticsCode)
	setBool(&m.ShowGonganCode, d.ShowGonganCode)
	setString(&m.GonganBeianCode, d.GonganBeianCode)
	setString(&m.ResourcePath, d.ResourcePath)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// Cache is a shared store in front of the database, such as *redis.Client.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

var ErrSingleton = errors.New("only one blog setting may exist")
