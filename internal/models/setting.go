package models

import (
	"gorm.io/gorm"
)

const (
	DefaultArticleSubLength    = 300
	DefaultSidebarArticleCount = 10
	DefaultSidebarCommentCount = 5
	DefaultResourcePath        = "/var/www/resource/"

	// SettingID is the primary key of the only BlogSetting row.
	SettingID = 1
)

// BlogSettingModel holds site-wide configuration. The primary key is pinned to SettingID,
// so a second row fails as a duplicate key.
type BlogSettingModel struct {
	ID                  uint   `json:"id"                    gorm:"primaryKey;autoIncrement:false"`
	SiteName            string `json:"sitename"              gorm:"column:sitename;size:200;not null;default:''" validate:"max=200"`
	SiteDescription     string `json:"site_description"      gorm:"size:1000;not null;default:''"                validate:"max=1000"`
	SiteSEODescription  string `json:"site_seo_description"  gorm:"column:site_seo_description;size:1000;not null;default:''" validate:"max=1000"`
	SiteKeywords        string `json:"site_keywords"         gorm:"size:1000;not null;default:''"                validate:"max=1000"`
	ArticleSubLength    int    `json:"article_sub_length"    gorm:"not null;default:300"                         validate:"min=0"`
	SidebarArticleCount int    `json:"sidebar_article_count" gorm:"not null;default:10"                          validate:"min=0"`
	SidebarCommentCount int    `json:"sidebar_comment_count" gorm:"not null;default:5"                           validate:"min=0"`
	ShowGoogleAdsense   bool   `json:"show_google_adsense"   gorm:"not null;default:false"`
	GoogleAdsenseCodes  string `json:"google_adsense_codes"  gorm:"size:2000;default:''"                         validate:"max=2000"`
	OpenSiteComment     bool   `json:"open_site_comment"     gorm:"not null;default:true"`
	BeianCode           string `json:"beiancode"             gorm:"column:beiancode;size:2000;default:''"        validate:"max=2000"`
	AnalyticsCode       string `json:"analyticscode"         gorm:"column:analyticscode;size:1000;not null;default:''" validate:"max=1000"`
	ShowGonganCode      bool   `json:"show_gongan_code"      gorm:"not null;default:false"`
	GonganBeianCode     string `json:"gongan_beiancode"      gorm:"column:gongan_beiancode;size:2000;default:''" validate:"max=2000"`
	ResourcePath        string `json:"resource_path"         gorm:"size:300;not null;default:'/var/www/resource/'" validate:"max=300"`
}

func (BlogSettingModel) TableName() string { return "blog_settings" }

func (s *BlogSettingModel) BeforeCreate(tx *gorm.DB) error {
	s.ID = SettingID
	return nil
}

func (s *BlogSettingModel) BeforeSave(tx *gorm.DB) error {
	return Validate(s)
}

// DefaultBlogSetting returns a setting row carrying every column default.
func DefaultBlogSetting() BlogSettingModel {
	return BlogSettingModel{
		ArticleSubLength:    DefaultArticleSubLength,
		SidebarArticleCount: DefaultSidebarArticleCount,
		SidebarCommentCount: DefaultSidebarCommentCount,
		OpenSiteComment:     true,
		ResourcePath:        DefaultResourcePath,
	}
}

// ZeroDefaultColumns lists the columns whose Go zero value GORM replaces with a non-zero
// column default on insert. Writers that need the zero value re-apply these after Create.
var ZeroDefaultColumns = map[string][]string{
	"blog_settings": {"article_sub_length", "sidebar_article_count", "sidebar_comment_count", "open_site_comment", "resource_path"},
}
