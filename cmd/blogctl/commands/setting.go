package commands

import (
	"context"
	"strconv"

	"github.com/mx-space/blog/cmd/blogctl/output"
	"github.com/mx-space/blog/internal/models"
	"github.com/mx-space/blog/internal/modules/system/core/setting"
	"github.com/spf13/cobra"
)

var settingCmd = &cobra.Command{
	Use:   "setting",
	Short: "Show or change the site-wide blog setting",
}

var settingShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current setting, creating the default one if missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, done, err := openApp(cmd, false)
		if err != nil {
			return err
		}
		defer done()

		s, err := a.Settings.Get(context.Background())
		if err != nil {
			return err
		}
		return printSetting(cmd, s)
	},
}

var settingSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change setting fields",
	Long: `Change only the fields given as flags.

Examples:
  blogctl setting set --sitename "My Blog" --article-sub-length 200
  blogctl setting set --open-site-comment=false`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dto := settingFlagsToDTO(cmd)

		a, done, err := openApp(cmd, false)
		if err != nil {
			return err
		}
		defer done()

		s, err := a.Settings.Update(context.Background(), dto)
		if err != nil {
			return err
		}
		if !jsonOutput {
			output.Success(cmd.OutOrStdout(), "Setting updated")
		}
		return printSetting(cmd, s)
	},
}

var settingFlags struct {
	siteName, siteDescription, siteSEODescription, siteKeywords string
	articleSubLength, sidebarArticleCount, sidebarCommentCount  int
	showGoogleAdsense, openSiteComment, showGonganCode          bool
	googleAdsenseCodes, beianCode, analyticsCode                string
	gonganBeianCode, resourcePath                               string
}

func init() {
	rootCmd.AddCommand(settingCmd)
	settingCmd.AddCommand(settingShowCmd, settingSetCmd)

	f := settingSetCmd.Flags()
	f.StringVar(&settingFlags.siteName, "sitename", "", "Site name")
	f.StringVar(&settingFlags.siteDescription, "site-description", "", "Site description")
	f.StringVar(&settingFlags.siteSEODescription, "site-seo-description", "", "Site SEO description")
	f.StringVar(&settingFlags.siteKeywords, "site-keywords", "", "Site keywords")
	f.IntVar(&settingFlags.articleSubLength, "article-sub-length", models.DefaultArticleSubLength, "Article summary length")
	f.IntVar(&settingFlags.sidebarArticleCount, "sidebar-article-count", models.DefaultSidebarArticleCount, "Articles shown in the sidebar")
	f.IntVar(&settingFlags.sidebarCommentCount, "sidebar-comment-count", models.DefaultSidebarCommentCount, "Comments shown in the sidebar")
	f.BoolVar(&settingFlags.showGoogleAdsense, "show-google-adsense", false, "Show Google AdSense")
	f.StringVar(&settingFlags.googleAdsenseCodes, "google-adsense-codes", "", "AdSense snippet")
	f.BoolVar(&settingFlags.openSiteComment, "open-site-comment", true, "Accept comments site-wide")
	f.StringVar(&settingFlags.beianCode, "beiancode", "", "ICP filing number")
	f.StringVar(&settingFlags.analyticsCode, "analyticscode", "", "Analytics snippet")
	f.BoolVar(&settingFlags.showGonganCode, "show-gongan-code", false, "Show public security filing number")
	f.StringVar(&settingFlags.gonganBeianCode, "gongan-beiancode", "", "Public security filing number")
	f.StringVar(&settingFlags.resourcePath, "resource-path", models.DefaultResourcePath, "Static resource directory")
}

func settingFlagsToDTO(cmd *cobra.Command) *setting.SettingDTO {
	f := cmd.Flags()
	dto := &setting.SettingDTO{}
	str := func(name string, v string) *string {
		if !f.Changed(name) {
			return nil
		}
		return &v
	}
	num := func(name string, v int) *int {
		if !f.Changed(name) {
			return nil
		}
		return &v
	}
	flag := func(name string, v bool) *bool {
		if !f.Changed(name) {
			return nil
		}
		return &v
	}

	dto.SiteName = str("sitename", settingFlags.siteName)
	dto.SiteDescription = str("site-description", settingFlags.siteDescription)
	dto.SiteSEODescription = str("site-seo-description", settingFlags.siteSEODescription)
	dto.SiteKeywords = str("site-keywords", settingFlags.siteKeywords)
	dto.ArticleSubLength = num("article-sub-length", settingFlags.articleSubLength)
	dto.SidebarArticleCount = num("sidebar-article-count", settingFlags.sidebarArticleCount)
	dto.SidebarCommentCount = num("sidebar-comment-count", settingFlags.sidebarCommentCount)
	dto.ShowGoogleAdsense = flag("show-google-adsense", settingFlags.showGoogleAdsense)
	dto.GoogleAdsenseCodes = str("google-adsense-codes", settingFlags.googleAdsenseCodes)
	dto.OpenSiteComment = flag("open-site-comment", settingFlags.openSiteComment)
	dto.BeianCode = str("beiancode", settingFlags.beianCode)
	dto.AnalyticsCode = str("analyticscode", settingFlags.analyticsCode)
	dto.ShowGonganCode = flag("show-gongan-code", settingFlags.showGonganCode)
	dto.GonganBeianCode = str("gongan-beiancode", settingFlags.gonganBeianCode)
	dto.ResourcePath = str("resource-path", settingFlags.resourcePath)
	return dto
}

func printSetting(cmd *cobra.Command, s *models.BlogSettingModel) error {
	w := cmd.OutOrStdout()
	if jsonOutput {
		return output.JSON(w, s)
	}
	rows := [][]string{
		{"sitename", s.SiteName},
		{"site_description", s.SiteDescription},
		{"site_seo_description", s.SiteSEODescription},
		{"site_keywords", s.SiteKeywords},
		{"article_sub_length", strconv.Itoa(s.ArticleSubLength)},
		{"sidebar_article_count", strconv.Itoa(s.SidebarArticleCount)},
		{"sidebar_comment_count", strconv.Itoa(s.SidebarCommentCount)},
		{"show_google_adsense", strconv.FormatBool(s.ShowGoogleAdsense)},
		{"google_adsense_codes", s.GoogleAdsenseCodes},
		{"open_site_comment", strconv.FormatBool(s.OpenSiteComment)},
		{"beiancode", s.BeianCode},
		{"analyticscode", s.AnalyticsCode},
		{"show_gongan_code", strconv.FormatBool(s.ShowGonganCode)},
		{"gongan_beiancode", s.GonganBeianCode},
		{"resource_path", s.ResourcePath},
	}
	output.Table(w, []string{"Key", "Value"}, rows)
	return nil
}
