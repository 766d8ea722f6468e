package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mx-space/blog/cmd/blogctl/output"
	"github.com/mx-space/blog/internal/app"
	"github.com/mx-space/blog/internal/models"
	"github.com/mx-space/blog/internal/modules/content/article"
	"github.com/mx-space/blog/internal/modules/content/category"
	"github.com/mx-space/blog/internal/pkg/pagination"
	"github.com/spf13/cobra"
)

var (
	page   int
	size   int
	status string
)

var listCmd = &cobra.Command{
	Use:       "list {articles|categories|tags|links|sidebars|users}",
	Short:     "List records in their default order",
	ValidArgs: []string{"articles", "categories", "tags", "links", "sidebars", "users"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, done, err := openApp(cmd, false)
		if err != nil {
			return err
		}
		defer done()

		q := pagination.New(page, size)
		var (
			headers []string
			rows    [][]string
			data    interface{}
			pag     *pagination.Pagination
		)
		switch args[0] {
		case "articles":
			headers, rows, data, pag, err = listArticles(a, q)
		case "categories":
			headers, rows, data, err = listCategories(a)
		case "tags":
			headers, rows, data, pag, err = listTags(a, q)
		case "links":
			headers, rows, data, err = listLinks(a)
		case "sidebars":
			headers, rows, data, err = listSideBars(a)
		case "users":
			headers, rows, data, pag, err = listUsers(a, q)
		}
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if jsonOutput {
			if pag != nil {
				return output.JSON(w, map[string]interface{}{"data": data, "pagination": pag})
			}
			return output.JSON(w, data)
		}
		if len(rows) == 0 {
			output.Muted(w, "No %s found", args[0])
			return nil
		}
		output.Table(w, headers, rows)
		if pag != nil {
			output.Muted(w, "page %d/%d, %d total", pag.CurrentPage, pag.TotalPage, pag.Total)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVar(&page, "page", pagination.DefaultPage, "Page number")
	listCmd.Flags().IntVar(&size, "size", pagination.DefaultSize, "Page size (max 100)")
	listCmd.Flags().StringVar(&status, "status", "", "Article status filter: draft or published")
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func listArticles(a *app.App, q pagination.Query) ([]string, [][]string, interface{}, *pagination.Pagination, error) {
	var f article.ListFilter
	if status != "" {
		st, err := models.ParseArticleStatus(status)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		f.Status = st
	}
	items, pag, err := a.Articles.List(f, q)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		author, catName := "-", "-"
		if it.Author != nil {
			author = it.Author.DisplayName()
		}
		if it.Category != nil {
			catName = it.Category.Name
		}
		rows = append(rows, []string{
			strconv.FormatUint(uint64(it.ID), 10),
			it.Title,
			it.Status.Label(),
			it.Type.Label(),
			strconv.Itoa(it.ArticleOrder),
			formatTime(it.PubTime),
			author,
			catName,
			strings.Join(it.TagNames(), ", "),
			strconv.FormatUint(uint64(it.Views), 10),
		})
	}
	headers := []string{"ID", "Title", "Status", "Type", "Order", "Published", "Author", "Category", "Tags", "Views"}
	return headers, rows, items, &pag, nil
}

func listCategories(a *app.App) ([]string, [][]string, interface{}, error) {
	tree, err := a.Categories.Tree()
	if err != nil {
		return nil, nil, nil, err
	}
	var rows [][]string
	var walk func(nodes []category.Node, depth int)
	walk = func(nodes []category.Node, depth int) {
		for _, n := range nodes {
			c := n.Category
			rows = append(rows, []string{
				strconv.FormatUint(uint64(c.ID), 10),
				strings.Repeat("  ", depth) + c.Name,
				c.Slug,
				strconv.Itoa(c.Index),
			})
			walk(n.Children, depth+1)
		}
	}
	walk(tree, 0)
	return []string{"ID", "Name", "Slug", "Index"}, rows, tree, nil
}

func listTags(a *app.App, q pagination.Query) ([]string, [][]string, interface{}, *pagination.Pagination, error) {
	items, pag, err := a.Tags.List(q)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		count, err := a.Tags.ArticleCount(it.ID)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		rows = append(rows, []string{
			strconv.FormatUint(uint64(it.ID), 10),
			it.Name,
			it.Slug,
			strconv.FormatInt(count, 10),
		})
	}
	return []string{"ID", "Name", "Slug", "Articles"}, rows, items, &pag, nil
}

func listLinks(a *app.App) ([]string, [][]string, interface{}, error) {
	items, err := a.Links.List()
	if err != nil {
		return nil, nil, nil, err
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			strconv.Itoa(it.Sequence),
			it.Name,
			it.Link,
			it.ShowType.Label(),
			strconv.FormatBool(it.Enabled()),
		})
	}
	return []string{"Seq", "Name", "Link", "Shown on", "Enabled"}, rows, items, nil
}

func listSideBars(a *app.App) ([]string, [][]string, interface{}, error) {
	items, err := a.SideBars.List()
	if err != nil {
		return nil, nil, nil, err
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			strconv.Itoa(it.Sequence),
			it.Name,
			fmt.Sprintf("%d bytes", len(it.Content)),
			strconv.FormatBool(it.Enabled()),
		})
	}
	return []string{"Seq", "Name", "Content", "Enabled"}, rows, items, nil
}

func listUsers(a *app.App, q pagination.Query) ([]string, [][]string, interface{}, *pagination.Pagination, error) {
	items, pag, err := a.Users.List(q)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(it.ID), 10),
			it.Username,
			it.Email,
			it.Nickname,
			strconv.FormatBool(it.IsStaff),
			strconv.FormatBool(it.IsSuperuser),
			formatTime(it.LastLogin),
		})
	}
	return []string{"ID", "Username", "Email", "Nickname", "Staff", "Superuser", "Last login"}, rows, items, &pag, nil
}
