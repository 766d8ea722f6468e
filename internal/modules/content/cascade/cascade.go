// Package cascade holds the multi-table deletes shared by the content services.
// They run inside the caller's transaction and mirror the ON DELETE CASCADE constraints,
// so the result is the same on connections where the database does not enforce them.
package cascade

import (
	"github.com/mx-space/blog/internal/models"
	"gorm.io/gorm"
)

// CategorySubtree returns id followed by the ids of every category below it.
func CategorySubtree(tx *gorm.DB, id uint) ([]uint, error) {
	ids := []uint{id}
	seen := map[uint]bool{id: true}
	frontier := []uint{id}

	for len(frontier) > 0 {
		var children []uint
		if err := tx.Model(&models.CategoryModel{}).
			Where("parent_category_id IN ?", frontier).
			Pluck("id", &children).Error; err != nil {
			return nil, err
		}

		next := make([]uint, 0, len(children))
		for _, child := range children {
			if seen[child] {
				continue
			}
			seen[child] = true
			ids = append(ids, child)
			next = append(next, child)
		}
		frontier = next
	}
	return ids, nil
}

// DeleteArticles removes the articles matching the condition and their tag links.
func DeleteArticles(tx *gorm.DB, query interface{}, args ...interface{}) (int64, error) {
	var ids []uint
	if err := tx.Model(&models.ArticleModel{}).Where(query, args...).Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	if err := UnlinkTags(tx, "article_id", ids); err != nil {
		return 0, err
	}
	res := tx.Where("id IN ?", ids).Delete(&models.ArticleModel{})
	return res.RowsAffected, res.Error
}

// UnlinkTags deletes article_tags rows whose column ("article_id" or "tag_id") is in ids.
func UnlinkTags(tx *gorm.DB, column string, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.Exec("DELETE FROM "+models.ArticleTagsTable+" WHERE "+column+" IN ?", ids).Error
}
