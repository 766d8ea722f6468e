package article

import (
	"errors"
	"strings"

	"github.com/mx-space/blog/internal/models"
	"github.com/mx-space/blog/internal/modules/content/cascade"
	"github.com/mx-space/blog/internal/pkg/dberr"
	"github.com/mx-space/blog/internal/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Author").Preload("Category").Preload("Tags", func(db *gorm.DB) *gorm.DB {
		return db.Scopes(models.Ordered(models.TagModel{}))
	})
}

// List returns one page of articles in the default order with author, category and tags loaded.
func (s *Service) List(f ListFilter, q pagination.Query) ([]models.ArticleModel, pagination.Pagination, error) {
	tx, err := s.filter(f)
	if err != nil {
		return nil, pagination.Pagination{}, err
	}

	var page []models.ArticleModel
	pag, err := pagination.Paginate(tx.Scopes(models.Ordered(models.ArticleModel{})), q, &page)
	if err != nil || len(page) == 0 {
		return page, pag, err
	}

	ids := make([]uint, len(page))
	for i, a := range page {
		ids[i] = a.ID
	}
	var loaded []models.ArticleModel
	if err := s.db.Scopes(withRelations).Where("id IN ?", ids).Find(&loaded).Error; err != nil {
		return nil, pag, err
	}
	byID := make(map[uint]models.ArticleModel, len(loaded))
	for _, a := range loaded {
		byID[a.ID] = a
	}
	for i, a := range page {
		if full, ok := byID[a.ID]; ok {
			page[i] = full
		}
	}
	return page, pag, nil
}

func (s *Service) filter(f ListFilter) (*gorm.DB, error) {
	tx := s.db.Model(&models.ArticleModel{})
	if f.Status != "" {
		tx = tx.Where(map[string]interface{}{"status": f.Status})
	}
	if f.Type != "" {
		tx = tx.Where(map[string]interface{}{"type": f.Type})
	}
	if f.CategoryID != 0 {
		ids := []uint{f.CategoryID}
		if f.WithSubCategories {
			subtree, err := cascade.CategorySubtree(s.db, f.CategoryID)
			if err != nil {
				return nil, err
			}
			ids = subtree
		}
		tx = tx.Where("category_id IN ?", ids)
	}
	if f.AuthorID != 0 {
		tx = tx.Where("author_id = ?", f.AuthorID)
	}
	if f.TagID != 0 {
		tagged := s.db.Table(models.ArticleTagsTable).Select("article_id").Where("tag_id = ?", f.TagID)
		tx = tx.Where("id IN (?)", tagged)
	}
	if kw := strings.TrimSpace(f.Keyword); kw != "" {
		like := "%" + kw + "%"
		tx = tx.Where(s.db.Where("title LIKE ?", like).Or("body LIKE ?", like))
	}
	return tx, nil
}

func (s *Service) GetByID(id uint) (*models.ArticleModel, error) {
	return load(s.db.Scopes(withRelations), "id = ?", id)
}

func (s *Service) GetByTitle(title string) (*models.ArticleModel, error) {
	return load(s.db.Scopes(withRelations), "title = ?", title)
}

func load(db *gorm.DB, query interface{}, args ...interface{}) (*models.ArticleModel, error) {
	var a models.ArticleModel
	if err := db.Where(query, args...).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// Latest returns the most recently created article, or nil when there are none.
func (s *Service) Latest() (*models.ArticleModel, error) {
	var a models.ArticleModel
	err := s.db.Scopes(withRelations).Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Next returns the published article created right after id.
func (s *Service) Next(id uint) (*models.ArticleModel, error) {
	return s.neighbour("id > ?", id, false)
}

// Prev returns the published article created right before id.
func (s *Service) Prev(id uint) (*models.ArticleModel, error) {
	return s.neighbour("id < ?", id, true)
}

func (s *Service) neighbour(cond string, id uint, desc bool) (*models.ArticleModel, error) {
	var a models.ArticleModel
	err := s.db.Where(cond, id).
		Where(map[string]interface{}{"status": models.ArticlePublished}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc}).
		Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Service) Create(dto *CreateArticleDTO) (*models.ArticleModel, error) {
	a := models.ArticleModel{
		Title:         dto.Title,
		Body:          dto.Body,
		PubTime:       dto.PubTime,
		Status:        dto.Status,
		CommentStatus: dto.CommentStatus,
		Type:          dto.Type,
		ArticleOrder:  dto.ArticleOrder,
		ShowTOC:       dto.ShowTOC,
		AuthorID:      dto.AuthorID,
		CategoryID:    dto.CategoryID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&a).Error; err != nil {
			return dberr.Classify(err)
		}
		return replaceTags(tx, a.ID, dto.TagIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(a.ID)
}

func (s *Service) Update(id uint, dto *UpdateArticleDTO) (*models.ArticleModel, error) {
	a, err := load(s.db, "id = ?", id)
	if err != nil || a == nil {
		return a, err
	}

	if dto.Title != nil {
		a.Title = *dto.Title
	}
	if dto.Body != nil {
		a.Body = *dto.Body
	}
	if dto.PubTime != nil {
		a.PubTime = dto.PubTime
	}
	if dto.Status != nil {
		a.Status = *dto.Status
	}
	if dto.CommentStatus != nil {
		a.CommentStatus = *dto.CommentStatus
	}
	if dto.Type != nil {
		a.Type = *dto.Type
	}
	if dto.ArticleOrder != nil {
		a.ArticleOrder = *dto.ArticleOrder
	}
	if dto.ShowTOC != nil {
		a.ShowTOC = *dto.ShowTOC
	}
	if dto.AuthorID != nil {
		a.AuthorID = *dto.AuthorID
	}
	if dto.CategoryID != nil {
		a.CategoryID = *dto.CategoryID
	}
	a.Touch()

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(a).Error; err != nil {
			return dberr.Classify(err)
		}
		if dto.TagIDs != nil {
			return replaceTags(tx, a.ID, *dto.TagIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// SetTags replaces the article's tag set.
func (s *Service) SetTags(id uint, tagIDs []uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.ArticleModel{}).Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return dberr.ErrNotFound
		}
		return replaceTags(tx, id, tagIDs)
	})
}

// replaceTags drops every tag link of the article and links tagIDs instead.
func replaceTags(tx *gorm.DB, articleID uint, tagIDs []uint) error {
	if err := cascade.UnlinkTags(tx, "article_id", []uint{articleID}); err != nil {
		return err
	}
	ids := dedupe(tagIDs)
	if len(ids) == 0 {
		return nil
	}

	var found int64
	if err := tx.Model(&models.TagModel{}).Where("id IN ?", ids).Count(&found).Error; err != nil {
		return err
	}
	if found != int64(len(ids)) {
		return ErrTagNotFound
	}

	rows := make([]map[string]interface{}, len(ids))
	for i, tagID := range ids {
		rows[i] = map[string]interface{}{"article_id": articleID, "tag_id": tagID}
	}
	return dberr.Classify(tx.Table(models.ArticleTagsTable).Create(rows).Error)
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// IncrViews bumps the view counter in a single statement and returns the new value.
func (s *Service) IncrViews(id uint) (uint, error) {
	res := s.db.Model(&models.ArticleModel{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, dberr.ErrNotFound
	}
	var views []uint
	if err := s.db.Model(&models.ArticleModel{}).Where("id = ?", id).Pluck("views", &views).Error; err != nil {
		return 0, err
	}
	if len(views) == 0 {
		return 0, dberr.ErrNotFound
	}
	return views[0], nil
}

func (s *Service) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		_, err := cascade.DeleteArticles(tx, "id = ?", id)
		return dberr.Classify(err)
	})
}
