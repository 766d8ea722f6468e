package category

import (
	"errors"
	"strconv"

	"github.com/mx-space/blog/internal/models"
	"github.com/mx-space/blog/internal/modules/content/cascade"
	"github.com/mx-space/blog/internal/pkg/dberr"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns every category, heaviest first.
func (s *Service) List() ([]models.CategoryModel, error) {
	var cats []models.CategoryModel
	return cats, s.db.Scopes(models.Ordered(models.CategoryModel{})).Find(&cats).Error
}

func (s *Service) GetByID(id uint) (*models.CategoryModel, error) {
	return s.first("id = ?", id)
}

func (s *Service) GetBySlug(slug string) (*models.CategoryModel, error) {
	return s.first("slug = ?", slug)
}

// GetByQuery resolves a category by id, then slug, then name.
func (s *Service) GetByQuery(query string) (*models.CategoryModel, error) {
	if id, err := strconv.ParseUint(query, 10, 64); err == nil {
		if cat, err := s.GetByID(uint(id)); err != nil || cat != nil {
			return cat, err
		}
	}
	return s.first("slug = ? OR name = ?", query, query)
}

func (s *Service) first(query interface{}, args ...interface{}) (*models.CategoryModel, error) {
	var cat models.CategoryModel
	if err := s.db.Where(query, args...).First(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

func (s *Service) Create(dto *CreateCategoryDTO) (*models.CategoryModel, error) {
	if dto.ParentCategoryID != nil {
		parent, err := s.GetByID(*dto.ParentCategoryID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrParentNotFound
		}
	}

	cat := models.CategoryModel{Name: dto.Name, Slug: dto.Slug, ParentCategoryID: dto.ParentCategoryID}
	if dto.Index != nil {
		cat.Index = *dto.Index
	}
	if err := s.db.Create(&cat).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	return &cat, nil
}

// Update applies the non-nil fields and refreshes last_mod_time.
func (s *Service) Update(id uint, dto *UpdateCategoryDTO) (*models.CategoryModel, error) {
	cat, err := s.GetByID(id)
	if err != nil || cat == nil {
		return cat, err
	}

	if dto.Name != nil {
		cat.Name = *dto.Name
	}
	if dto.Slug != nil {
		cat.Slug = *dto.Slug
	}
	if dto.Index != nil {
		cat.Index = *dto.Index
	}
	if dto.ClearParent {
		cat.ParentCategoryID = nil
	} else if dto.ParentCategoryID != nil {
		if err := s.checkParent(id, *dto.ParentCategoryID); err != nil {
			return nil, err
		}
		parentID := *dto.ParentCategoryID
		cat.ParentCategoryID = &parentID
	}
	cat.ParentCategory = nil
	cat.Touch()

	if err := s.db.Omit(clause.Associations).Save(cat).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	return cat, nil
}

// checkParent rejects a parent that is missing or that sits inside id's own subtree.
func (s *Service) checkParent(id, parentID uint) error {
	if parentID == id {
		return ErrCycle
	}
	parent, err := s.GetByID(parentID)
	if err != nil {
		return err
	}
	if parent == nil {
		return ErrParentNotFound
	}
	subtree, err := cascade.CategorySubtree(s.db, id)
	if err != nil {
		return err
	}
	for _, sub := range subtree {
		if sub == parentID {
			return ErrCycle
		}
	}
	return nil
}

// Children returns the direct sub-categories of id.
func (s *Service) Children(id uint) ([]models.CategoryModel, error) {
	var cats []models.CategoryModel
	return cats, s.db.Where("parent_category_id = ?", id).
		Scopes(models.Ordered(models.CategoryModel{})).
		Find(&cats).Error
}

// Descendants returns the ids of every category below id, not including id.
func (s *Service) Descendants(id uint) ([]uint, error) {
	ids, err := cascade.CategorySubtree(s.db, id)
	if err != nil {
		return nil, err
	}
	return ids[1:], nil
}

// Ancestors returns the chain from the top-level category down to id, inclusive.
func (s *Service) Ancestors(id uint) ([]models.CategoryModel, error) {
	var chain []models.CategoryModel
	seen := map[uint]bool{}
	next := &id
	for next != nil && !seen[*next] {
		seen[*next] = true
		cat, err := s.GetByID(*next)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			break
		}
		chain = append(chain, *cat)
		next = cat.ParentCategoryID
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

// Tree returns the top-level categories with their sub-categories nested, each level heaviest first.
func (s *Service) Tree() ([]Node, error) {
	cats, err := s.List()
	if err != nil {
		return nil, err
	}

	byParent := make(map[uint][]models.CategoryModel)
	var roots []models.CategoryModel
	known := make(map[uint]bool, len(cats))
	for _, c := range cats {
		known[c.ID] = true
	}
	for _, c := range cats {
		if c.ParentCategoryID == nil || !known[*c.ParentCategoryID] {
			roots = append(roots, c)
			continue
		}
		byParent[*c.ParentCategoryID] = append(byParent[*c.ParentCategoryID], c)
	}

	var build func(list []models.CategoryModel, depth int) []Node
	build = func(list []models.CategoryModel, depth int) []Node {
		nodes := make([]Node, 0, len(list))
		for _, c := range list {
			node := Node{Category: c}
			if depth < len(cats) {
				node.Children = build(byParent[c.ID], depth+1)
			}
			nodes = append(nodes, node)
		}
		return nodes
	}
	return build(roots, 0), nil
}

// Delete removes the category, its sub-categories and every article filed under them.
func (s *Service) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		ids, err := cascade.CategorySubtree(tx, id)
		if err != nil {
			return err
		}
		if _, err := cascade.DeleteArticles(tx, "category_id IN ?", ids); err != nil {
			return dberr.Classify(err)
		}
		return dberr.Classify(tx.Where("id IN ?", ids).Delete(&models.CategoryModel{}).Error)
	})
}
