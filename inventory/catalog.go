package inventory

import (
	"context"
	"math"
	"strings"

	"gorm.io/gorm"

	"github.com/umar710/Inventory-Management-Backend/models"
)

// Catalog owns the product rows: validation, name uniqueness, and the
// list queries. It knows nothing about history; the Service decides when
// a change is worth an audit entry.
type Catalog struct {
	db *gorm.DB
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// ProductInput carries the five mutable product fields.
type ProductInput struct {
	Name     string `json:"name"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
	Brand    string `json:"brand"`
	Stock    int    `json:"stock"`
}

func (in ProductInput) validate() error {
	if in.Name == "" {
		return &InvalidInputError{Field: "name", Reason: "Name is required"}
	}
	if in.Stock < 0 {
		return &InvalidInputError{Field: "stock", Reason: "Stock must be a non-negative integer"}
	}
	return nil
}

// Create inserts a new product. The duplicate pre-check and the unique
// index both report ErrDuplicateName.
func (c *Catalog) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var count int64
	if err := c.db.WithContext(ctx).Model(&models.Product{}).
		Where("name = ?", in.Name).Count(&count).Error; err != nil {
		return nil, translate(err)
	}
	if count > 0 {
		return nil, ErrDuplicateName
	}

	product := &models.Product{
		Name:     in.Name,
		Unit:     in.Unit,
		Category: in.Category,
		Brand:    in.Brand,
		Stock:    in.Stock,
	}
	if err := c.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, translate(err)
	}
	product.DeriveStatus()
	return product, nil
}

// Get returns one product with derived status.
func (c *Catalog) Get(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := c.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, translate(err)
	}
	product.DeriveStatus()
	return &product, nil
}

// Update replaces all five mutable fields and returns the post-update row.
func (c *Catalog) Update(ctx context.Context, id uint, in ProductInput) (*models.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var current models.Product
	if err := c.db.WithContext(ctx).First(&current, id).Error; err != nil {
		return nil, translate(err)
	}

	var count int64
	if err := c.db.WithContext(ctx).Model(&models.Product{}).
		Where("name = ? AND id <> ?", in.Name, id).Count(&count).Error; err != nil {
		return nil, translate(err)
	}
	if count > 0 {
		return nil, ErrDuplicateName
	}

	updates := map[string]interface{}{
		"name":     in.Name,
		"unit":     in.Unit,
		"category": in.Category,
		"brand":    in.Brand,
		"stock":    in.Stock,
	}
	if err := c.db.WithContext(ctx).Model(&current).Updates(updates).Error; err != nil {
		return nil, translate(err)
	}
	return c.Get(ctx, id)
}

// Delete removes the product permanently and returns the pre-deletion
// snapshot, which the Service needs for the deletion history entry.
func (c *Catalog) Delete(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := c.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, translate(err)
	}
	if err := c.db.WithContext(ctx).Delete(&models.Product{}, id).Error; err != nil {
		return nil, translate(err)
	}
	product.DeriveStatus()
	return &product, nil
}

// ListOptions narrows and orders a product listing.
type ListOptions struct {
	Search   string // case-insensitive substring over name OR brand
	Category string // exact match
	Sort     string
	Order    string
	Page     int // 1-indexed
	Limit    int
}

// ListResult is one page of products plus the pre-pagination totals.
type ListResult struct {
	Products []models.Product
	Total    int64
	Page     int
	Limit    int
	Pages    int
}

var sortFields = map[string]string{
	"name":       "name",
	"category":   "category",
	"brand":      "brand",
	"stock":      "stock",
	"created_at": "created_at",
}

func (c *Catalog) List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	page := opts.Page
	limit := opts.Limit
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	} else if limit > 100 {
		limit = 100
	}

	query := c.db.WithContext(ctx).Model(&models.Product{})
	if opts.Search != "" {
		pattern := "%" + strings.ToLower(opts.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(brand) LIKE ?", pattern, pattern)
	}
	if opts.Category != "" {
		query = query.Where("category = ?", opts.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, translate(err)
	}

	// Unknown sort fields fall back to name; anything but desc sorts asc.
	field, ok := sortFields[opts.Sort]
	if !ok {
		field = "name"
	}
	direction := "ASC"
	if strings.EqualFold(opts.Order, "desc") {
		direction = "DESC"
	}

	var products []models.Product
	err := query.Order(field + " " + direction).
		Offset((page - 1) * limit).Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, translate(err)
	}
	for i := range products {
		products[i].DeriveStatus()
	}

	return &ListResult{
		Products: products,
		Total:    total,
		Page:     page,
		Limit:    limit,
		Pages:    int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

// All returns every product with derived status, unpaginated. Used by the
// CSV export.
func (c *Catalog) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, translate(err)
	}
	for i := range products {
		products[i].DeriveStatus()
	}
	return products, nil
}

// Categories returns the distinct non-empty category names.
func (c *Catalog) Categories(ctx context.Context) ([]string, error) {
	categories := []string{}
	err := c.db.WithContext(ctx).Model(&models.Product{}).
		Distinct().
		Where("category IS NOT NULL AND category <> ''").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, translate(err)
	}
	return categories, nil
}
