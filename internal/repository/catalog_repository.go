package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"catalog-service/internal/importer"
	"catalog-service/internal/models"
)

const (
	// productListCacheKey caches the full catalog listing. Brand and search
	// queries always hit the database.
	productListCacheKey = "catalog:products:all"
	productListCacheTTL = 2 * time.Minute
)

// CatalogStore is the storage contract the handlers depend on. Backed by
// Postgres in production; tests substitute fakes.
type CatalogStore interface {
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	GetProductsByBrand(ctx context.Context, brand string) ([]models.Product, error)
	SearchProducts(ctx context.Context, query string) ([]models.Product, error)
	GetAllBrands(ctx context.Context) ([]models.BrandCount, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	ReplaceAll(ctx context.Context, records []importer.Record) ([]models.Product, error)
}

// ContactStore persists contact/enquiry submissions.
type ContactStore interface {
	CreateContact(ctx context.Context, contact *models.Contact) error
}

type CatalogRepository struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewCatalogRepository(db *gorm.DB, redisClient *redis.Client) *CatalogRepository {
	return &CatalogRepository{
		db:    db,
		redis: redisClient,
	}
}

// invalidateProductListCache drops the cached catalog listing. Called after
// any write; a cache miss only costs one query.
func (r *CatalogRepository) invalidateProductListCache(ctx context.Context) {
	if r.redis == nil {
		return
	}
	_ = r.redis.Del(ctx, productListCacheKey).Err()
}

// GetAllProducts returns the full catalog, served from Redis when the cached
// copy is fresh.
func (r *CatalogRepository) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	if r.redis != nil {
		if val, err := r.redis.Get(ctx, productListCacheKey).Result(); err == nil {
			var products []models.Product
			if err := json.Unmarshal([]byte(val), &products); err == nil {
				return products, nil
			}
		}
	}

	var products []models.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}

	if r.redis != nil {
		if data, err := json.Marshal(products); err == nil {
			r.redis.Set(ctx, productListCacheKey, data, productListCacheTTL)
		}
	}

	return products, nil
}

// GetProductsByBrand returns products whose brand matches exactly, ignoring
// case.
func (r *CatalogRepository) GetProductsByBrand(ctx context.Context, brand string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("LOWER(brand) = LOWER(?)", brand).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// SearchProducts matches the query as a case-insensitive substring of the
// product name or the brand.
func (r *CatalogRepository) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	var products []models.Product
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("product_name ILIKE ? OR brand ILIKE ?", pattern, pattern).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetAllBrands aggregates product counts per brand, sorted by brand name.
// Recomputed on every call.
func (r *CatalogRepository) GetAllBrands(ctx context.Context) ([]models.BrandCount, error) {
	var brands []models.BrandCount
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("brand, COUNT(*) AS product_count").
		Group("brand").
		Order("brand ASC").
		Scan(&brands).Error
	if err != nil {
		return nil, err
	}
	return brands, nil
}

// CreateProduct inserts a single product.
func (r *CatalogRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	err := r.db.WithContext(ctx).Create(product).Error
	if err == nil {
		r.invalidateProductListCache(ctx)
	}
	return err
}

// ReplaceAll wipes the catalog and inserts the validated records as one
// transaction. Readers observe either the full old catalog or the full new
// one; any failure rolls back both phases.
func (r *CatalogRepository) ReplaceAll(ctx context.Context, records []importer.Record) ([]models.Product, error) {
	products := make([]models.Product, len(records))
	for i, rec := range records {
		products[i] = models.Product{
			ID:          uuid.New(),
			Brand:       rec.Brand,
			ProductName: rec.ProductName,
			WeightPack:  rec.WeightPack,
		}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM "products"`).Error; err != nil {
			return err
		}
		if len(products) == 0 {
			return nil
		}
		return tx.CreateInBatches(&products, 100).Error
	})
	if err != nil {
		return nil, err
	}

	r.invalidateProductListCache(ctx)
	return products, nil
}
