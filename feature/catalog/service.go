package catalog

import (
	"context"
	"errors"
	"fmt"

	"product-catalog/feature/catalog/models"
	"product-catalog/feature/catalog/sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrProductNotFound is returned when the requested product does not exist.
var ErrProductNotFound = errors.New("product not found")

// Service orchestrates product CRUD and the nested option/tag reconciliation.
// Every mutating operation runs inside a single transaction: either the whole
// request is reconciled or nothing is written.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// List returns all products with their options and tags.
func (s *Service) List(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0)
	err := s.db.WithContext(ctx).
		Preload("Options").
		Preload("Tags").
		Order("id").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	for i := range products {
		normalize(&products[i])
	}
	return products, nil
}

// Get returns a single product with its options and tags.
func (s *Service) Get(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Preload("Options").
		Preload("Tags").
		First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load product %d: %w", id, err)
	}
	normalize(&product)
	return &product, nil
}

// normalize keeps empty collections serializing as [] rather than null.
func normalize(p *models.Product) {
	if p.Options == nil {
		p.Options = []models.ProductOption{}
	}
	if p.Tags == nil {
		p.Tags = []models.Tag{}
	}
}

// Create persists a new product together with its submitted options and tags.
// Identifiers inside the option payload are ignored: a product that did not
// exist yet cannot own pre-existing options. Tags are resolved by name.
func (s *Service) Create(ctx context.Context, payload models.ProductPayload) (*models.Product, error) {
	var name string
	if payload.Name != nil {
		name = *payload.Name
	}

	var productID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product := models.Product{Name: name}
		if err := tx.Create(&product).Error; err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}

		if payload.TagSet != nil {
			tags, err := resolveTags(tx, *payload.TagSet)
			if err != nil {
				return err
			}
			if err := tx.Model(&product).Association("Tags").Replace(&tags); err != nil {
				return fmt.Errorf("failed to set tags: %w", err)
			}
		}

		if payload.OptionSet != nil {
			for _, entry := range *payload.OptionSet {
				option := models.ProductOption{
					ProductID: product.ID,
					Name:      entry.Name,
					Price:     entry.Price,
				}
				if err := tx.Create(&option).Error; err != nil {
					return fmt.Errorf("failed to create option: %w", err)
				}
			}
		}

		productID = product.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Product created", zap.Uint("product_id", productID), zap.String("name", name))
	return s.Get(ctx, productID)
}

// Update applies a partial or full payload to an existing product.
//
// The name changes only when submitted. A submitted tag list replaces the
// whole membership set; a submitted option list is reconciled against the
// stored options (update matched, create unmatched, delete leftovers). An
// omitted list leaves that collection untouched, while an explicitly empty
// list clears it.
func (s *Service) Update(ctx context.Context, id uint, payload models.ProductPayload) (*models.Product, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		err := tx.Preload("Options").First(&product, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load product %d: %w", id, err)
		}

		if payload.Name != nil {
			if err := tx.Model(&product).Update("name", *payload.Name).Error; err != nil {
				return fmt.Errorf("failed to update product name: %w", err)
			}
		}

		if payload.TagSet != nil {
			tags, err := resolveTags(tx, *payload.TagSet)
			if err != nil {
				return err
			}
			// Full-set semantics: the old membership is discarded, not merged
			if err := tx.Model(&product).Association("Tags").Replace(&tags); err != nil {
				return fmt.Errorf("failed to replace tags: %w", err)
			}
		}

		if payload.OptionSet != nil {
			plan, err := sync.Reconcile(tx, product.ID, *payload.OptionSet)
			if err != nil {
				return err
			}
			s.logger.Info("Options reconciled",
				zap.Uint("product_id", product.ID),
				zap.Int("created", plan.Summary.Created),
				zap.Int("updated", plan.Summary.Updated),
				zap.Int("deleted", plan.Summary.Deleted))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

// Delete removes a product and, as a consequence of exclusive ownership, all
// its options. Tag rows are untouched regardless of their remaining reference
// count; only the membership rows go away.
func (s *Service) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		err := tx.First(&product, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load product %d: %w", id, err)
		}

		if err := tx.Where("product_id = ?", id).Delete(&models.ProductOption{}).Error; err != nil {
			return fmt.Errorf("failed to delete options: %w", err)
		}

		if err := tx.Model(&product).Association("Tags").Clear(); err != nil {
			return fmt.Errorf("failed to clear tag membership: %w", err)
		}

		if err := tx.Delete(&product).Error; err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Product deleted", zap.Uint("product_id", id))
	return nil
}
