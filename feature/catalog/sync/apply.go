package sync

import (
	"fmt"

	"product-catalog/feature/catalog/models"

	"gorm.io/gorm"
)

// Apply executes a plan against the given transaction handle. Updates run
// first, then creates, then deletions, so a freshly created option can never
// collide with a row about to be removed.
func Apply(tx *gorm.DB, productID uint, plan Plan) error {
	for i := range plan.Updates {
		if err := tx.Save(&plan.Updates[i]).Error; err != nil {
			return fmt.Errorf("failed to update option %d: %w", plan.Updates[i].ID, err)
		}
	}

	for i := range plan.Creates {
		plan.Creates[i].ProductID = productID
		if err := tx.Create(&plan.Creates[i]).Error; err != nil {
			return fmt.Errorf("failed to create option: %w", err)
		}
	}

	if len(plan.DeleteIDs) > 0 {
		// Scoped to the product so a bad id in the plan cannot touch foreign rows
		err := tx.Where("product_id = ? AND id IN ?", productID, plan.DeleteIDs).
			Delete(&models.ProductOption{}).Error
		if err != nil {
			return fmt.Errorf("failed to delete options %v: %w", plan.DeleteIDs, err)
		}
	}

	return nil
}

// Reconcile loads the product's stored options, builds a plan against the
// submitted list and applies it within the given transaction. It returns the
// executed plan so callers can log the summary.
func Reconcile(tx *gorm.DB, productID uint, submitted []models.OptionPayload) (Plan, error) {
	var existing []models.ProductOption
	if err := tx.Where("product_id = ?", productID).Order("id").Find(&existing).Error; err != nil {
		return Plan{}, fmt.Errorf("failed to load options for product %d: %w", productID, err)
	}

	plan := BuildPlan(existing, submitted)
	if err := Apply(tx, productID, plan); err != nil {
		return plan, err
	}

	return plan, nil
}
