package catalog

import (
	"fmt"

	"product-catalog/feature/catalog/models"

	"gorm.io/gorm"
)

// resolveTags maps submitted tag entries to Tag rows, creating any that do not
// exist yet. Matching is by name only; a submitted pk is ignored.
//
// Entries with a missing or empty name are skipped rather than rejected, and
// duplicates within one payload collapse to a single row. Existing tags are
// never modified or deleted here.
//
// The find-or-create runs inside the caller's transaction against the unique
// index on tags.name, so a concurrent insert of the same name aborts the
// transaction instead of producing a duplicate.
func resolveTags(tx *gorm.DB, submitted []models.TagPayload) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(submitted))
	seen := make(map[string]bool, len(submitted))

	for _, entry := range submitted {
		name := entry.TagName()
		if name == "" {
			// Tolerated, not an error: clients rely on malformed entries
			// being dropped silently
			continue
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		var tag models.Tag
		if err := tx.Where(models.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
			return nil, fmt.Errorf("failed to resolve tag %q: %w", name, err)
		}
		tags = append(tags, tag)
	}

	return tags, nil
}
