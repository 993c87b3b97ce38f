package sync

import (
	"product-catalog/feature/catalog/models"
)

// Plan describes the mutations needed to make a product's stored option set
// match a submitted list exactly.
type Plan struct {
	// Creates are new options to insert. ProductID is filled in by Apply.
	Creates []models.ProductOption

	// Updates are existing options with the submitted fields merged in.
	// Fields absent from the payload keep their stored values.
	Updates []models.ProductOption

	// DeleteIDs are ids of stored options absent from the submitted list.
	DeleteIDs []uint

	// Summary provides aggregate counts for logging.
	Summary Summary
}

// Summary provides aggregate statistics for an option sync plan.
type Summary struct {
	// Submitted is the number of entries in the submitted list.
	Submitted int `json:"submitted"`
	// Created counts planned inserts.
	Created int `json:"created"`
	// Updated counts planned in-place updates.
	Updated int `json:"updated"`
	// Deleted counts planned deletions.
	Deleted int `json:"deleted"`
}

// BuildPlan diffs the stored options against the submitted list.
//
// Every submitted entry carrying an identifier that matches a stored option of
// this product becomes an update; fields missing from the entry keep the stored
// value. Everything else becomes a create, including entries whose identifier
// matches nothing here (a stale or foreign id is tolerated, not rejected).
// Stored options never matched by an entry are deleted.
//
// BuildPlan performs no I/O; use Apply to execute the plan.
func BuildPlan(existing []models.ProductOption, submitted []models.OptionPayload) Plan {
	existingByID := make(map[uint]models.ProductOption, len(existing))
	for _, opt := range existing {
		existingByID[opt.ID] = opt
	}

	plan := Plan{}
	plan.Summary.Submitted = len(submitted)
	kept := make(map[uint]bool, len(submitted))

	for _, entry := range submitted {
		id := entry.Identifier()
		if current, ok := existingByID[id]; id != 0 && ok {
			if entry.Name != nil {
				current.Name = entry.Name
			}
			if entry.Price != nil {
				current.Price = entry.Price
			}
			plan.Updates = append(plan.Updates, current)
			kept[id] = true
			continue
		}

		// No identifier, or identifier unknown for this product: create fresh.
		// Missing fields stay NULL, no defaulting.
		plan.Creates = append(plan.Creates, models.ProductOption{
			Name:  entry.Name,
			Price: entry.Price,
		})
	}

	// Iterate the stored slice rather than the map so the deletion order is stable.
	for _, opt := range existing {
		if !kept[opt.ID] {
			plan.DeleteIDs = append(plan.DeleteIDs, opt.ID)
		}
	}

	plan.Summary.Created = len(plan.Creates)
	plan.Summary.Updated = len(plan.Updates)
	plan.Summary.Deleted = len(plan.DeleteIDs)

	return plan
}
