package sync

import (
	"testing"

	"product-catalog/feature/catalog/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int64) *int64   { return &i }
func uintPtr(u uint) *uint    { return &u }

// TestBuildPlan_UpdateCreateDelete covers the three-way diff in one pass:
// one matched option updated, one new entry created, one leftover deleted.
func TestBuildPlan_UpdateCreateDelete(t *testing.T) {
	existing := []models.ProductOption{
		{ID: 1, ProductID: 7, Name: strPtr("Small"), Price: intPtr(3000)},
		{ID: 2, ProductID: 7, Name: strPtr("Large"), Price: intPtr(5000)},
	}
	submitted := []models.OptionPayload{
		{PK: uintPtr(1), Name: strPtr("Small Updated")},
		{Name: strPtr("Extra Large"), Price: intPtr(7000)},
	}

	plan := BuildPlan(existing, submitted)

	assert.Len(t, plan.Updates, 1)
	assert.Equal(t, uint(1), plan.Updates[0].ID)
	assert.Equal(t, "Small Updated", *plan.Updates[0].Name)
	// Price was not submitted, the stored value must survive
	assert.Equal(t, int64(3000), *plan.Updates[0].Price)

	assert.Len(t, plan.Creates, 1)
	assert.Equal(t, "Extra Large", *plan.Creates[0].Name)
	assert.Equal(t, int64(7000), *plan.Creates[0].Price)

	assert.Equal(t, []uint{2}, plan.DeleteIDs)

	assert.Equal(t, 2, plan.Summary.Submitted)
	assert.Equal(t, 1, plan.Summary.Created)
	assert.Equal(t, 1, plan.Summary.Updated)
	assert.Equal(t, 1, plan.Summary.Deleted)
}

// TestBuildPlan_IDKeyFallback verifies the identifier may arrive as `id`
// instead of `pk`.
func TestBuildPlan_IDKeyFallback(t *testing.T) {
	existing := []models.ProductOption{
		{ID: 3, ProductID: 1, Name: strPtr("Hot"), Price: intPtr(2500)},
	}
	submitted := []models.OptionPayload{
		{ID: uintPtr(3), Price: intPtr(2600)},
	}

	plan := BuildPlan(existing, submitted)

	assert.Len(t, plan.Updates, 1)
	assert.Equal(t, uint(3), plan.Updates[0].ID)
	assert.Equal(t, "Hot", *plan.Updates[0].Name)
	assert.Equal(t, int64(2600), *plan.Updates[0].Price)
	assert.Empty(t, plan.Creates)
	assert.Empty(t, plan.DeleteIDs)
}

// TestBuildPlan_ForeignIdentifierCreates pins the tolerant behavior for an
// identifier this product does not own: it is treated as not-found and a new
// option is created rather than the request being rejected.
func TestBuildPlan_ForeignIdentifierCreates(t *testing.T) {
	existing := []models.ProductOption{
		{ID: 1, ProductID: 7, Name: strPtr("Small"), Price: intPtr(3000)},
	}
	submitted := []models.OptionPayload{
		{PK: uintPtr(99), Name: strPtr("Stale"), Price: intPtr(100)},
	}

	plan := BuildPlan(existing, submitted)

	assert.Empty(t, plan.Updates)
	assert.Len(t, plan.Creates, 1)
	assert.Equal(t, "Stale", *plan.Creates[0].Name)
	// The stored option was not matched, so it goes away
	assert.Equal(t, []uint{1}, plan.DeleteIDs)
}

// TestBuildPlan_EmptySubmittedClearsAll verifies an explicitly empty list
// plans the deletion of every stored option.
func TestBuildPlan_EmptySubmittedClearsAll(t *testing.T) {
	existing := []models.ProductOption{
		{ID: 1, ProductID: 7},
		{ID: 2, ProductID: 7},
		{ID: 3, ProductID: 7},
	}

	plan := BuildPlan(existing, []models.OptionPayload{})

	assert.Empty(t, plan.Creates)
	assert.Empty(t, plan.Updates)
	assert.Equal(t, []uint{1, 2, 3}, plan.DeleteIDs)
	assert.Equal(t, 3, plan.Summary.Deleted)
}

// TestBuildPlan_NoFieldsCreatesUnset verifies an entry without name and price
// still creates an option with both fields NULL.
func TestBuildPlan_NoFieldsCreatesUnset(t *testing.T) {
	plan := BuildPlan(nil, []models.OptionPayload{{}})

	assert.Len(t, plan.Creates, 1)
	assert.Nil(t, plan.Creates[0].Name)
	assert.Nil(t, plan.Creates[0].Price)
}

// TestBuildPlan_ZeroIdentifierCreates verifies pk 0 counts as "no identifier".
func TestBuildPlan_ZeroIdentifierCreates(t *testing.T) {
	existing := []models.ProductOption{
		{ID: 1, ProductID: 7, Name: strPtr("Keep")},
	}
	submitted := []models.OptionPayload{
		{PK: uintPtr(0), Name: strPtr("New")},
		{PK: uintPtr(1)},
	}

	plan := BuildPlan(existing, submitted)

	assert.Len(t, plan.Creates, 1)
	assert.Equal(t, "New", *plan.Creates[0].Name)
	assert.Len(t, plan.Updates, 1)
	assert.Equal(t, "Keep", *plan.Updates[0].Name)
	assert.Empty(t, plan.DeleteIDs)
}
