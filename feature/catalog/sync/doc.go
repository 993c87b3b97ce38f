// Package sync reconciles a product's stored option set with a submitted list.
//
// The reconciliation is split into two phases:
//
//  1. BuildPlan: a pure diff. Stored options are indexed by id and each
//     submitted entry is classified as an update (identifier matches a stored
//     option of this product) or a create (no identifier, or an identifier
//     this product does not own). Stored options left unmatched are planned
//     for deletion.
//
//  2. Apply: executes the plan on a transaction handle. The caller owns the
//     transaction boundary, so a failure anywhere rolls back the whole request.
//
// After a successful Apply the stored option set is in exact bijection with
// the submitted list: matched entries updated in place (absent fields keep
// their stored values), unmatched entries inserted, leftovers removed.
//
// # Usage
//
//	err := db.Transaction(func(tx *gorm.DB) error {
//	    plan, err := sync.Reconcile(tx, product.ID, submitted)
//	    ...
//	})
package sync
