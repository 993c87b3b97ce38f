// Package catalog implements CRUD over products with nested reconciliation.
//
// A product payload embeds a list of priced options and a list of shared tags.
// On create and update the service reconciles the persisted child records with
// the payload in a single transaction:
//
//   - Tags are resolved by name with a find-or-create against the unique name
//     index, so the same label used by many products maps to one row. A
//     submitted tag list replaces the product's whole membership set; tag rows
//     themselves are never deleted by product operations.
//   - Options are diffed by identifier (see feature/catalog/sync): matched
//     entries are updated in place, unmatched entries created, leftovers
//     deleted. An omitted option_set preserves the stored options, an empty
//     one clears them.
//
// # Components
//
//   - Service: orchestrates List/Get/Create/Update/Delete, one transaction per mutation.
//   - Handler: exposes the /products resource (GET, POST, PUT, PATCH, DELETE).
//   - Loader: registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET    /products/     : list products
//   - POST   /products/     : create with nested option_set/tag_set
//   - GET    /products/:id  : retrieve
//   - PUT    /products/:id  : full update
//   - PATCH  /products/:id  : partial update
//   - DELETE /products/:id  : delete (cascades options, keeps tags)
package catalog
