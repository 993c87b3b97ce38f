// Package media stores and serves product images in object storage.
//
// Images live under "products/{id}/image" in the configured bucket. The
// feature checks product existence against the catalog database but otherwise
// keeps no state of its own: product deletion does not remove images, so an
// orphaned object is possible and tolerated.
//
// # HTTP Endpoints
//
//   - PUT    /products/:id/image : upload (raw request body)
//   - GET    /products/:id/image : download
//   - DELETE /products/:id/image : remove
package media
