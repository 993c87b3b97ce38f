// Package models defines the catalog's persisted entities and request payloads.
//
// # Entities
//
//   - Product: the catalog entry, owner of its options (cascade on delete) and
//     holder of a many-to-many tag membership (tags survive product deletion).
//   - ProductOption: a priced variant with nullable name/price, bound to one product.
//   - Tag: a shared label whose name is the natural key (unique index).
//
// # Payloads
//
// The *Payload types mirror the wire shape `{pk, name, option_set, tag_set}`.
// They use pointers throughout so handlers and the service can tell an omitted
// key apart from an explicit empty value, which drives the preserve-vs-clear
// semantics of nested lists.
package models
