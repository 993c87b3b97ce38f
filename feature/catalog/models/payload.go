package models

// ProductPayload is the request representation of a product. Pointer fields
// distinguish an omitted key from an explicit value: a nil OptionSet leaves
// the stored options untouched, while an empty non-nil one clears them. The
// same applies to TagSet.
type ProductPayload struct {
	Name      *string          `json:"name"`
	OptionSet *[]OptionPayload `json:"option_set"`
	TagSet    *[]TagPayload    `json:"tag_set"`
}

// OptionPayload is one entry of a submitted option list. The identifier may
// arrive under either the `pk` or the `id` key; Name and Price are optional
// and absent fields mean "leave unchanged" on update.
type OptionPayload struct {
	PK    *uint   `json:"pk"`
	ID    *uint   `json:"id"`
	Name  *string `json:"name"`
	Price *int64  `json:"price"`
}

// Identifier returns the submitted option id, preferring `pk` over `id`.
// Zero means "no identifier" and always results in a create.
func (o OptionPayload) Identifier() uint {
	if o.PK != nil && *o.PK != 0 {
		return *o.PK
	}
	if o.ID != nil && *o.ID != 0 {
		return *o.ID
	}
	return 0
}

// TagPayload is one entry of a submitted tag list. Tags are matched by name,
// never by pk; a submitted pk is ignored.
type TagPayload struct {
	PK   *uint   `json:"pk"`
	Name *string `json:"name"`
}

// TagName returns the submitted name, or "" when it is missing.
func (t TagPayload) TagName() string {
	if t.Name == nil {
		return ""
	}
	return *t.Name
}
