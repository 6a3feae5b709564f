package models

// PathSegment is one breadcrumb element on the way from a section down
// to an item. A full breadcrumb is the ordered id sequence the spec
// calls a path, enriched with display names.
type PathSegment struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Type ItemType `json:"type"`
}
