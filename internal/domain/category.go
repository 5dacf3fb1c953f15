package domain

// Category is one node of the category tree. The backend returns a flat
// paginated list; roots have a nil ParentID and carry their children inline.
type Category struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	NameEn   string     `json:"nameEn,omitempty"`
	NameAr   string     `json:"nameAr,omitempty"`
	ParentID *string    `json:"parentId"`
	Children []Category `json:"children,omitempty"`
	Products []Product  `json:"products,omitempty"`
}
