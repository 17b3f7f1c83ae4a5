package entity

// Category groups services on the storefront (e.g. "Mobile Apps").
type Category struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	Position int    `json:"position"`
}

// Service is a catalog offering a lead can be submitted against. IDs are
// human-readable slugs ("android-native") because the storefront links them.
type Service struct {
	ID            string `json:"id"`
	CategoryID    string `json:"category_id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	StartingPrice int    `json:"starting_price"` // rupees
	Position      int    `json:"position"`
}
