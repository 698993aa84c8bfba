// internal/models/product.go
package models

// Product is a catalog entry. Prices are decimal strings with two decimals
// ("599.00"); the currency symbol is a presentation concern.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Tagline     string   `json:"tagline"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Weight      string   `json:"weight"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	InStock     int      `json:"inStock"`
	Benefits    []string `json:"benefits"`
	Ingredients string   `json:"ingredients"`
	Usage       string   `json:"usage"`
	Variants    []string `json:"variants,omitempty"`
}

// ProductPatch is a partial update. Only non-nil fields are applied.
// Identity fields (id, slug) are deliberately absent so a patch can never
// re-key a stored record.
type ProductPatch struct {
	Name        *string   `json:"name,omitempty"`
	Tagline     *string   `json:"tagline,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *string   `json:"price,omitempty"`
	Weight      *string   `json:"weight,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Category    *string   `json:"category,omitempty"`
	InStock     *int      `json:"inStock,omitempty"`
	Benefits    *[]string `json:"benefits,omitempty"`
	Ingredients *string   `json:"ingredients,omitempty"`
	Usage       *string   `json:"usage,omitempty"`
	Variants    *[]string `json:"variants,omitempty"`
}
