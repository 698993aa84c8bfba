// internal/store/seed.go
package store

import "github.com/himalayanharvest/storefront/internal/models"

// seedProducts is the fixed catalog the store boots with. First writer wins
// on slug collisions; the seed list itself is collision-free.
func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Himalayan Raw Honey",
			Slug:        "himalayan-raw-honey",
			Tagline:     "Pure, unprocessed mountain nectar",
			Description: "Straight from the beehives of the Himalayan foothills",
			Price:       "599.00",
			Weight:      "500g",
			Image:       "/api/placeholder/honey",
			Category:    "Honey",
			InStock:     1,
			Benefits:    []string{"Rich in antioxidants", "Boosts immunity", "Natural energy"},
			Ingredients: "100% Pure Himalayan Honey",
			Usage:       "Consume 1-2 tablespoons daily",
		},
		{
			ID:          "2",
			Name:        "Organic Ghee",
			Slug:        "organic-ghee",
			Tagline:     "Golden, clarified butter",
			Description: "Traditional grass-fed ghee from mountain cows",
			Price:       "799.00",
			Weight:      "500ml",
			Image:       "/api/placeholder/ghee",
			Category:    "Ghee",
			InStock:     1,
			Benefits:    []string{"High in healthy fats", "Improves digestion", "Anti-inflammatory"},
			Ingredients: "100% Cow Ghee",
			Usage:       "Use for cooking or consume 1 teaspoon daily",
		},
		{
			ID:          "3",
			Name:        "Herbal Tea Blend",
			Slug:        "herbal-tea-blend",
			Tagline:     "Wellness in every cup",
			Description: "Blend of 7 Himalayan herbs for perfect health",
			Price:       "399.00",
			Weight:      "100g",
			Image:       "/api/placeholder/tea",
			Category:    "Tea",
			InStock:     1,
			Benefits:    []string{"Detoxifies body", "Relaxes mind", "Boosts metabolism"},
			Ingredients: "Turmeric, Ginger, Ashwagandha, Tulsi, Cardamom, Cinnamon, Cloves",
			Usage:       "Brew 1 teaspoon in hot water for 5 minutes",
		},
	}
}
