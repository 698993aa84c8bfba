// internal/store/store.go
//
// In-memory stores backing the storefront API. Everything lives in one
// process and is rebuilt from the seed catalog on start; there is no
// durability layer. Each store guards its map with a mutex so concurrent
// requests cannot lose updates on read-modify-write paths.
package store

// Store bundles the per-entity stores. It is constructed once in main and
// handed to the router by reference, which keeps tests free to build a
// fresh instance instead of sharing package state.
type Store struct {
	Catalog  *CatalogStore
	Cart     *CartStore
	Reviews  *ReviewStore
	Wishlist *WishlistStore
	Orders   *OrderStore
}

func New() *Store {
	return &Store{
		Catalog:  NewCatalogStore(),
		Cart:     NewCartStore(),
		Reviews:  NewReviewStore(),
		Wishlist: NewWishlistStore(),
		Orders:   NewOrderStore(),
	}
}
