// internal/domain/catalog/seed.go
package catalog

// SeedProducts returns the built-in product catalog. Used directly when
// CATALOG_SOURCE=seed and as seed data for the postgres catalog source.
func SeedProducts() []Product {
	return []Product{
		{
			ID:         "e43638ce-6aa0-4b85-b27f-e1d07eb678c6",
			Name:       "Black and Gray Athletic Cotton Socks - 6 Pairs",
			Image:      "images/products/athletic-cotton-socks-6-pairs.jpg",
			PriceCents: 1090,
			Rating:     Rating{Stars: 4.5, Count: 87},
			SortOrder:  1,
		},
		{
			ID:         "15b6fc6f-327a-4ec4-896f-486349e85a3d",
			Name:       "Intermediate Size Basketball",
			Image:      "images/products/intermediate-composite-basketball.jpg",
			PriceCents: 2095,
			Rating:     Rating{Stars: 4, Count: 127},
			SortOrder:  2,
		},
		{
			ID:         "83d4ca15-0f35-48f5-b7a3-1ea210004f2e",
			Name:       "Adults Plain Cotton T-Shirt - 2 Pack",
			Image:      "images/products/adults-plain-cotton-tshirt-2-pack-teal.jpg",
			PriceCents: 799,
			Rating:     Rating{Stars: 4.5, Count: 56},
			SortOrder:  3,
		},
		{
			ID:         "54e0eccd-8f36-462b-b68a-8182611d9add",
			Name:       "Black 2 Slot Toaster - Easy Push Lever",
			Image:      "images/products/black-2-slot-toaster.jpg",
			PriceCents: 1899,
			Rating:     Rating{Stars: 5, Count: 2197},
			SortOrder:  4,
		},
		{
			ID:         "3ebe75dc-64d2-4137-8860-1f5a963e534b",
			Name:       "6 Piece White Dinner Plate Set",
			Image:      "images/products/6-piece-white-dinner-plate-set.jpg",
			PriceCents: 2067,
			Rating:     Rating{Stars: 4, Count: 37},
			SortOrder:  5,
		},
		{
			ID:         "8c9c52b5-5a19-4bcb-a5d1-158a74287c53",
			Name:       "6-Piece Nonstick, Carbon Steel Oven Bakeware Set",
			Image:      "images/products/knit-athletic-sneakers-pink.webp",
			PriceCents: 3499,
			Rating:     Rating{Stars: 4.5, Count: 175},
			SortOrder:  6,
		},
		{
			ID:         "dd82ca78-a18b-4e2a-9250-31e67412f98d",
			Name:       "Plain Hooded Fleece Sweatshirt",
			Image:      "images/products/plain-hooded-fleece-sweatshirt-yellow.jpg",
			PriceCents: 2400,
			Rating:     Rating{Stars: 4.5, Count: 317},
			SortOrder:  7,
		},
		{
			ID:         "77919bbe-0e56-475b-adde-4f24dfed3a04",
			Name:       "Luxury Towel Set - Graphite Gray",
			Image:      "images/products/luxury-tower-set-6-piece.jpg",
			PriceCents: 3599,
			Rating:     Rating{Stars: 4.5, Count: 144},
			SortOrder:  8,
		},
	}
}

// SeedDeliveryOptions returns the built-in delivery options. Declared
// order matters: the first entry is the default for new cart lines.
func SeedDeliveryOptions() []DeliveryOption {
	return []DeliveryOption{
		{ID: "1", DeliveryDays: 7, PriceCents: 0, SortOrder: 1},
		{ID: "2", DeliveryDays: 3, PriceCents: 499, SortOrder: 2},
		{ID: "3", DeliveryDays: 1, PriceCents: 999, SortOrder: 3},
	}
}
