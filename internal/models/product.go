package models

// Product is a catalog entry embedded in its owning Vendor. It has no identity
// of its own and is addressed only by its position in Vendor.Products.
type Product struct {
	Name  string  `json:"name" bson:"name"`
	Price float64 `json:"price" bson:"price"`
	Stock int     `json:"stock" bson:"stock"`
	Image string  `json:"image" bson:"image"`
}

// ProductListing is a Product denormalized with its owner for the public listing.
type ProductListing struct {
	Product
	Vendor   string `json:"vendor"` // owner's business name
	VendorID string `json:"vendorId"`
}
