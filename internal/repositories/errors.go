package repositories

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/models"
)

var (
	// ErrNotFound is returned when a lookup key does not resolve to a record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

// newID returns a fresh document id. Every backend uses the ObjectID hex
// form so ids stay interchangeable between stores.
func newID() string {
	return primitive.NewObjectID().Hex()
}

// cloneVendor copies v including its product list, so callers never share
// backing arrays with stored state.
func cloneVendor(v models.Vendor) models.Vendor {
	products := make([]models.Product, len(v.Products))
	copy(products, v.Products)
	v.Products = products
	return v
}

// cloneOrder copies o including its cart items. Item maps are copied
// recursively since their contents are caller supplied.
func cloneOrder(o models.Order) models.Order {
	if o.CartItems != nil {
		items := make([]models.CartItem, len(o.CartItems))
		for i, item := range o.CartItems {
			items[i] = cloneMap(item)
		}
		o.CartItems = items
	}
	return o
}

func cloneMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return cloneMap(val)
	case models.CartItem:
		return models.CartItem(cloneMap(val))
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
