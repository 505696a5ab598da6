package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/models"
)

// MongoVendorRepository stores vendors as documents with embedded products.
type MongoVendorRepository struct {
	collection *mongo.Collection
}

func NewMongoVendorRepository(m *MongoClient) *MongoVendorRepository {
	return &MongoVendorRepository{collection: m.Collection(vendorsCollection)}
}

func (r *MongoVendorRepository) Create(ctx context.Context, vendor *models.Vendor) error {
	if vendor.ID == "" {
		vendor.ID = newID()
	}
	// $push needs an array, never null.
	if vendor.Products == nil {
		vendor.Products = []models.Product{}
	}
	if _, err := r.collection.InsertOne(ctx, vendor); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert vendor: %w", err)
	}
	return nil
}

func (r *MongoVendorRepository) GetByEmail(ctx context.Context, email string) (*models.Vendor, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoVendorRepository) GetByID(ctx context.Context, id string) (*models.Vendor, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoVendorRepository) findOne(ctx context.Context, filter bson.M) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.collection.FindOne(ctx, filter).Decode(&vendor); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vendor: %w", err)
	}
	return &vendor, nil
}

func (r *MongoVendorRepository) GetAll(ctx context.Context) ([]models.Vendor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer cursor.Close(ctx)

	var vendors []models.Vendor
	if err := cursor.All(ctx, &vendors); err != nil {
		return nil, fmt.Errorf("failed to decode vendors: %w", err)
	}
	return vendors, nil
}

// AppendProduct pushes the product in a single document update.
func (r *MongoVendorRepository) AppendProduct(ctx context.Context, vendorID string, product models.Product) (*models.Vendor, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$push": bson.M{"products": product}}

	var vendor models.Vendor
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": vendorID}, update, opts).Decode(&vendor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to append product to vendor %s: %w", vendorID, err)
	}
	return &vendor, nil
}
