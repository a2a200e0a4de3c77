package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/itdeptjamiat/portfolio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContactMemoryRepository is the process-local contact store used when no
// database is configured.
type ContactMemoryRepository struct {
	mu       sync.RWMutex
	contacts []models.Contact
}

func NewContactMemoryRepository() *ContactMemoryRepository {
	return &ContactMemoryRepository{}
}

func (r *ContactMemoryRepository) Append(ctx context.Context, c models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contacts = append(r.contacts, c)
	return nil
}

// List returns submissions newest first.
func (r *ContactMemoryRepository) List(ctx context.Context) ([]models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Contact, 0, len(r.contacts))
	for i := len(r.contacts) - 1; i >= 0; i-- {
		out = append(out, r.contacts[i])
	}
	return out, nil
}

func (r *ContactMemoryRepository) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.contacts {
		if r.contacts[i].ID == id {
			r.contacts[i].Status = status
			c := r.contacts[i]
			return &c, nil
		}
	}
	return nil, models.ErrNotFound
}

type ContactMongoRepository struct {
	collection *mongo.Collection
}

func NewContactMongoRepository(collection *mongo.Collection) *ContactMongoRepository {
	return &ContactMongoRepository{collection: collection}
}

func (r *ContactMongoRepository) Append(ctx context.Context, c models.Contact) error {
	if _, err := r.collection.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}
	return nil
}

func (r *ContactMongoRepository) List(ctx context.Context) ([]models.Contact, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find contacts: %w", err)
	}
	defer cursor.Close(ctx)

	contacts := []models.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("failed to decode contacts: %w", err)
	}
	return contacts, nil
}

func (r *ContactMongoRepository) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (*models.Contact, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"status": status}}

	var contact models.Contact
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&contact)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update contact status: %w", err)
	}
	return &contact, nil
}
