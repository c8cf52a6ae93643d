package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	dmn "github.com/gridcarve/carver-api/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CarvingRepo handles the persistence of carving models.
type CarvingRepo struct {
	collection *mongo.Collection
}

// NewCarvingRepo creates a new CarvingRepo with the given MongoDB client,
// database name, and collection name.
func NewCarvingRepo(client *mongo.Client, dbName, collectionName string) *CarvingRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &CarvingRepo{
		collection: collection,
	}
}

// Save inserts a carving. Carvings are write-once.
func (c *CarvingRepo) Save(carving *dmn.Carving) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := c.collection.InsertOne(ctx, carving); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("carving id conflict")
		}
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a carving by its ID.
// Returns an error if the carving is not found or if an unexpected error occurs.
func (c *CarvingRepo) ByID(id uuid.UUID) (*dmn.Carving, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var carving dmn.Carving
	if err := c.collection.FindOne(ctx, filter).Decode(&carving); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("carving not found")
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &carving, nil
}

// ByOwner retrieves every carving created by a user, newest first.
func (c *CarvingRepo) ByOwner(ownerID uuid.UUID) ([]*dmn.Carving, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"ownerId": ownerID}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := c.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var carvings []*dmn.Carving
	if err := cursor.All(ctx, &carvings); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return carvings, nil
}
