package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/bizdash/internal/domain/models"
)

const snapshotCollection = "summary_snapshots"

// Repository defines the interface for summary snapshot storage.
type Repository interface {
	SaveSummarySnapshot(ctx context.Context, snapshot models.SummarySnapshot) error
	ListSummarySnapshots(ctx context.Context, business models.Business, limit int64) ([]models.SummarySnapshot, error)
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: snapshotCollection,
	}, nil
}

func (r *MongoDBRepository) collection() *mongo.Collection {
	return r.client.Database(r.dbName).Collection(r.collName)
}

// SaveSummarySnapshot stores one weekly snapshot of a business unit.
func (r *MongoDBRepository) SaveSummarySnapshot(ctx context.Context, snapshot models.SummarySnapshot) error {
	if _, err := r.collection().InsertOne(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to insert %s summary snapshot: %w", snapshot.Business, err)
	}
	return nil
}

// ListSummarySnapshots returns the latest snapshots of a unit, newest first.
func (r *MongoDBRepository) ListSummarySnapshots(ctx context.Context, business models.Business, limit int64) ([]models.SummarySnapshot, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection().Find(ctx, bson.M{"business": business}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s summary snapshots: %w", business, err)
	}
	defer cursor.Close(ctx)

	snapshots := []models.SummarySnapshot{}
	if err := cursor.All(ctx, &snapshots); err != nil {
		return nil, fmt.Errorf("failed to decode summary snapshots: %w", err)
	}
	return snapshots, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
