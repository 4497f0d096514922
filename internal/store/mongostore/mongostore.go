// Package mongostore implements store.TodoStore on a MongoDB collection.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"todoapp/internal/models"
	"todoapp/internal/store"
)

const collectionName = "todos"

// todoRecord is the document as stored. It never crosses the package
// boundary; toModel maps it to the wire shape, turning _id into an opaque
// hex string.
type todoRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Text      string             `bson:"text"`
	Completed bool               `bson:"completed"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (r todoRecord) toModel() models.Todo {
	return models.Todo{
		ID:        r.ID.Hex(),
		Text:      r.Text,
		Completed: r.Completed,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

// Store is a TodoStore backed by a single MongoDB collection.
type Store struct {
	client *mongo.Client
	todos  *mongo.Collection
}

// New wraps an already-connected client. The handle is constructed by the
// caller and passed in; this package holds no global state.
func New(client *mongo.Client, dbName string) *Store {
	return &Store{
		client: client,
		todos:  client.Database(dbName).Collection(collectionName),
	}
}

// Dial connects to MongoDB and verifies the connection with a ping.
func Dial(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("could not connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("could not ping mongodb: %w", err)
	}
	log.Println("Successfully connected to MongoDB!")
	return client, nil
}

// parseID converts a wire id into an ObjectID, mapping syntax errors to
// store.ErrInvalidID before any round trip.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, store.ErrInvalidID
	}
	return oid, nil
}

// List returns all items, newest first.
func (s *Store) List(ctx context.Context) ([]models.Todo, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.todos.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("could not query todos: %w", err)
	}
	defer cur.Close(ctx)

	var records []todoRecord
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("could not decode todos: %w", err)
	}

	todos := make([]models.Todo, 0, len(records))
	for _, r := range records {
		todos = append(todos, r.toModel())
	}
	return todos, nil
}

// Get returns the item with the given id.
func (s *Store) Get(ctx context.Context, id string) (*models.Todo, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var rec todoRecord
	err = s.todos.FindOne(ctx, bson.M{"_id": oid}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not query todo: %w", err)
	}
	todo := rec.toModel()
	return &todo, nil
}

// Create inserts a new item and returns it with its generated id.
func (s *Store) Create(ctx context.Context, todo models.Todo) (*models.Todo, error) {
	rec := todoRecord{
		Text:      todo.Text,
		Completed: todo.Completed,
		CreatedAt: todo.CreatedAt,
		UpdatedAt: todo.UpdatedAt,
	}
	res, err := s.todos.InsertOne(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("could not insert todo: %w", err)
	}
	rec.ID = res.InsertedID.(primitive.ObjectID)
	created := rec.toModel()
	return &created, nil
}

// Update applies the patch and returns the updated item.
func (s *Store) Update(ctx context.Context, id string, patch store.Patch) (*models.Todo, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": patch.UpdatedAt}
	if patch.Text != nil {
		set["text"] = *patch.Text
	}
	if patch.Completed != nil {
		set["completed"] = *patch.Completed
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var rec todoRecord
	err = s.todos.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not update todo: %w", err)
	}
	todo := rec.toModel()
	return &todo, nil
}

// Delete removes the item with the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := s.todos.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("could not delete todo: %w", err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteCompleted removes every completed item in one bulk operation.
func (s *Store) DeleteCompleted(ctx context.Context) (int64, error) {
	res, err := s.todos.DeleteMany(ctx, bson.M{"completed": true})
	if err != nil {
		return 0, fmt.Errorf("could not delete completed todos: %w", err)
	}
	return res.DeletedCount, nil
}

// Ping reports store connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}
