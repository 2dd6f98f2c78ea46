package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/catalog-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const (
	// DefaultDatabase is used when neither the config nor the URI names a database.
	DefaultDatabase = "test"

	usersCollection    = "users"
	productsCollection = "products"
)

// Backend is a MongoDB implementation of store.Backend.
type Backend struct {
	client   *mongo.Client
	db       *mongo.Database
	logger   *slog.Logger
	users    *UserStore
	products *ProductStore
}

var _ store.Backend = (*Backend)(nil)

// Open creates a client for uri without waiting for the server. The driver
// dials lazily; call Connect to verify the server is reachable.
// If database is empty it is taken from the URI path, then DefaultDatabase.
func Open(uri, database string, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if database == "" {
		database = databaseFromURI(uri)
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongodb client: %w", err)
	}

	db := client.Database(database)
	return &Backend{
		client:   client,
		db:       db,
		logger:   logger.With(slog.String("component", "mongodb"), slog.String("database", database)),
		users:    NewUserStore(db.Collection(usersCollection)),
		products: NewProductStore(db.Collection(productsCollection)),
	}, nil
}

func databaseFromURI(uri string) string {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil || cs.Database == "" {
		return DefaultDatabase
	}
	return cs.Database
}

func (b *Backend) Users() store.UserStore       { return b.users }
func (b *Backend) Products() store.ProductStore { return b.products }

// Database exposes the underlying database handle.
func (b *Backend) Database() *mongo.Database { return b.db }

// Connect pings the primary and installs the collection validators.
func (b *Backend) Connect(ctx context.Context) error {
	if err := b.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}

	for name, schema := range collectionSchemas {
		if err := b.ensureCollection(ctx, name, schema); err != nil {
			return err
		}
	}
	return nil
}

// ensureCollection creates the collection with its validator, or updates the
// validator when the collection already exists.
func (b *Backend) ensureCollection(ctx context.Context, name string, schema bson.M) error {
	err := b.db.CreateCollection(ctx, name, options.CreateCollection().SetValidator(schema))
	if err == nil {
		b.logger.Info("created collection", slog.String("collection", name))
		return nil
	}
	if !hasErrorCode(err, namespaceExistsCode) {
		return fmt.Errorf("failed to create collection %s: %w", name, err)
	}

	cmd := bson.D{{Key: "collMod", Value: name}, {Key: "validator", Value: schema}}
	if err := b.db.RunCommand(ctx, cmd).Err(); err != nil {
		return fmt.Errorf("failed to update validator for %s: %w", name, err)
	}
	b.logger.Debug("collection validator up to date", slog.String("collection", name))
	return nil
}

// Close disconnects the client and releases its pool.
func (b *Backend) Close(ctx context.Context) error {
	if err := b.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongodb client: %w", err)
	}
	return nil
}

var numberTypes = bson.A{"double", "int", "long", "decimal"}

var collectionSchemas = map[string]bson.M{
	usersCollection: {"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"name", "email", "age"},
		"properties": bson.M{
			"name":  bson.M{"bsonType": "string", "minLength": 1},
			"email": bson.M{"bsonType": "string", "minLength": 1},
			"age":   bson.M{"bsonType": numberTypes},
		},
	}},
	productsCollection: {"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"name", "price", "description"},
		"properties": bson.M{
			"name":        bson.M{"bsonType": "string", "minLength": 1},
			"price":       bson.M{"bsonType": numberTypes},
			"description": bson.M{"bsonType": "string", "minLength": 1},
		},
	}},
}
