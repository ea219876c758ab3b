package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ i.AccountRepo = &AccountRepo{}

// AccountRepo handles the persistence of accounts.
type AccountRepo struct {
	collection *mongo.Collection
}

// NewAccountRepo creates a new AccountRepo with the given MongoDB client, database name, and collection name.
func NewAccountRepo(client *mongo.Client, dbName, collectionName string) *AccountRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &AccountRepo{
		collection: collection,
	}
}

// EnsureIndexes makes usernames unique.
func (r *AccountRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Add inserts a new account.
// Returns dmn.ErrUsernameTaken if the username is already in use.
func (r *AccountRepo) Add(ctx context.Context, account *dmn.Account) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, account); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return dmn.ErrUsernameTaken
		}
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByUsername retrieves an account by its username.
// Returns dmn.ErrAccountNotFound if there is no such account.
func (r *AccountRepo) ByUsername(ctx context.Context, username string) (*dmn.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var account dmn.Account
	if err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&account); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrAccountNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &account, nil
}
