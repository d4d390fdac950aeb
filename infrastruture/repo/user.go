package repo

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/snowmaze/identity"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameConflict = errors.New("username conflict")
)

// UserRepo handles the persistence of user models.
type UserRepo struct {
	collection *mongo.Collection
}

// NewUserRepo creates a new UserRepo with the given MongoDB client, database name, and collection name.
func NewUserRepo(client *mongo.Client, dbName, collectionName string) *UserRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &UserRepo{
		collection: collection,
	}
}

// EnsureIndexes creates the unique username index.
func (u *UserRepo) EnsureIndexes(ctx context.Context) error {
	_, err := u.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Save inserts or updates a user in the repository.
// If the user already exists, it updates the existing record.
// If the user does not exist, it adds a new record.
func (u *UserRepo) Save(user *identity.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	filter := bson.M{"_id": user.ID}
	update := bson.M{
		"$set": bson.M{
			"username":        user.Username,
			"passwordHash":    user.PasswordHash,
			"escapes":         user.Escapes,
			"captures":        user.Captures,
			"bestEscapeTicks": user.BestEscapeTicks,
			"updatedAt":       time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := u.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUsernameConflict
		}
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a user by their ID.
// Returns an error if the user is not found or if an unexpected error occurs.
func (u *UserRepo) ByID(id uuid.UUID) (*identity.User, error) {
	return u.findOne(bson.M{"_id": id})
}

// ByUsername retrieves a user by their username.
// Returns an error if the user is not found or if an unexpected error occurs.
func (u *UserRepo) ByUsername(username string) (*identity.User, error) {
	return u.findOne(bson.M{"username": username})
}

// RecordResult bumps the escape or capture counter. An escape faster than the stored
// best (or the first one) also replaces bestEscapeTicks.
func (u *UserRepo) RecordResult(id uuid.UUID, escaped bool, ticks int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	counter := "captures"
	if escaped {
		counter = "escapes"
	}
	res, err := u.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{counter: 1}, "$set": bson.M{"updatedAt": time.Now()}},
	)
	if err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	if !escaped {
		return nil
	}

	filter := bson.M{
		"_id": id,
		"$or": bson.A{
			bson.M{"bestEscapeTicks": 0},
			bson.M{"bestEscapeTicks": bson.M{"$gt": ticks}},
		},
	}
	if _, err := u.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"bestEscapeTicks": ticks}}); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

func (u *UserRepo) findOne(filter bson.M) (*identity.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var user identity.User
	if err := u.collection.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &user, nil
}
