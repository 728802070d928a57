package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/signsyncapp/signsync-api/internal/model"
)

const userCollection = "users"

type userMongoRepository struct {
	db *mongo.Database
}

// NewUserMongoRepository creates the users collection indexes and
// returns a Mongo-backed UserRepository. The unique indexes on email
// and username are the authoritative uniqueness guard; application
// level checks are a fast path only.
func NewUserMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) UserRepository {
	collection := db.Collection(userCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create user indexes")
	}

	return &userMongoRepository{db: db}
}

func (r *userMongoRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.db.Collection(userCollection).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}

		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		user.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return user, nil
}

func (r *userMongoRepository) GetUser(ctx context.Context, id string) (*model.User, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	return r.findOne(ctx, bson.M{"_id": objectID})
}

func (r *userMongoRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userMongoRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *userMongoRepository) UpdateUser(
	ctx context.Context,
	id string,
	params UpdateUserParams,
) (*model.User, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	updateMap := bson.M{}
	if params.Username != nil {
		updateMap["username"] = *params.Username
	}
	if params.Email != nil {
		updateMap["email"] = *params.Email
	}
	if params.FullName != nil {
		updateMap["full_name"] = *params.FullName
	}
	if params.Bio != nil {
		updateMap["bio"] = *params.Bio
	}
	if params.ProfilePicture != nil {
		updateMap["profile_picture"] = *params.ProfilePicture
	}

	if len(updateMap) == 0 {
		return nil, errors.New("no user fields to update")
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(userCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	return decodeResult(result)
}

func (r *userMongoRepository) MarkVerified(ctx context.Context, id string) (*model.User, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	result := r.db.Collection(userCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{
			"$set": bson.M{
				"verified":   true,
				"updated_at": time.Now(),
			},
			"$unset": bson.M{
				"verification_code":            "",
				"verification_code_expires_at": "",
			},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	return decodeResult(result)
}

func (r *userMongoRepository) UpdateLastLogin(ctx context.Context, id string) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	_, err = r.db.Collection(userCollection).UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"last_login_at": time.Now()}},
	)

	return err
}

func (r *userMongoRepository) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	return decodeResult(r.db.Collection(userCollection).FindOne(ctx, filter))
}

func decodeResult(result *mongo.SingleResult) (*model.User, error) {
	if err := result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}

		return nil, err
	}

	var user model.User
	if err := result.Decode(&user); err != nil {
		return nil, err
	}

	return &user, nil
}
