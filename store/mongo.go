package store

import (
	"context"
	"fmt"
	"time"

	formbox "github.com/Jumpaku/go-formbox"
	"github.com/Jumpaku/go-formbox/errors"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collectionForms     = "forms"
	collectionResponses = "responses"
	collectionUsers     = "users"
)

// Mongo persists records in three MongoDB collections. Documents are keyed
// by store-generated UUID strings.
type Mongo struct {
	forms     *mongo.Collection
	responses *mongo.Collection
	users     *mongo.Collection
}

var _ Store = (*Mongo)(nil)

// NewMongo creates a Mongo store over the given database.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{
		forms:     db.Collection(collectionForms),
		responses: db.Collection(collectionResponses),
		users:     db.Collection(collectionUsers),
	}
}

// EnsureIndexes creates the unique email index on users and the formId index
// on responses. Safe to call on every startup.
func (s *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.NewStorageError("failed to create users email index", err)
	}
	_, err = s.responses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "formId", Value: 1}},
	})
	if err != nil {
		return errors.NewStorageError("failed to create responses formId index", err)
	}
	return nil
}

func (s *Mongo) InsertForm(ctx context.Context, form formbox.Form) (stored formbox.Form, err error) {
	form.ID = formbox.FormID(uuid.NewString())
	form.CreatedAt = time.Now().UTC()
	if _, err := s.forms.InsertOne(ctx, form); err != nil {
		return formbox.Form{}, errors.NewStorageError("failed to insert form", err)
	}
	return form, nil
}

func (s *Mongo) FindForm(ctx context.Context, id formbox.FormID) (form formbox.Form, err error) {
	err = s.forms.FindOne(ctx, bson.M{"_id": id}).Decode(&form)
	if err == mongo.ErrNoDocuments {
		return formbox.Form{}, fmt.Errorf("form not found: %s: %w", id, errors.ErrNotFound)
	}
	if err != nil {
		return formbox.Form{}, errors.NewStorageError("failed to find form", err)
	}
	return form, nil
}

func (s *Mongo) ListForms(ctx context.Context) (forms []formbox.Form, err error) {
	cursor, err := s.forms.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, errors.NewStorageError("failed to list forms", err)
	}
	forms = []formbox.Form{}
	if err := cursor.All(ctx, &forms); err != nil {
		return nil, errors.NewStorageError("failed to decode forms", err)
	}
	return forms, nil
}

func (s *Mongo) InsertResponse(ctx context.Context, response formbox.Response) (stored formbox.Response, err error) {
	response.ID = formbox.ResponseID(uuid.NewString())
	response.SubmittedAt = time.Now().UTC()
	if _, err := s.responses.InsertOne(ctx, response); err != nil {
		return formbox.Response{}, errors.NewStorageError("failed to insert response", err)
	}
	return response, nil
}

func (s *Mongo) ListResponses(ctx context.Context, formID formbox.FormID) (responses []formbox.Response, err error) {
	cursor, err := s.responses.Find(ctx, bson.M{"formId": formID},
		options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}}))
	if err != nil {
		return nil, errors.NewStorageError("failed to list responses", err)
	}
	responses = []formbox.Response{}
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, errors.NewStorageError("failed to decode responses", err)
	}
	return responses, nil
}

func (s *Mongo) InsertUser(ctx context.Context, user formbox.User) (stored formbox.User, err error) {
	user.ID = formbox.UserID(uuid.NewString())
	user.CreatedAt = time.Now().UTC()
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return formbox.User{}, fmt.Errorf("email taken: %s: %w", user.Email, errors.ErrAlreadyExists)
		}
		return formbox.User{}, errors.NewStorageError("failed to insert user", err)
	}
	return user, nil
}

func (s *Mongo) FindUserByEmail(ctx context.Context, email string) (user formbox.User, err error) {
	err = s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return formbox.User{}, fmt.Errorf("user not found: %s: %w", email, errors.ErrNotFound)
	}
	if err != nil {
		return formbox.User{}, errors.NewStorageError("failed to find user", err)
	}
	return user, nil
}
