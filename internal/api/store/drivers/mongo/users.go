package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/wad01/wad/internal/api/domain"
	"github.com/wad01/wad/internal/api/store"
)

type userDoc struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Username     string        `bson:"username"`
	Email        string        `bson:"email"`
	Firstname    string        `bson:"firstname"`
	Lastname     string        `bson:"lastname"`
	Password     string        `bson:"password"`
	ProfileImage *string       `bson:"profileImage"`
	Status       string        `bson:"status"`
	CreatedAt    time.Time     `bson:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt"`
}

func (d userDoc) toDomain() domain.User {
	return domain.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Email:        d.Email,
		Firstname:    d.Firstname,
		Lastname:     d.Lastname,
		PasswordHash: d.Password,
		ProfileImage: d.ProfileImage,
		Status:       d.Status,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// profileProjection is the fixed field set returned to profile callers.
var profileProjection = bson.D{
	{Key: "_id", Value: 1},
	{Key: "firstname", Value: 1},
	{Key: "lastname", Value: 1},
	{Key: "email", Value: 1},
	{Key: "profileImage", Value: 1},
}

type usersRepo struct {
	coll *mongo.Collection
}

func (r *usersRepo) FindProfile(ctx context.Context, email string) (domain.Profile, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx,
		bson.D{{Key: "email", Value: email}},
		options.FindOne().SetProjection(profileProjection),
	).Decode(&doc)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}

	return domain.Profile{
		ID:           doc.ID.Hex(),
		Firstname:    doc.Firstname,
		Lastname:     doc.Lastname,
		Email:        doc.Email,
		ProfileImage: doc.ProfileImage,
	}, nil
}

func (r *usersRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}

func (r *usersRepo) UpdateProfile(ctx context.Context, email string, upd domain.ProfileUpdate) error {
	set := bson.D{}
	if upd.Firstname != nil {
		set = append(set, bson.E{Key: "firstname", Value: *upd.Firstname})
	}
	if upd.Lastname != nil {
		set = append(set, bson.E{Key: "lastname", Value: *upd.Lastname})
	}
	set = append(set, bson.E{Key: "updatedAt", Value: upd.UpdatedAt.UTC()})

	return matched(r.coll.UpdateOne(ctx,
		bson.D{{Key: "email", Value: email}},
		bson.D{{Key: "$set", Value: set}},
	))
}

func (r *usersRepo) SetProfileImage(ctx context.Context, email string, path *string, at time.Time) error {
	return matched(r.coll.UpdateOne(ctx,
		bson.D{{Key: "email", Value: email}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "profileImage", Value: path},
			{Key: "updatedAt", Value: at.UTC()},
		}}},
	))
}

func (r *usersRepo) List(ctx context.Context, skip, limit int) ([]domain.User, error) {
	cur, err := r.coll.Find(ctx, bson.D{},
		page(skip, limit).SetProjection(bson.D{{Key: "password", Value: 0}}))
	if err != nil {
		return nil, err
	}

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toDomain())
	}
	return users, nil
}

func (r *usersRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

func (r *usersRepo) Create(ctx context.Context, u domain.NewUser, at time.Time) (string, error) {
	res, err := r.coll.InsertOne(ctx, bson.D{
		{Key: "username", Value: u.Username},
		{Key: "email", Value: u.Email},
		{Key: "password", Value: u.PasswordHash},
		{Key: "firstname", Value: u.Firstname},
		{Key: "lastname", Value: u.Lastname},
		{Key: "status", Value: u.Status},
		{Key: "createdAt", Value: at.UTC()},
		{Key: "updatedAt", Value: at.UTC()},
	})
	if err != nil {
		return "", mapWriteError(err)
	}
	return insertedID(res), nil
}

func (r *usersRepo) UpdateByID(ctx context.Context, id string, upd domain.UserUpdate) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	filter := bson.D{{Key: "_id", Value: oid}}

	set := bson.D{}
	for _, f := range []struct {
		key string
		val *string
	}{
		{"username", upd.Username},
		{"email", upd.Email},
		{"firstname", upd.Firstname},
		{"lastname", upd.Lastname},
		{"status", upd.Status},
	} {
		if f.val != nil {
			set = append(set, bson.E{Key: f.key, Value: *f.val})
		}
	}

	if len(set) == 0 {
		n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
		if err != nil {
			return err
		}
		if n == 0 {
			return store.ErrNotFound
		}
		return nil
	}

	return matched(r.coll.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: set}}))
}

func (r *usersRepo) DeleteByID(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	return deleted(r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}}))
}

func (r *usersRepo) UpsertByEmail(ctx context.Context, u domain.NewUser, at time.Time) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "email", Value: u.Email}},
		bson.D{
			{Key: "$set", Value: bson.D{
				{Key: "username", Value: u.Username},
				{Key: "email", Value: u.Email},
				{Key: "password", Value: u.PasswordHash},
				{Key: "firstname", Value: u.Firstname},
				{Key: "lastname", Value: u.Lastname},
				{Key: "status", Value: u.Status},
				{Key: "updatedAt", Value: at.UTC()},
			}},
			{Key: "$setOnInsert", Value: bson.D{
				{Key: "createdAt", Value: at.UTC()},
			}},
		},
		options.UpdateOne().SetUpsert(true),
	)
	return mapWriteError(err)
}

var _ store.Users = (*usersRepo)(nil)
