package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/wad01/wad/internal/api/domain"
	"github.com/wad01/wad/internal/api/store"
)

type itemDoc struct {
	ID       bson.ObjectID `bson:"_id,omitempty"`
	Name     string        `bson:"itemName"`
	Category string        `bson:"itemCategory"`
	Price    float64       `bson:"itemPrice"`
	Status   string        `bson:"status"`
}

type itemsRepo struct {
	coll *mongo.Collection
}

func (r *itemsRepo) List(ctx context.Context, skip, limit int) ([]domain.Item, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, page(skip, limit))
	if err != nil {
		return nil, err
	}

	var docs []itemDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(docs))
	for _, d := range docs {
		items = append(items, domain.Item{
			ID:       d.ID.Hex(),
			Name:     d.Name,
			Category: d.Category,
			Price:    d.Price,
			Status:   d.Status,
		})
	}
	return items, nil
}

func (r *itemsRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

func (r *itemsRepo) Create(ctx context.Context, it domain.Item) (string, error) {
	res, err := r.coll.InsertOne(ctx, itemDoc{
		Name:     it.Name,
		Category: it.Category,
		Price:    it.Price,
		Status:   it.Status,
	})
	if err != nil {
		return "", err
	}
	return insertedID(res), nil
}

func (r *itemsRepo) UpdateByID(ctx context.Context, id string, upd domain.ItemUpdate) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	filter := bson.D{{Key: "_id", Value: oid}}

	set := bson.D{}
	if upd.Name != nil {
		set = append(set, bson.E{Key: "itemName", Value: *upd.Name})
	}
	if upd.Category != nil {
		set = append(set, bson.E{Key: "itemCategory", Value: *upd.Category})
	}
	if upd.Price != nil {
		set = append(set, bson.E{Key: "itemPrice", Value: *upd.Price})
	}
	if upd.Status != nil {
		set = append(set, bson.E{Key: "status", Value: *upd.Status})
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

func (r *itemsRepo) DeleteByID(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	return deleted(r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}}))
}

var _ store.Items = (*itemsRepo)(nil)
