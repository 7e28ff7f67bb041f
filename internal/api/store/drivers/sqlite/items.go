package sqlite

import (
	"context"
	"database/sql"

	"github.com/wad01/wad/internal/api/domain"
	"github.com/wad01/wad/internal/api/store"
	"github.com/wad01/wad/pkg/idx"
)

type itemsRepo struct {
	db *sql.DB
}

func (r *itemsRepo) List(ctx context.Context, skip, limit int) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, item_name, item_category, item_price, status FROM items ORDER BY id LIMIT ? OFFSET ?`,
		limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.Item, 0, limit)
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Price, &it.Status); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *itemsRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&n)
	return n, err
}

func (r *itemsRepo) Create(ctx context.Context, it domain.Item) (string, error) {
	id := idx.New().String()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO items (id, item_name, item_category, item_price, status) VALUES (?, ?, ?, ?, ?)`,
		id, it.Name, it.Category, it.Price, it.Status,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *itemsRepo) UpdateByID(ctx context.Context, id string, upd domain.ItemUpdate) error {
	var set setClause
	if upd.Name != nil {
		set.add("item_name", *upd.Name)
	}
	if upd.Category != nil {
		set.add("item_category", *upd.Category)
	}
	if upd.Price != nil {
		set.add("item_price", *upd.Price)
	}
	if upd.Status != nil {
		set.add("status", *upd.Status)
	}

	if set.empty() {
		var one int
		return mapNotFound(r.db.QueryRowContext(ctx, `SELECT 1 FROM items WHERE id = ?`, id).Scan(&one))
	}

	args := append(set.args, id)
	return expectOneRow(r.db.ExecContext(ctx,
		`UPDATE items SET `+set.sql()+` WHERE id = ?`, args...))
}

func (r *itemsRepo) DeleteByID(ctx context.Context, id string) error {
	return expectOneRow(r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id))
}

var _ store.Items = (*itemsRepo)(nil)
