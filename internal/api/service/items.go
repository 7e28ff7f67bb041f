package service

import (
	"context"

	"github.com/wad01/wad/internal/api/domain"
	"github.com/wad01/wad/internal/api/store"
)

type ItemPage struct {
	Items []domain.Item
	Total int64
	Page  Page
}

type ItemService struct {
	Store store.Store
}

func (s *ItemService) List(ctx context.Context, p Page) (ItemPage, error) {
	p = p.Normalize()

	items, err := s.Store.Items().List(ctx, p.skip(), p.Limit)
	if err != nil {
		return ItemPage{}, storeErr("list items", err)
	}
	total, err := s.Store.Items().Count(ctx)
	if err != nil {
		return ItemPage{}, storeErr("count items", err)
	}

	return ItemPage{Items: items, Total: total, Page: p}, nil
}

// Create inserts it, defaulting Status to ACTIVE, and returns the stored item.
func (s *ItemService) Create(ctx context.Context, it domain.Item) (domain.Item, error) {
	if it.Status == "" {
		it.Status = domain.StatusActive
	}

	id, err := s.Store.Items().Create(ctx, it)
	if err != nil {
		return domain.Item{}, storeErr("create item", err)
	}
	it.ID = id
	return it, nil
}

func (s *ItemService) Update(ctx context.Context, id string, upd domain.ItemUpdate) error {
	return storeErr("update item", s.Store.Items().UpdateByID(ctx, id, upd))
}

func (s *ItemService) Delete(ctx context.Context, id string) error {
	return storeErr("delete item", s.Store.Items().DeleteByID(ctx, id))
}
