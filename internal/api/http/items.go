package http

import (
	"net/http"

	"github.com/wad01/wad/internal/api/domain"
	"github.com/wad01/wad/internal/api/service"
	"github.com/wad01/wad/pkg/httpx"
	"github.com/wad01/wad/pkg/wadsdk"
)

// ItemsHandler serves the item document CRUD endpoints.
type ItemsHandler struct {
	ItemService *service.ItemService
}

// HandleList handles GET /item
//
//	@Summary		List items
//	@Tags			Items
//	@Produce		json
//	@Param			page	query		int	false	"Page number (default 1)"
//	@Param			limit	query		int	false	"Page size (default 10, max 100)"
//	@Success		200		{object}	wadsdk.ListItemsResponse
//	@Failure		500		{object}	wadsdk.MessageResponse
//	@Router			/item [get].
func (h *ItemsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := h.ItemService.List(r.Context(), pageFromQuery(r))
	if err != nil {
		writeServiceError(w, r, err, "Not found")
		return
	}

	items := make([]wadsdk.ItemResponse, len(page.Items))
	for i, it := range page.Items {
		items[i] = wadsdk.ItemResponse{
			ID:           it.ID,
			ItemName:     it.Name,
			ItemCategory: it.Category,
			ItemPrice:    it.Price,
			Status:       it.Status,
		}
	}

	httpx.WriteJSON(w, http.StatusOK, wadsdk.ListItemsResponse{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page.Page,
		Limit:      page.Page.Limit,
		TotalPages: page.Page.TotalPages(page.Total),
	})
}

// HandleCreate handles POST /item
//
//	@Summary		Create item
//	@Description	itemPrice accepts a number or a numeric string. status defaults to ACTIVE.
//	@Tags			Items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		wadsdk.CreateItemRequest	true	"New item"
//	@Success		200		{object}	wadsdk.CreateItemResponse
//	@Failure		400		{object}	wadsdk.MessageResponse
//	@Router			/item [post].
func (h *ItemsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req wadsdk.CreateItemRequest
	if err := httpx.DecodeJSON(http.MaxBytesReader(w, r.Body, maxJSONBody), &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	it, err := h.ItemService.Create(r.Context(), domain.Item{
		Name:     req.ItemName,
		Category: req.ItemCategory,
		Price:    float64(req.ItemPrice),
		Status:   req.Status,
	})
	if err != nil {
		writeServiceError(w, r, err, "Not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, wadsdk.CreateItemResponse{
		ID:           it.ID,
		ItemName:     it.Name,
		ItemCategory: it.Category,
		ItemPrice:    it.Price,
		Status:       it.Status,
	})
}

// HandleUpdate handles PUT /item/{id}
//
//	@Summary		Update item
//	@Tags			Items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Item id"
//	@Param			request	body		wadsdk.UpdateItemRequest	true	"Fields to change"
//	@Success		200		{object}	wadsdk.MessageResponse		"Item updated"
//	@Failure		400		{object}	wadsdk.MessageResponse
//	@Failure		404		{object}	wadsdk.MessageResponse	"Item not found"
//	@Router			/item/{id} [put].
func (h *ItemsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req wadsdk.UpdateItemRequest
	if err := httpx.DecodeJSON(http.MaxBytesReader(w, r.Body, maxJSONBody), &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	upd := domain.ItemUpdate{
		Name:     req.ItemName,
		Category: req.ItemCategory,
		Status:   req.Status,
	}
	if req.ItemPrice != nil {
		price := float64(*req.ItemPrice)
		upd.Price = &price
	}

	if err := h.ItemService.Update(r.Context(), r.PathValue("id"), upd); err != nil {
		writeServiceError(w, r, err, "Item not found")
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Item updated")
}

// HandleDelete handles DELETE /item/{id}
//
//	@Summary		Delete item
//	@Tags			Items
//	@Produce		json
//	@Param			id	path		string					true	"Item id"
//	@Success		200	{object}	wadsdk.MessageResponse	"Item deleted"
//	@Failure		400	{object}	wadsdk.MessageResponse	"Invalid id"
//	@Failure		404	{object}	wadsdk.MessageResponse	"Item not found"
//	@Router			/item/{id} [delete].
func (h *ItemsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ItemService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "Item not found")
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Item deleted")
}
