package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/saravpatel/foodify/internal/auth"
	"github.com/saravpatel/foodify/internal/models"
	"github.com/saravpatel/foodify/internal/store"
	"github.com/saravpatel/foodify/internal/validate"
	"github.com/saravpatel/foodify/internal/weberr"
)

// MenuStore is the slice of the store the menu handlers need.
type MenuStore interface {
	CreateItem(ctx context.Context, item *models.MenuItem) error
	ListItemsByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.MenuItem, error)
	GetItem(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
	UpdateItem(ctx context.Context, item *models.MenuItem) error
	DeleteItem(ctx context.Context, id primitive.ObjectID) error
}

type MenuHandler struct {
	Menu         MenuStore
	SessionStore *sessions.CookieStore
	Templates    *TemplateCache
}

func (h *MenuHandler) guard(w http.ResponseWriter, r *http.Request) (auth.Context, bool) {
	authCtx, err := authorize(h.SessionStore, r)
	if err != nil {
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.Unauthorized, auth.RejectionMessage, err))
		return auth.Context{}, false
	}
	return authCtx, true
}

// List renders the owner's full menu.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	authCtx, ok := h.guard(w, r)
	if !ok {
		return
	}
	h.renderMenu(w, r, authCtx)
}

// renderMenu re-reads the owner's current item set and renders it.
// Every successful mutation funnels through here so the view always
// reflects storage, not the request that changed it.
func (h *MenuHandler) renderMenu(w http.ResponseWriter, r *http.Request, authCtx auth.Context) {
	ownerID, err := primitive.ObjectIDFromHex(authCtx.OwnerID)
	if err != nil {
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.Internal, msgSomethingWrong, err))
		return
	}
	items, err := h.Menu.ListItemsByOwner(r.Context(), ownerID)
	if err != nil {
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.Internal, msgSomethingWrong, err))
		return
	}
	data := map[string]interface{}{
		"ID":        authCtx.OwnerID,
		"Name":      authCtx.Name,
		"Menu":      items,
		"CsrfField": csrf.TemplateField(r),
	}
	render(h.Templates, w, "menu.html", data)
}

// AddItemForm renders the blank add-item form.
func (h *MenuHandler) AddItemForm(w http.ResponseWriter, r *http.Request) {
	authCtx, ok := h.guard(w, r)
	if !ok {
		return
	}
	data := map[string]interface{}{
		"ID":        authCtx.OwnerID,
		"CsrfField": csrf.TemplateField(r),
	}
	render(h.Templates, w, "add-item.html", data)
}

// CreateItem validates the add-item form, stores the dish, and renders
// the refreshed menu.
func (h *MenuHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	authCtx, ok := h.guard(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.Validation, msgSomethingWrong, err))
		return
	}

	form := validate.Item{
		Name:        r.FormValue("name"),
		Price:       r.FormValue("price"),
		IsAvailable: r.FormValue("isAvailable"),
	}
	if errs := form.Check(); len(errs) > 0 {
		data := map[string]interface{}{
			"ID":        authCtx.OwnerID,
			"Errors":    errs,
			"Values":    r.Form,
			"CsrfField": csrf.TemplateField(r),
		}
		render(h.Templates, w, "add-item.html", data)
		return
	}

	ownerID, err := primitive.ObjectIDFromHex(authCtx.OwnerID)
	if err != nil {
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.Internal, msgSomethingWrong, err))
		return
	}
	price, _ := strconv.ParseFloat(form.Price, 64) // validated above
	item := &models.MenuItem{
		ID:           primitive.NewObjectID(),
		RestaurantID: ownerID,
		Name:         form.Name,
		Description:  r.FormValue("description"),
		Price:        price,
		IsAvailable:  form.IsAvailable == "true",
		CreatedAt:    time.Now(),
	}
	if err := h.Menu.CreateItem(r.Context(), item); err != nil {
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.Internal, msgSomethingWrong, err))
		return
	}
	h.renderMenu(w, r, authCtx)
}

// EditItemForm renders the edit form pre-filled with the stored item.
func (h *MenuHandler) EditItemForm(w http.ResponseWriter, r *http.Request) {
	authCtx, ok := h.guard(w, r)
	if !ok {
		return
	}
	itemID, err := primitive.ObjectIDFromHex(r.PathValue("itemId"))
	if err != nil {
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.Validation, auth.RejectionMessage, err))
		return
	}
	item, err := h.Menu.GetItem(r.Context(), itemID)
	if errors.Is(err, store.ErrNotFound) {
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.NotFound, auth.RejectionMessage, err))
		return
	}
	if err != nil {
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.Internal, msgSomethingWrong, err))
		return
	}
	data := map[string]interface{}{
		"ID":        authCtx.OwnerID,
		"ItemID":    itemID.Hex(),
		"Item":      item,
		"CsrfField": csrf.TemplateField(r),
	}
	render(h.Templates, w, "edit-item.html", data)
}

// UpdateItem replaces the item's mutable fields with the posted values
// and renders the refreshed menu. Fields are taken as submitted; the
// edit form runs no field validation.
func (h *MenuHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	authCtx, ok := h.guard(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.Validation, msgSomethingWrong, err))
		return
	}
	itemID, err := primitive.ObjectIDFromHex(r.PathValue("itemId"))
	if err != nil {
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.Validation, auth.RejectionMessage, err))
		return
	}

	price, _ := strconv.ParseFloat(r.FormValue("price"), 64)
	item := &models.MenuItem{
		ID:          itemID,
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       price,
		IsAvailable: r.FormValue("isAvailable") == "true",
	}
	if err := h.Menu.UpdateItem(r.Context(), item); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.NotFound, auth.RejectionMessage, err))
			return
		}
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.Internal, msgSomethingWrong, err))
		return
	}
	h.renderMenu(w, r, authCtx)
}

// DeleteItem removes the item and renders the refreshed menu.
func (h *MenuHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	authCtx, ok := h.guard(w, r)
	if !ok {
		return
	}
	itemID, err := primitive.ObjectIDFromHex(r.PathValue("itemId"))
	if err != nil {
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.Validation, auth.RejectionMessage, err))
		return
	}
	if err := h.Menu.DeleteItem(r.Context(), itemID); err != nil {
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.Internal, msgSomethingWrong, err))
		return
	}
	h.renderMenu(w, r, authCtx)
}
