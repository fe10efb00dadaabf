package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/dinein/app/models"
	"github.com/shashiranjanraj/dinein/app/repositories"
	"github.com/shashiranjanraj/dinein/app/services"
	"github.com/shashiranjanraj/dinein/pkg/validate"
)

type cartFixture struct {
	store *repositories.MemoryStore
	svc   *services.CartService
	owner string
	other string
}

func newCartFixture(t *testing.T) cartFixture {
	t.Helper()
	ctx := context.Background()
	store := repositories.NewMemoryStore()

	require.NoError(t, store.Users().Create(ctx, &models.User{ID: "u-owner", Email: "owner@example.com"}))
	require.NoError(t, store.Users().Create(ctx, &models.User{ID: "u-other", Email: "other@example.com"}))
	require.NoError(t, store.Menu().Upsert(ctx, &models.MenuItem{FoodName: "Masala Dosa", Price: 120}))

	return cartFixture{
		store: store,
		svc:   services.NewCartService(store.Users(), store.Menu(), store.Cart()),
		owner: "u-owner",
		other: "u-other",
	}
}

func (f cartFixture) add(t *testing.T, qty int) *models.CartItem {
	t.Helper()
	item, err := f.svc.Add(context.Background(), services.AddToCartInput{UserID: f.owner, FoodName: "Masala Dosa", Quantity: qty})
	require.NoError(t, err)
	return item
}

func TestAddQuantityBounds(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	for _, qty := range []int{0, 16, -1} {
		_, err := f.svc.Add(ctx, services.AddToCartInput{UserID: f.owner, FoodName: "Masala Dosa", Quantity: qty})
		assert.ErrorIs(t, err, validate.ErrInvalidQuantity, "quantity %d", qty)
	}
	for _, qty := range []int{1, 15} {
		_, err := f.svc.Add(ctx, services.AddToCartInput{UserID: f.owner, FoodName: "Masala Dosa", Quantity: qty})
		assert.NoError(t, err, "quantity %d", qty)
	}
}

func TestAddChecksUserThenMenuThenQuantity(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	_, err := f.svc.Add(ctx, services.AddToCartInput{UserID: "ghost", FoodName: "Nope", Quantity: 99})
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	_, err = f.svc.Add(ctx, services.AddToCartInput{UserID: f.owner, FoodName: "Nope", Quantity: 99})
	assert.ErrorIs(t, err, services.ErrMenuItemNotFound)

	_, err = f.svc.Add(ctx, services.AddToCartInput{UserID: f.owner, FoodName: "Masala Dosa", Quantity: 99})
	assert.ErrorIs(t, err, validate.ErrInvalidQuantity)
}

func TestPriceIsSnapshotAtInsertion(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()
	added := f.add(t, 2)
	assert.Equal(t, 120.0, added.Price)

	require.NoError(t, f.store.Menu().Upsert(ctx, &models.MenuItem{FoodName: "Masala Dosa", Price: 150}))

	items, err := f.svc.List(ctx, f.owner)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 120.0, items[0].Price)
	assert.Equal(t, added.ID, items[0].ID)
}

func TestListEmptyCart(t *testing.T) {
	f := newCartFixture(t)
	_, err := f.svc.List(context.Background(), f.owner)
	assert.ErrorIs(t, err, services.ErrCartEmpty)
}

func TestRemoveRequiresOwnership(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()
	item := f.add(t, 1)

	err := f.svc.Remove(ctx, f.other, item.ID.Hex())
	assert.ErrorIs(t, err, services.ErrNotOwner)

	// The item must survive a rejected delete.
	items, err := f.svc.List(ctx, f.owner)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, f.svc.Remove(ctx, f.owner, item.ID.Hex()))
	_, err = f.svc.List(ctx, f.owner)
	assert.ErrorIs(t, err, services.ErrCartEmpty)

	err = f.svc.Remove(ctx, f.owner, item.ID.Hex())
	assert.ErrorIs(t, err, services.ErrItemNotFound)
}

func TestRemoveUnknownOrMalformedID(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.Remove(ctx, f.owner, primitive.NewObjectID().Hex()), services.ErrItemNotFound)
	assert.ErrorIs(t, f.svc.Remove(ctx, f.owner, "not-an-object-id"), services.ErrItemNotFound)
}

func TestUpdateQuantity(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()
	item := f.add(t, 1)
	id := item.ID.Hex()

	_, err := f.svc.UpdateQuantity(ctx, f.other, id, 3)
	assert.ErrorIs(t, err, services.ErrNotOwner)

	_, err = f.svc.UpdateQuantity(ctx, f.owner, id, 16)
	assert.ErrorIs(t, err, validate.ErrInvalidQuantity)

	_, err = f.svc.UpdateQuantity(ctx, f.owner, primitive.NewObjectID().Hex(), 3)
	assert.ErrorIs(t, err, services.ErrItemNotFound)

	updated, err := f.svc.UpdateQuantity(ctx, f.owner, id, 15)
	require.NoError(t, err)
	assert.Equal(t, 15, updated.Quantity)
	assert.Equal(t, 120.0, updated.Price)
}

func TestOwnershipCheckedBeforeQuantity(t *testing.T) {
	f := newCartFixture(t)
	item := f.add(t, 1)

	_, err := f.svc.UpdateQuantity(context.Background(), f.other, item.ID.Hex(), 0)
	assert.ErrorIs(t, err, services.ErrNotOwner)
}
