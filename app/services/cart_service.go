package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shashiranjanraj/dinein/app/models"
	"github.com/shashiranjanraj/dinein/app/repositories"
	"github.com/shashiranjanraj/dinein/pkg/validate"
)

// AddToCartInput is the add-to-cart request body.
type AddToCartInput struct {
	UserID   string `json:"userId"`
	FoodName string `json:"foodName"`
	Quantity int    `json:"quantity"`
}

// UpdateQuantityInput is the body of a quantity update.
type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// CartService enforces the cart's references (user, menu item, owner) that
// the store itself does not.
type CartService struct {
	users repositories.UserRepository
	menu  repositories.MenuRepository
	cart  repositories.CartRepository
}

func NewCartService(users repositories.UserRepository, menu repositories.MenuRepository, cart repositories.CartRepository) *CartService {
	return &CartService{users: users, menu: menu, cart: cart}
}

// Add stores a cart line priced from the current menu. The user is checked
// first, then the menu item, then the quantity.
func (s *CartService) Add(ctx context.Context, in AddToCartInput) (*models.CartItem, error) {
	if _, err := s.users.FindByID(ctx, in.UserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("cart add: %w", err)
	}

	menuItem, err := s.menu.FindByName(ctx, in.FoodName)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("cart add: %w", err)
	}

	if !validate.Quantity(in.Quantity) {
		return nil, validate.ErrInvalidQuantity
	}

	item := &models.CartItem{
		UserID:   in.UserID,
		FoodName: in.FoodName,
		Quantity: in.Quantity,
		Price:    menuItem.Price,
	}
	if err := s.cart.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("cart add: %w", err)
	}
	return item, nil
}

// List returns the user's cart. An empty cart is reported as ErrCartEmpty.
func (s *CartService) List(ctx context.Context, userID string) ([]models.CartItem, error) {
	items, err := s.cart.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cart list: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}
	return items, nil
}

// Remove deletes itemID after confirming it belongs to userID. An item owned
// by someone else is left untouched.
func (s *CartService) Remove(ctx context.Context, userID, itemID string) error {
	if _, err := s.owned(ctx, userID, itemID); err != nil {
		return fmt.Errorf("cart remove: %w", err)
	}
	if _, err := s.cart.Delete(ctx, itemID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("cart remove: %w", ErrItemNotFound)
		}
		return fmt.Errorf("cart remove: %w", err)
	}
	return nil
}

// UpdateQuantity sets the quantity of itemID after ownership and range checks.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*models.CartItem, error) {
	if _, err := s.owned(ctx, userID, itemID); err != nil {
		return nil, fmt.Errorf("cart update: %w", err)
	}
	if !validate.Quantity(quantity) {
		return nil, validate.ErrInvalidQuantity
	}
	item, err := s.cart.UpdateQuantity(ctx, itemID, quantity)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("cart update: %w", ErrItemNotFound)
		}
		return nil, fmt.Errorf("cart update: %w", err)
	}
	return item, nil
}

func (s *CartService) owned(ctx context.Context, userID, itemID string) (*models.CartItem, error) {
	item, err := s.cart.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if item.UserID != userID {
		return nil, ErrNotOwner
	}
	return item, nil
}
