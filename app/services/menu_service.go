package services

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/dinein/app/models"
	"github.com/shashiranjanraj/dinein/app/repositories"
)

type MenuService struct {
	menu repositories.MenuRepository
}

func NewMenuService(menu repositories.MenuRepository) *MenuService {
	return &MenuService{menu: menu}
}

// List returns every menu item ordered by name.
func (s *MenuService) List(ctx context.Context) ([]models.MenuItem, error) {
	items, err := s.menu.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("menu: %w", err)
	}
	return items, nil
}
