package service

import (
	"context"
	"fmt"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"
	"github.com/carlossangronio-sudo/eden-garden/internal/repository"
	"github.com/carlossangronio-sudo/eden-garden/internal/sanitize"

	"github.com/rs/zerolog"
)

// Field limits shared by the positioned collections.
const (
	maxTitleLength       = 100
	maxDescriptionLength = 500
	maxCategoryLength    = 50
	maxCaptionLength     = 200
)

// menuService implements MenuService.
type menuService struct {
	menuRepo repository.MenuItemRepository
	logger   zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(menuRepo repository.MenuItemRepository, logger zerolog.Logger) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		logger:   logger.With().Str("service", "menu").Logger(),
	}
}

// keepPosition returns requested when it is a positive position, current otherwise.
func keepPosition(requested *int, current int) int {
	if requested != nil && *requested > 0 {
		return *requested
	}
	return current
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func (s *menuService) List(ctx context.Context, filter model.ListFilter) ([]*model.MenuItem, error) {
	items, err := s.menuRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list menu items")
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

func (s *menuService) Get(ctx context.Context, id int64) (*model.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("menu_item_id", id).Msg("failed to get menu item")
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	if item == nil {
		return nil, model.ErrMenuItemNotFound
	}
	return item, nil
}

// applyMenuInput copies the submitted fields onto item and validates the result.
func applyMenuInput(in *model.MenuItemInput, item *model.MenuItem) error {
	if in.Title != nil {
		item.Title = sanitize.String(*in.Title, maxTitleLength)
	}
	if item.Title == "" {
		return model.ErrTitleRequired
	}

	if in.Price != nil {
		price, ok := sanitize.ParsePrice(*in.Price)
		if !ok {
			return model.ErrInvalidPrice
		}
		item.Price = price
	}

	if in.Description != nil {
		item.Description = sanitize.String(*in.Description, maxDescriptionLength)
	}
	if in.ImageURL != nil {
		item.ImageURL = sanitize.URL(*in.ImageURL)
	}
	if in.Category != nil {
		item.Category = sanitize.String(*in.Category, maxCategoryLength)
	}
	item.Category = orDefault(item.Category, model.DefaultMenuCategory)
	if in.IsVisible != nil {
		item.IsVisible = *in.IsVisible
	}

	return nil
}

func (s *menuService) Create(ctx context.Context, input *model.MenuItemInput) (*model.MenuItem, error) {
	item := &model.MenuItem{IsVisible: true}
	if err := applyMenuInput(input, item); err != nil {
		return nil, err
	}
	if input.Price == nil {
		return nil, model.ErrInvalidPrice
	}

	maxPos, err := s.menuRepo.MaxPosition(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	item.Position = maxPos + 1

	if err := s.menuRepo.Create(ctx, item); err != nil {
		s.logger.Error().Err(err).Msg("failed to create menu item")
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	s.logger.Info().Int64("menu_item_id", item.ID).Int("position", item.Position).Msg("menu item created")
	return item, nil
}

func (s *menuService) Update(ctx context.Context, id int64, input *model.MenuItemInput) (*model.MenuItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyMenuInput(input, item); err != nil {
		return nil, err
	}
	item.Position = keepPosition(input.Position, item.Position)

	if err := s.menuRepo.Update(ctx, item); err != nil {
		if model.IsCode(err, model.ErrCodeNotFound) {
			return nil, err
		}
		s.logger.Error().Err(err).Int64("menu_item_id", id).Msg("failed to update menu item")
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}

	s.logger.Info().Int64("menu_item_id", id).Msg("menu item updated")
	return item, nil
}

func (s *menuService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.menuRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("menu_item_id", id).Msg("failed to delete menu item")
		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	s.logger.Info().Int64("menu_item_id", id).Bool("existed", deleted).Msg("menu item deleted")
	return nil
}

func (s *menuService) Reorder(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return model.ErrEmptyReorder
	}
	if err := s.menuRepo.Reorder(ctx, ids); err != nil {
		s.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to reorder menu items")
		return fmt.Errorf("failed to reorder menu items: %w", err)
	}
	return nil
}

func (s *menuService) Count(ctx context.Context) (int, error) {
	count, err := s.menuRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count menu items: %w", err)
	}
	return count, nil
}
