package service

import (
	"context"
	"fmt"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"
	"github.com/carlossangronio-sudo/eden-garden/internal/repository"
	"github.com/carlossangronio-sudo/eden-garden/internal/sanitize"

	"github.com/rs/zerolog"
)

// galleryService implements GalleryService.
type galleryService struct {
	galleryRepo repository.GalleryRepository
	logger      zerolog.Logger
}

// NewGalleryService creates a new gallery service.
func NewGalleryService(galleryRepo repository.GalleryRepository, logger zerolog.Logger) GalleryService {
	return &galleryService{
		galleryRepo: galleryRepo,
		logger:      logger.With().Str("service", "gallery").Logger(),
	}
}

func (s *galleryService) List(ctx context.Context, filter model.ListFilter) ([]*model.GalleryImage, error) {
	images, err := s.galleryRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list gallery images")
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	return images, nil
}

func (s *galleryService) Get(ctx context.Context, id int64) (*model.GalleryImage, error) {
	image, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("gallery_image_id", id).Msg("failed to get gallery image")
		return nil, fmt.Errorf("failed to get gallery image: %w", err)
	}
	if image == nil {
		return nil, model.ErrGalleryImageNotFound
	}
	return image, nil
}

func applyGalleryInput(in *model.GalleryImageInput, image *model.GalleryImage) error {
	if in.ImageURL != nil {
		image.ImageURL = sanitize.URL(*in.ImageURL)
	}
	if image.ImageURL == "" {
		return model.ErrImageURLRequired
	}

	if in.Title != nil {
		image.Title = sanitize.String(*in.Title, maxTitleLength)
	}
	if in.Category != nil {
		image.Category = sanitize.String(*in.Category, maxCategoryLength)
	}
	image.Category = orDefault(image.Category, model.DefaultGalleryCategory)
	if in.IsVisible != nil {
		image.IsVisible = *in.IsVisible
	}

	return nil
}

func (s *galleryService) Create(ctx context.Context, input *model.GalleryImageInput) (*model.GalleryImage, error) {
	image := &model.GalleryImage{IsVisible: true}
	if err := applyGalleryInput(input, image); err != nil {
		return nil, err
	}

	maxPos, err := s.galleryRepo.MaxPosition(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create gallery image: %w", err)
	}
	image.Position = maxPos + 1

	if err := s.galleryRepo.Create(ctx, image); err != nil {
		s.logger.Error().Err(err).Msg("failed to create gallery image")
		return nil, fmt.Errorf("failed to create gallery image: %w", err)
	}

	s.logger.Info().Int64("gallery_image_id", image.ID).Int("position", image.Position).Msg("gallery image created")
	return image, nil
}

func (s *galleryService) Update(ctx context.Context, id int64, input *model.GalleryImageInput) (*model.GalleryImage, error) {
	image, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyGalleryInput(input, image); err != nil {
		return nil, err
	}
	image.Position = keepPosition(input.Position, image.Position)

	if err := s.galleryRepo.Update(ctx, image); err != nil {
		if model.IsCode(err, model.ErrCodeNotFound) {
			return nil, err
		}
		s.logger.Error().Err(err).Int64("gallery_image_id", id).Msg("failed to update gallery image")
		return nil, fmt.Errorf("failed to update gallery image: %w", err)
	}

	s.logger.Info().Int64("gallery_image_id", id).Msg("gallery image updated")
	return image, nil
}

func (s *galleryService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.galleryRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("gallery_image_id", id).Msg("failed to delete gallery image")
		return fmt.Errorf("failed to delete gallery image: %w", err)
	}

	s.logger.Info().Int64("gallery_image_id", id).Bool("existed", deleted).Msg("gallery image deleted")
	return nil
}

func (s *galleryService) ToggleVisibility(ctx context.Context, id int64) (*model.GalleryImage, error) {
	image, err := s.galleryRepo.ToggleVisibility(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("gallery_image_id", id).Msg("failed to toggle gallery image")
		return nil, fmt.Errorf("failed to toggle gallery image: %w", err)
	}
	if image == nil {
		return nil, model.ErrGalleryImageNotFound
	}

	s.logger.Info().Int64("gallery_image_id", id).Bool("visible", image.IsVisible).Msg("gallery image visibility toggled")
	return image, nil
}

func (s *galleryService) Reorder(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return model.ErrEmptyReorder
	}
	if err := s.galleryRepo.Reorder(ctx, ids); err != nil {
		s.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to reorder gallery images")
		return fmt.Errorf("failed to reorder gallery images: %w", err)
	}
	return nil
}

func (s *galleryService) Count(ctx context.Context) (int, error) {
	count, err := s.galleryRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count gallery images: %w", err)
	}
	return count, nil
}
