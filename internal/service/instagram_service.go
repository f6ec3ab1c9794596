package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"
	"github.com/carlossangronio-sudo/eden-garden/internal/repository"
	"github.com/carlossangronio-sudo/eden-garden/internal/sanitize"

	"github.com/rs/zerolog"
)

var validPostTypes = map[string]bool{
	model.PostTypePost:  true,
	model.PostTypeReel:  true,
	model.PostTypeVideo: true,
}

// instagramService implements InstagramService.
type instagramService struct {
	instagramRepo repository.InstagramRepository
	logger        zerolog.Logger
}

// NewInstagramService creates a new Instagram feed service.
func NewInstagramService(instagramRepo repository.InstagramRepository, logger zerolog.Logger) InstagramService {
	return &instagramService{
		instagramRepo: instagramRepo,
		logger:        logger.With().Str("service", "instagram").Logger(),
	}
}

func (s *instagramService) List(ctx context.Context, filter model.ListFilter) ([]*model.InstagramPost, error) {
	posts, err := s.instagramRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list instagram posts")
		return nil, fmt.Errorf("failed to list instagram posts: %w", err)
	}
	return posts, nil
}

func (s *instagramService) Get(ctx context.Context, id int64) (*model.InstagramPost, error) {
	post, err := s.instagramRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("instagram_post_id", id).Msg("failed to get instagram post")
		return nil, fmt.Errorf("failed to get instagram post: %w", err)
	}
	if post == nil {
		return nil, model.ErrInstagramNotFound
	}
	return post, nil
}

func applyInstagramInput(in *model.InstagramPostInput, post *model.InstagramPost) error {
	if in.PostURL != nil {
		post.PostURL = sanitize.URL(*in.PostURL)
	}
	if post.PostURL == "" {
		return model.ErrPostURLRequired
	}

	if in.PostType != nil {
		postType := strings.ToLower(sanitize.String(*in.PostType, 10))
		if postType == "" {
			postType = model.PostTypePost
		}
		if !validPostTypes[postType] {
			return model.ErrInvalidPostType
		}
		post.PostType = postType
	}
	post.PostType = orDefault(post.PostType, model.PostTypePost)

	if in.Caption != nil {
		post.Caption = sanitize.String(*in.Caption, maxCaptionLength)
	}
	if in.IsVisible != nil {
		post.IsVisible = *in.IsVisible
	}

	return nil
}

func (s *instagramService) Create(ctx context.Context, input *model.InstagramPostInput) (*model.InstagramPost, error) {
	post := &model.InstagramPost{IsVisible: true}
	if err := applyInstagramInput(input, post); err != nil {
		return nil, err
	}

	maxPos, err := s.instagramRepo.MaxPosition(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create instagram post: %w", err)
	}
	post.Position = maxPos + 1

	if err := s.instagramRepo.Create(ctx, post); err != nil {
		s.logger.Error().Err(err).Msg("failed to create instagram post")
		return nil, fmt.Errorf("failed to create instagram post: %w", err)
	}

	s.logger.Info().Int64("instagram_post_id", post.ID).Str("post_type", post.PostType).Msg("instagram post created")
	return post, nil
}

func (s *instagramService) Update(ctx context.Context, id int64, input *model.InstagramPostInput) (*model.InstagramPost, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyInstagramInput(input, post); err != nil {
		return nil, err
	}
	post.Position = keepPosition(input.Position, post.Position)

	if err := s.instagramRepo.Update(ctx, post); err != nil {
		if model.IsCode(err, model.ErrCodeNotFound) {
			return nil, err
		}
		s.logger.Error().Err(err).Int64("instagram_post_id", id).Msg("failed to update instagram post")
		return nil, fmt.Errorf("failed to update instagram post: %w", err)
	}

	return post, nil
}

func (s *instagramService) Delete(ctx context.Context, id int64) error {
	if _, err := s.instagramRepo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("instagram_post_id", id).Msg("failed to delete instagram post")
		return fmt.Errorf("failed to delete instagram post: %w", err)
	}
	return nil
}

func (s *instagramService) ToggleVisibility(ctx context.Context, id int64) (*model.InstagramPost, error) {
	post, err := s.instagramRepo.ToggleVisibility(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("instagram_post_id", id).Msg("failed to toggle instagram post")
		return nil, fmt.Errorf("failed to toggle instagram post: %w", err)
	}
	if post == nil {
		return nil, model.ErrInstagramNotFound
	}
	return post, nil
}

func (s *instagramService) Count(ctx context.Context) (int, error) {
	count, err := s.instagramRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count instagram posts: %w", err)
	}
	return count, nil
}
