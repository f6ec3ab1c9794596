package service

import (
	"context"
	"testing"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGalleryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults and position", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		mockRepo.On("MaxPosition", ctx).Return(2, nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.GalleryImage")).Return(nil)

		svc := NewGalleryService(mockRepo, zerolog.Nop())
		image, err := svc.Create(ctx, &model.GalleryImageInput{ImageURL: strPtr(" https://cdn.example.com/terrasse.jpg ")})

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/terrasse.jpg", image.ImageURL)
		assert.Equal(t, model.DefaultGalleryCategory, image.Category)
		assert.Equal(t, 3, image.Position)
		assert.True(t, image.IsVisible)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unsafe URL rejected", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)

		svc := NewGalleryService(mockRepo, zerolog.Nop())
		_, err := svc.Create(ctx, &model.GalleryImageInput{ImageURL: strPtr("javascript:alert(1)")})

		assert.ErrorIs(t, err, model.ErrImageURLRequired)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGalleryService_Update_RevalidatesImageURL(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockGalleryRepository)
	mockRepo.On("GetByID", ctx, int64(2)).Return(&model.GalleryImage{ID: 2, ImageURL: "/a.jpg", Position: 4}, nil)

	svc := NewGalleryService(mockRepo, zerolog.Nop())
	_, err := svc.Update(ctx, 2, &model.GalleryImageInput{ImageURL: strPtr("")})

	assert.ErrorIs(t, err, model.ErrImageURLRequired)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGalleryService_ToggleVisibility(t *testing.T) {
	ctx := context.Background()

	t.Run("Flips visibility", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		mockRepo.On("ToggleVisibility", ctx, int64(1)).Return(&model.GalleryImage{ID: 1, IsVisible: false}, nil)

		svc := NewGalleryService(mockRepo, zerolog.Nop())
		image, err := svc.ToggleVisibility(ctx, 1)

		require.NoError(t, err)
		assert.False(t, image.IsVisible)
	})

	t.Run("Missing image", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		mockRepo.On("ToggleVisibility", ctx, int64(99)).Return(nil, nil)

		svc := NewGalleryService(mockRepo, zerolog.Nop())
		_, err := svc.ToggleVisibility(ctx, 99)

		assert.ErrorIs(t, err, model.ErrGalleryImageNotFound)
	})
}
