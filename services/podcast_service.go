package services

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/vnkhanh/podshare-backend/models"
)

// Error kinds surfaced to the response-mapping layer in controllers.
var (
	ErrAllFieldsRequired = errors.New("all fields are required")
	ErrCategoryNotFound  = errors.New("no category found")
	ErrUserNotFound      = errors.New("user not found")
	ErrUploadFailed      = errors.New("media upload failed")
	ErrPersistenceFailed = errors.New("failed to persist podcast")
)

// MediaUploader relays a raw buffer to the external media host and returns
// the durable public URL.
type MediaUploader interface {
	UploadImage(data []byte, filename, contentType string) (string, error)
	UploadAudio(data []byte, filename, contentType string) (string, error)
}

type UploadedFile struct {
	Data        []byte
	Filename    string
	ContentType string
}

type CreatePodcastInput struct {
	Title        string
	Description  string
	CategoryName string
	FrontImage   UploadedFile
	AudioFile    UploadedFile
}

type PodcastService struct {
	db    *gorm.DB
	media MediaUploader
}

func NewPodcastService(db *gorm.DB, media MediaUploader) *PodcastService {
	return &PodcastService{db: db, media: media}
}

// Create validates the submission, relays both files to the media host
// concurrently and persists the new podcast for userID. The category is
// resolved before any upload so an unknown name costs nothing.
func (s *PodcastService) Create(userID uuid.UUID, in CreatePodcastInput) (*models.Podcast, error) {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.CategoryName) == "" ||
		len(in.FrontImage.Data) == 0 ||
		len(in.AudioFile.Data) == 0 {
		return nil, ErrAllFieldsRequired
	}

	var category models.Category
	if err := s.db.Where("category_name = ?", in.CategoryName).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	var frontImageURL, audioFileURL string
	var g errgroup.Group
	g.Go(func() error {
		url, err := s.media.UploadImage(in.FrontImage.Data, objectName(in.FrontImage.Filename), in.FrontImage.ContentType)
		if err != nil {
			return err
		}
		frontImageURL = url
		return nil
	})
	g.Go(func() error {
		url, err := s.media.UploadAudio(in.AudioFile.Data, objectName(in.AudioFile.Filename), in.AudioFile.ContentType)
		if err != nil {
			return err
		}
		audioFileURL = url
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	// Duration is best effort; a buffer the decoder cannot read stores 0.
	durationSec := 0
	if dur, err := MP3Duration(in.AudioFile.Data); err == nil {
		durationSec = int(dur)
	}

	podcast := models.Podcast{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		CategoryID:  category.ID,
		FrontImage:  frontImageURL,
		AudioFile:   audioFileURL,
		DurationSec: durationSec,
		UserID:      userID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&podcast).Error
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	podcast.Category = category
	return &podcast, nil
}

// ListAll returns every podcast with its category, newest first.
func (s *PodcastService) ListAll() ([]models.Podcast, error) {
	podcasts := make([]models.Podcast, 0)
	err := s.db.Preload("Category").
		Order("created_at DESC").
		Find(&podcasts).Error
	if err != nil {
		return nil, err
	}
	return podcasts, nil
}

// ListByUser returns the given user's podcasts with categories, newest
// first. A missing user row yields ErrUserNotFound.
func (s *PodcastService) ListByUser(userID uuid.UUID) ([]models.Podcast, error) {
	var user models.User
	if err := s.db.Select("id").First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	podcasts := make([]models.Podcast, 0)
	err := s.db.Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&podcasts).Error
	if err != nil {
		return nil, err
	}
	return podcasts, nil
}

// GetByID returns one podcast with its category, or (nil, nil) on a miss.
func (s *PodcastService) GetByID(id uuid.UUID) (*models.Podcast, error) {
	var podcast models.Podcast
	err := s.db.Preload("Category").First(&podcast, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &podcast, nil
}

// ListByCategory returns the podcasts of the named category, newest first.
// An unknown name yields an empty list.
func (s *PodcastService) ListByCategory(name string) ([]models.Podcast, error) {
	podcasts := make([]models.Podcast, 0)
	err := s.db.Preload("Category").
		Joins("JOIN categories ON categories.id = podcasts.category_id").
		Where("categories.category_name = ?", name).
		Order("podcasts.created_at DESC").
		Find(&podcasts).Error
	if err != nil {
		return nil, err
	}
	return podcasts, nil
}

func objectName(original string) string {
	return uuid.New().String() + filepath.Ext(original)
}
