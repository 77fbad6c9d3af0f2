package controllers

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vnkhanh/podshare-backend/services"
	"github.com/vnkhanh/podshare-backend/ws"
)

var podcastService *services.PodcastService

// InitPodcastService wires the service used by the podcast handlers.
func InitPodcastService(svc *services.PodcastService) {
	podcastService = svc
}

func AddPodcast(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	category := c.PostForm("category")

	frontImage, err := readFormFile(c, "frontImage")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}
	audioFile, err := readFormFile(c, "audioFile")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	podcast, err := podcastService.Create(userID, services.CreatePodcastInput{
		Title:        title,
		Description:  description,
		CategoryName: category,
		FrontImage:   frontImage,
		AudioFile:    audioFile,
	})
	if err != nil {
		respondPodcastError(c, err, "Failed to add podcast")
		return
	}

	ws.H.BroadcastPodcastCreated(podcast)

	c.JSON(http.StatusCreated, gin.H{"message": "Podcast added successfully"})
}

func GetPodcasts(c *gin.Context) {
	podcasts, err := podcastService.ListAll()
	if err != nil {
		respondPodcastError(c, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": podcasts})
}

func GetUserPodcasts(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	podcasts, err := podcastService.ListByUser(userID)
	if err != nil {
		respondPodcastError(c, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": podcasts})
}

func GetPodcastByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid podcast id"})
		return
	}

	// A lookup miss is not an error: data is null.
	podcast, err := podcastService.GetByID(id)
	if err != nil {
		respondPodcastError(c, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": podcast})
}

func GetPodcastsByCategory(c *gin.Context) {
	podcasts, err := podcastService.ListByCategory(c.Param("cat"))
	if err != nil {
		respondPodcastError(c, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": podcasts})
}

// respondPodcastError maps service error kinds to responses. Anything not
// in the taxonomy is logged and collapsed to a generic 500.
func respondPodcastError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrAllFieldsRequired):
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
	case errors.Is(err, services.ErrCategoryNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"message": "No category found"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	default:
		log.Println("podcast handler:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": fallback})
	}
}

func readFormFile(c *gin.Context, field string) (services.UploadedFile, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return services.UploadedFile{}, err
	}
	return bufferFile(fileHeader)
}

func bufferFile(fileHeader *multipart.FileHeader) (services.UploadedFile, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return services.UploadedFile{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return services.UploadedFile{}, err
	}

	return services.UploadedFile{
		Data:        data,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}, nil
}
