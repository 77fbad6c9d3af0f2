package utils

import (
	"bytes"
	"fmt"
	"os"

	storage "github.com/supabase-community/storage-go"
)

// SupabaseStore relays raw file buffers to Supabase Storage and returns
// the durable public URL of the stored object.
type SupabaseStore struct{}

func NewSupabaseStore() *SupabaseStore {
	return &SupabaseStore{}
}

// UploadImage uploads an image buffer. Path: uploads/images/<filename>
func (s *SupabaseStore) UploadImage(data []byte, filename, contentType string) (string, error) {
	return uploadToBucket("images", data, filename, contentType)
}

// UploadAudio uploads an audio buffer. Path: uploads/audio/<filename>
func (s *SupabaseStore) UploadAudio(data []byte, filename, contentType string) (string, error) {
	return uploadToBucket("audio", data, filename, contentType)
}

func uploadToBucket(prefix string, data []byte, filename, contentType string) (string, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_KEY")
	if supabaseURL == "" || supabaseKey == "" {
		return "", fmt.Errorf("SUPABASE_URL or SUPABASE_KEY is not set")
	}

	storageClient := storage.NewClient(supabaseURL+"/storage/v1", supabaseKey, nil)

	objectPath := fmt.Sprintf("%s/%s", prefix, filename)
	buf := bytes.NewBuffer(data)

	options := storage.FileOptions{
		ContentType: &contentType,
	}

	_, err := storageClient.UploadFile("uploads", objectPath, buf, options)
	if err != nil {
		return "", err
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/uploads/%s", supabaseURL, objectPath)
	return publicURL, nil
}
