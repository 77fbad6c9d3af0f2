package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/podshare-backend/models"
)

func TestCreateCategory(t *testing.T) {
	r, _, db := setupRouter(t)
	_, token := seedUser(t, db)

	body := bytes.NewBufferString(`{"name":"Tech Talks"}`)
	rr := doRequest(r, http.MethodPost, "/api/categories", body, map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp struct {
		Category models.Category `json:"category"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Tech Talks", resp.Category.CategoryName)
	assert.Equal(t, "tech-talks", resp.Category.Slug)
}

func TestCreateCategoryDuplicate(t *testing.T) {
	r, _, db := setupRouter(t)
	_, token := seedUser(t, db)
	seedCategory(t, db, "Tech")

	body := bytes.NewBufferString(`{"name":"Tech"}`)
	rr := doRequest(r, http.MethodPost, "/api/categories", body, map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + token,
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateCategoryRequiresAuth(t *testing.T) {
	r, _, _ := setupRouter(t)

	body := bytes.NewBufferString(`{"name":"Tech"}`)
	rr := doRequest(r, http.MethodPost, "/api/categories", body, map[string]string{
		"Content-Type": "application/json",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetCategories(t *testing.T) {
	r, _, db := setupRouter(t)
	seedCategory(t, db, "Tech")
	seedCategory(t, db, "News")

	rr := doRequest(r, http.MethodGet, "/api/categories", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data []models.Category `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "News", resp.Data[0].CategoryName)
	assert.Equal(t, "Tech", resp.Data[1].CategoryName)
}
