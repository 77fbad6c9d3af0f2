package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/podshare-backend/models"
)

func TestPodcastFeedBroadcast(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/podcasts", HandlePodcastFeed)

	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := strings.Replace(srv.URL, "http", "ws", 1) + "/ws/podcasts"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Registration happens on the server goroutine after the handshake.
	deadline := time.Now().Add(2 * time.Second)
	for H.GetStats()["feed_clients"] == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	podcast := models.Podcast{
		ID:    uuid.New(),
		Title: "T",
		Category: models.Category{
			CategoryName: "Tech",
		},
	}
	H.BroadcastPodcastCreated(&podcast)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event PodcastCreatedEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "podcast_created", event.Type)
	assert.Equal(t, podcast.ID.String(), event.ID)
	assert.Equal(t, "T", event.Title)
	assert.Equal(t, "Tech", event.Category)
}
