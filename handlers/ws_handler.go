package handlers

import (
	"net/http"
	"time"

	"blogicum/models"
	"blogicum/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// FeedHandler upgrades authenticated requests to a websocket that
// streams activity events from the feed hub. The connection is
// one-way: client messages are drained and ignored.
type FeedHandler struct {
	feedService *services.FeedService
	log         zerolog.Logger
}

func NewFeedHandler(feedService *services.FeedService, log zerolog.Logger) *FeedHandler {
	return &FeedHandler{feedService: feedService, log: log}
}

func (fh *FeedHandler) HandleFeed(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		fh.log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := models.NewFeedClient(fh.feedService.GetHub(), conn, userID.(uint))
	client.Hub.Register <- client

	go fh.writePump(client)
	go fh.readPump(client)
}

func (fh *FeedHandler) readPump(client *models.FeedClient) {
	defer func() {
		client.Hub.Unregister <- client
		client.Conn.Close()
	}()

	client.Conn.SetReadLimit(512)
	client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				fh.log.Debug().Err(err).Str("client_id", client.ID).Msg("feed connection closed")
			}
			return
		}
	}
}

func (fh *FeedHandler) writePump(client *models.FeedClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
