package models

import (
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Hub fans feed events out to every connected client.
type Hub struct {
	Clients    map[*FeedClient]bool
	Broadcast  chan []byte
	Register   chan *FeedClient
	Unregister chan *FeedClient
}

type FeedClient struct {
	ID     string
	Hub    *Hub
	Conn   *websocket.Conn
	Send   chan []byte
	UserID uint
}

type FeedEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

const (
	FeedPostCreated  = "post_created"
	FeedCommentAdded = "comment_added"
)

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*FeedClient]bool),
		Broadcast:  make(chan []byte),
		Register:   make(chan *FeedClient),
		Unregister: make(chan *FeedClient),
	}
}

func NewFeedClient(hub *Hub, conn *websocket.Conn, userID uint) *FeedClient {
	return &FeedClient{
		ID:     uuid.New().String(),
		Hub:    hub,
		Conn:   conn,
		Send:   make(chan []byte, 256),
		UserID: userID,
	}
}
