package services

import (
	"encoding/json"

	"blogicum/models"

	"github.com/rs/zerolog"
)

// FeedService owns the websocket hub and publishes activity events to
// every connected client.
type FeedService struct {
	hub *models.Hub
	log zerolog.Logger
}

func NewFeedService(log zerolog.Logger) *FeedService {
	service := &FeedService{hub: models.NewHub(), log: log}

	go service.Run()

	return service
}

func (s *FeedService) GetHub() *models.Hub {
	return s.hub
}

func (s *FeedService) Run() {
	for {
		select {
		case client := <-s.hub.Register:
			s.hub.Clients[client] = true
			s.log.Debug().Str("client_id", client.ID).Uint("user_id", client.UserID).Msg("feed client registered")

		case client := <-s.hub.Unregister:
			if _, ok := s.hub.Clients[client]; ok {
				delete(s.hub.Clients, client)
				close(client.Send)
				s.log.Debug().Str("client_id", client.ID).Uint("user_id", client.UserID).Msg("feed client unregistered")
			}

		case message := <-s.hub.Broadcast:
			for client := range s.hub.Clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(s.hub.Clients, client)
				}
			}
		}
	}
}

func (s *FeedService) PublishPostCreated(post *models.Post) {
	s.publish(models.FeedPostCreated, post)
}

func (s *FeedService) PublishCommentAdded(comment *models.Comment) {
	s.publish(models.FeedCommentAdded, comment)
}

func (s *FeedService) publish(eventType string, data interface{}) {
	message, err := json.Marshal(models.FeedEvent{Type: eventType, Data: data})
	if err != nil {
		s.log.Error().Err(err).Str("type", eventType).Msg("failed to marshal feed event")
		return
	}
	s.hub.Broadcast <- message
}
