package remote

import (
	"context"
	"net/url"
	"time"

	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/gateway"
)

type contactGateway struct {
	client *Client
}

// NewContactGateway is the constructor for the contact-board gateway.
func NewContactGateway(client *Client) gateway.ContactGateway {
	return &contactGateway{client: client}
}

type contactWire struct {
	ID          int64     `json:"id"`
	UserName    string    `json:"userName"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	CreatedDate time.Time `json:"createdDate"`
}

// List fetches all contact messages ($values-wrapped).
func (g *contactGateway) List(ctx context.Context) ([]entity.ContactMessage, error) {
	var reply envelope[contactWire]
	if err := g.client.getJSON(ctx, "/api/ContactUs", nil, "", &reply); err != nil {
		return nil, err
	}

	wire := reply.unwrap()
	messages := make([]entity.ContactMessage, 0, len(wire))
	for _, w := range wire {
		messages = append(messages, entity.ContactMessage{
			ID:        w.ID,
			Name:      w.UserName,
			Email:     w.Email,
			Subject:   w.Subject,
			Message:   w.Message,
			CreatedAt: w.CreatedDate,
		})
	}

	return messages, nil
}

// Create posts one contact message. The remote assigns the identifier; the
// client sends a zero id and the submission timestamp.
func (g *contactGateway) Create(ctx context.Context, msg entity.ContactMessage) error {
	payload := map[string]any{
		"id":          0,
		"userName":    msg.Name,
		"email":       msg.Email,
		"subject":     msg.Subject,
		"message":     msg.Message,
		"createdDate": time.Now().UTC().Format(time.RFC3339),
	}

	return g.client.postJSON(ctx, "/api/ContactUs", nil, payload, nil)
}

type feedbackGateway struct {
	client *Client
}

// NewFeedbackGateway is the constructor for the feedback-board gateway.
func NewFeedbackGateway(client *Client) gateway.FeedbackGateway {
	return &feedbackGateway{client: client}
}

type feedbackWire struct {
	ID int64 `json:"id"`
	// The wire field is misspelled on the marketplace side.
	Message string `json:"messagae"`
}

// List fetches all feedback entries ($values-wrapped).
func (g *feedbackGateway) List(ctx context.Context) ([]entity.Feedback, error) {
	var reply envelope[feedbackWire]
	if err := g.client.getJSON(ctx, "/api/FeedBacks", nil, "", &reply); err != nil {
		return nil, err
	}

	wire := reply.unwrap()
	feedbacks := make([]entity.Feedback, 0, len(wire))
	for _, w := range wire {
		feedbacks = append(feedbacks, entity.Feedback{ID: w.ID, Message: w.Message})
	}

	return feedbacks, nil
}

// Create posts one feedback entry; the endpoint takes the text as a query
// parameter.
func (g *feedbackGateway) Create(ctx context.Context, message string) error {
	query := url.Values{}
	query.Set("feedBack", message)

	return g.client.postJSON(ctx, "/api/FeedBacks", query, nil, nil)
}
