package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tutorlink/client/internal/model"
)

// Providers.

// SearchProviders queries provider profiles matching the given filters
// (subject, grade, radius and so on — passed through as-is).
func (c *Client) SearchProviders(ctx context.Context, filters url.Values) ([]model.Provider, error) {
	env, err := c.do(ctx, http.MethodGet, "/providers/search", nil, filters)
	if err != nil {
		return nil, err
	}
	return decodeData[[]model.Provider](env, "providers")
}

func (c *Client) GetProvider(ctx context.Context, id string) (model.Provider, error) {
	env, err := c.do(ctx, http.MethodGet, "/providers/"+id, nil, nil)
	if err != nil {
		return model.Provider{}, err
	}
	return decodeData[model.Provider](env, "provider")
}

// UpdateProviderProfile replaces the signed-in provider's profile.
func (c *Client) UpdateProviderProfile(ctx context.Context, profile model.Provider) (model.Provider, error) {
	env, err := c.do(ctx, http.MethodPut, "/providers/profile", profile, nil)
	if err != nil {
		return model.Provider{}, err
	}
	return decodeData[model.Provider](env, "provider")
}

// Bookings.

func (c *Client) CreateBooking(ctx context.Context, booking model.Booking) (model.Booking, error) {
	env, err := c.do(ctx, http.MethodPost, "/bookings", booking, nil)
	if err != nil {
		return model.Booking{}, err
	}
	return decodeData[model.Booking](env, "booking")
}

func (c *Client) ListBookings(ctx context.Context) ([]model.Booking, error) {
	env, err := c.do(ctx, http.MethodGet, "/bookings", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[[]model.Booking](env, "bookings")
}

func (c *Client) GetBooking(ctx context.Context, id string) (model.Booking, error) {
	env, err := c.do(ctx, http.MethodGet, "/bookings/"+id, nil, nil)
	if err != nil {
		return model.Booking{}, err
	}
	return decodeData[model.Booking](env, "booking")
}

func (c *Client) CancelBooking(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodPut, "/bookings/"+id+"/cancel", nil, nil)
	return err
}

// CompleteDemo closes the trial lesson of a booking, recording whether the
// learner wants to continue.
func (c *Client) CompleteDemo(ctx context.Context, id string, satisfactory bool) error {
	payload := map[string]bool{"satisfactory": satisfactory}
	_, err := c.do(ctx, http.MethodPost, "/bookings/"+id+"/complete-demo", payload, nil)
	return err
}

// Progress records.

func (c *Client) CreateProgressRecord(ctx context.Context, record model.ProgressRecord) (model.ProgressRecord, error) {
	env, err := c.do(ctx, http.MethodPost, "/progress", record, nil)
	if err != nil {
		return model.ProgressRecord{}, err
	}
	return decodeData[model.ProgressRecord](env, "progress record")
}

func (c *Client) ListProgressByLearner(ctx context.Context, learnerID string) ([]model.ProgressRecord, error) {
	env, err := c.do(ctx, http.MethodGet, "/progress/"+learnerID, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[[]model.ProgressRecord](env, "progress records")
}

func (c *Client) GetProgressByBooking(ctx context.Context, bookingID string) ([]model.ProgressRecord, error) {
	env, err := c.do(ctx, http.MethodGet, "/progress/booking/"+bookingID, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[[]model.ProgressRecord](env, "progress records")
}

func (c *Client) UpdateProgressRecord(ctx context.Context, record model.ProgressRecord) (model.ProgressRecord, error) {
	env, err := c.do(ctx, http.MethodPut, "/progress/"+record.ID, record, nil)
	if err != nil {
		return model.ProgressRecord{}, err
	}
	return decodeData[model.ProgressRecord](env, "progress record")
}

func (c *Client) DeleteProgressRecord(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/progress/"+id, nil, nil)
	return err
}

// Reviews.

func (c *Client) CreateReview(ctx context.Context, review model.Review) (model.Review, error) {
	env, err := c.do(ctx, http.MethodPost, "/reviews", review, nil)
	if err != nil {
		return model.Review{}, err
	}
	return decodeData[model.Review](env, "review")
}

func (c *Client) ListProviderReviews(ctx context.Context, providerID string) ([]model.Review, error) {
	env, err := c.do(ctx, http.MethodGet, "/reviews/provider/"+providerID, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[[]model.Review](env, "reviews")
}

func (c *Client) UpdateReview(ctx context.Context, review model.Review) (model.Review, error) {
	env, err := c.do(ctx, http.MethodPut, "/reviews/"+review.ID, review, nil)
	if err != nil {
		return model.Review{}, err
	}
	return decodeData[model.Review](env, "review")
}

func (c *Client) DeleteReview(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/reviews/"+id, nil, nil)
	return err
}

// Messages.

func (c *Client) SendMessage(ctx context.Context, message model.Message) (model.Message, error) {
	env, err := c.do(ctx, http.MethodPost, "/messages", message, nil)
	if err != nil {
		return model.Message{}, err
	}
	return decodeData[model.Message](env, "message")
}

// GetConversation returns the message history with the given user.
func (c *Client) GetConversation(ctx context.Context, userID string, query url.Values) ([]model.Message, error) {
	env, err := c.do(ctx, http.MethodGet, "/messages/"+userID, nil, query)
	if err != nil {
		return nil, err
	}
	return decodeData[[]model.Message](env, "messages")
}

func (c *Client) ListConversations(ctx context.Context) ([]model.Conversation, error) {
	env, err := c.do(ctx, http.MethodGet, "/messages/conversations/list", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[[]model.Conversation](env, "conversations")
}

func (c *Client) MarkMessageRead(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodPut, "/messages/"+id+"/read", nil, nil)
	return err
}

// MarkConversationRead marks every message from the given user as read.
func (c *Client) MarkConversationRead(ctx context.Context, userID string) error {
	_, err := c.do(ctx, http.MethodPut, "/messages/conversation/"+userID+"/read-all", nil, nil)
	return err
}
