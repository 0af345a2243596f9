package model

import "time"

// Provider is a tutor profile as returned by search and profile endpoints.
type Provider struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Subjects        []string `json:"subjects"`
	ExperienceYears int      `json:"experienceYears"`
	HourlyRate      int      `json:"hourlyRate"`
	Rating          float64  `json:"rating"`
	Bio             string   `json:"bio,omitempty"`
	PhotoURL        string   `json:"photoUrl,omitempty"`
	VideoURL        string   `json:"videoUrl,omitempty"`
}

// Booking is a scheduled tutoring engagement between a learner and a
// provider.
type Booking struct {
	ID         string    `json:"id"`
	LearnerID  string    `json:"learnerId"`
	ProviderID string    `json:"providerId"`
	Subject    string    `json:"subject"`
	Status     string    `json:"status"`
	StartsAt   time.Time `json:"startsAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ProgressRecord tracks a learner's progress within a booking.
type ProgressRecord struct {
	ID        string    `json:"id"`
	BookingID string    `json:"bookingId"`
	LearnerID string    `json:"learnerId"`
	Topic     string    `json:"topic"`
	Notes     string    `json:"notes,omitempty"`
	Score     int       `json:"score,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Review is a learner's rating of a provider.
type Review struct {
	ID         string    `json:"id"`
	ProviderID string    `json:"providerId"`
	LearnerID  string    `json:"learnerId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Message is a persisted chat message.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Body       string    `json:"body"`
	Read       bool      `json:"read"`
	SentAt     time.Time `json:"sentAt"`
}

// Conversation summarizes a message thread with another user.
type Conversation struct {
	UserID      string  `json:"userId"`
	UserName    string  `json:"userName"`
	LastMessage Message `json:"lastMessage"`
	Unread      int     `json:"unread"`
}
