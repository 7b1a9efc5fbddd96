package nats

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

const (
	SubjectListingCreated       = "listing.created"
	SubjectListingDeleted       = "listing.deleted"
	SubjectSellerRequestDecided = "seller_request.decided"
)

type ListingCreatedEvent struct {
	EventID    string    `json:"event_id"`
	ListingID  string    `json:"listing_id"`
	UserID     string    `json:"user_id"`
	CategoryID string    `json:"category_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ListingDeletedEvent struct {
	EventID        string    `json:"event_id"`
	ListingID      string    `json:"listing_id"`
	ValuesDeleted  int64     `json:"values_deleted"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type SellerRequestDecidedEvent struct {
	EventID    string    `json:"event_id"`
	RequestID  string    `json:"request_id"`
	UserID     string    `json:"user_id"`
	Approved   bool      `json:"approved"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher struct {
	conn *nats.Conn
}

func NewPublisher(url string) (*Publisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn}, nil
}

func (p *Publisher) Publish(ctx context.Context, subject string, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return p.conn.Publish(subject, jsonData)
}

func (p *Publisher) PublishListingCreated(ctx context.Context, listingID, userID, categoryID string) error {
	return p.Publish(ctx, SubjectListingCreated, ListingCreatedEvent{
		EventID:    uuid.NewString(),
		ListingID:  listingID,
		UserID:     userID,
		CategoryID: categoryID,
		OccurredAt: time.Now().UTC(),
	})
}

func (p *Publisher) PublishListingDeleted(ctx context.Context, listingID string, valuesDeleted int64) error {
	return p.Publish(ctx, SubjectListingDeleted, ListingDeletedEvent{
		EventID:       uuid.NewString(),
		ListingID:     listingID,
		ValuesDeleted: valuesDeleted,
		OccurredAt:    time.Now().UTC(),
	})
}

func (p *Publisher) PublishSellerRequestDecided(ctx context.Context, requestID, userID string, approved bool) error {
	return p.Publish(ctx, SubjectSellerRequestDecided, SellerRequestDecidedEvent{
		EventID:    uuid.NewString(),
		RequestID:  requestID,
		UserID:     userID,
		Approved:   approved,
		OccurredAt: time.Now().UTC(),
	})
}

func (p *Publisher) Close() {
	p.conn.Close()
}
