package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/exalt/teamboard/internal/core/domain"
)

const collectionAudit = "audit_events"

// AuditRepository appends authentication audit events.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAudit)}
}

type auditDoc struct {
	Actor     string    `bson:"actor,omitempty"`
	Action    string    `bson:"action"`
	Outcome   string    `bson:"outcome"`
	Timestamp time.Time `bson:"timestamp"`
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, auditDoc{
		Actor:     event.Actor,
		Action:    string(event.Action),
		Outcome:   string(event.Outcome),
		Timestamp: event.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// EnsureIndexes creates the actor+timestamp index used for forensic lookups.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "actor", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	return err
}
