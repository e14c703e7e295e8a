package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Notification titles and messages shown to the shopper.
var (
	noteCartAdded       = models.Notification{Title: "Added to Cart", Message: "Item has been added to your cart!"}
	noteCartFailed      = models.Notification{Title: "Error", Message: "Failed to add to cart. Please try again.", Severity: models.SeverityDestructive}
	noteWishlistAdded   = models.Notification{Title: "Added to Wishlist", Message: "Item has been added to your wishlist!"}
	noteWishlistExists  = models.Notification{Title: "Already in Wishlist", Message: "This item is already in your wishlist."}
	noteWishlistFailed  = models.Notification{Title: "Error", Message: "Failed to add to wishlist. Please try again.", Severity: models.SeverityDestructive}
	noteReviewSubmitted = models.Notification{Title: "Review Submitted", Message: "Thank you for your feedback!"}
	noteReviewFailed    = models.Notification{Title: "Error", Message: "Failed to submit review. Please try again.", Severity: models.SeverityDestructive}
)

// ChannelNotifier logs every notification and, when a Redis client is
// configured, publishes it as JSON on channel for the storefront to pick up.
type ChannelNotifier struct {
	logger  *zap.Logger
	redis   *redis.Client
	channel string
}

func NewChannelNotifier(logger *zap.Logger, client *redis.Client, channel string) *ChannelNotifier {
	return &ChannelNotifier{logger: logger, redis: client, channel: channel}
}

func (n *ChannelNotifier) Notify(ctx context.Context, note models.Notification) {
	if note.Severity == "" {
		note.Severity = models.SeverityDefault
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now().UTC()
	}

	fields := []zap.Field{
		zap.String("session_id", note.SessionID),
		zap.String("title", note.Title),
		zap.String("severity", string(note.Severity)),
	}
	if note.Severity == models.SeverityDestructive {
		n.logger.Warn("⚠️ "+note.Message, fields...)
	} else {
		n.logger.Info("✅ "+note.Message, fields...)
	}

	if n.redis == nil || n.channel == "" {
		return
	}
	payload, err := json.Marshal(note)
	if err != nil {
		n.logger.Error("❌ Failed to encode notification", zap.Error(err))
		return
	}
	if err := n.redis.Publish(ctx, n.channel, payload).Err(); err != nil {
		n.logger.Error("❌ Failed to publish notification", zap.String("channel", n.channel), zap.Error(err))
	}
}

func notify(ctx context.Context, n Notifier, sessionID string, note models.Notification) {
	if n == nil {
		return
	}
	note.SessionID = sessionID
	n.Notify(ctx, note)
}
