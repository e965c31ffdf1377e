package cache

import (
	"context"
	"fmt"
	"time"
)

// TTLs for cached reads. Rankings move with every like so they stay short.
const (
	UserTTL  = 5 * time.Minute
	TopicTTL = 2 * time.Minute
	RankTTL  = 30 * time.Second
)

func UserKey(userID uint) string {
	return fmt.Sprintf("user:%d", userID)
}

func TopicKey(topicID uint) string {
	return fmt.Sprintf("topic:%d", topicID)
}

func RankKey() string {
	return "rankings"
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateTopic(ctx context.Context, topicID uint) {
	Invalidate(ctx, TopicKey(topicID))
}

func InvalidateRank(ctx context.Context) {
	Invalidate(ctx, RankKey())
}
