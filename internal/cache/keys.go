package cache

import (
	"context"
	"fmt"
	"time"
)

// The user value schema changed once; the v2 segment keeps old entries from
// being decoded into the new shape.
const (
	userKeyPrefix    = "user:v2:%d"
	messageKeyPrefix = "message:%d"
)

const (
	UserTTL    = 5 * time.Minute
	MessageTTL = 10 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

func MessageKey(messageID uint) string {
	return fmt.Sprintf(messageKeyPrefix, messageID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateMessage(ctx context.Context, messageID uint) {
	Invalidate(ctx, MessageKey(messageID))
}
