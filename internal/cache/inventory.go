package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix   = "user:%d"
	AdvertKeyPrefix = "advert:%d"
	// Recent pages are keyed by limit so a short page never serves a
	// request for the full one.
	RecentKeyPrefix  = "adverts:recent:%d"
	RecentKeyPattern = "adverts:recent:*"
)

const (
	UserTTL   = 5 * time.Minute
	AdvertTTL = 30 * time.Minute
	RecentTTL = 1 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func AdvertKey(advertID uint) string {
	return fmt.Sprintf(AdvertKeyPrefix, advertID)
}

func RecentAdvertsKey(limit int) string {
	return fmt.Sprintf(RecentKeyPrefix, limit)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateAdvert drops both the advert detail entry and the recent pages,
// which embed advert rows.
func InvalidateAdvert(ctx context.Context, advertID uint) {
	Invalidate(ctx, AdvertKey(advertID))
	InvalidateRecent(ctx)
}

// InvalidateRecent drops every cached recent page. The number of variants is
// bounded by the configured page size and every entry carries a short TTL.
func InvalidateRecent(ctx context.Context) {
	if client == nil {
		return
	}
	keys, err := client.Keys(ctx, RecentKeyPattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	client.Del(ctx, keys...)
}
