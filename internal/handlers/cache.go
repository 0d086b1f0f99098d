package handlers

import (
	"context"
	"time"
)

// The user list is the only cached response. Cache failures are treated
// as misses; the store stays authoritative.
const (
	userListCacheKey = "users:all"
	userListCacheTTL = 60 * time.Second
)

func (h *Handler) cachedUserList(ctx context.Context) ([]byte, bool) {
	if h.rdb == nil {
		return nil, false
	}
	data, err := h.rdb.Get(ctx, userListCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (h *Handler) storeUserList(ctx context.Context, data []byte) {
	if h.rdb == nil {
		return
	}
	if err := h.rdb.Set(ctx, userListCacheKey, data, userListCacheTTL).Err(); err != nil {
		h.logger.Debug("User list cache write failed", "error", err)
	}
}

func (h *Handler) invalidateUserListCache(ctx context.Context) {
	if h.rdb == nil {
		return
	}
	if err := h.rdb.Del(ctx, userListCacheKey).Err(); err != nil {
		h.logger.Debug("User list cache invalidation failed", "error", err)
	}
}
