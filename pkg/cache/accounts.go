// Package cache provides a Redis read-through layer over the account store.
// Account reads sit on the hot path of every transaction write, so single-get
// lookups are cached briefly. Cache failures never fail the request; the
// decorator falls through to the underlying store.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/anikets/paisaledger/pkg/models"
	"github.com/anikets/paisaledger/pkg/storage"
)

const accountTTL = 5 * time.Minute

// AccountCache wraps an AccountStore with a Redis read-through cache on
// GetAccount. Mutations write through to the store and invalidate the entry.
type AccountCache struct {
	store  storage.AccountStore
	client *redis.Client
}

var _ storage.AccountStore = (*AccountCache)(nil)

func NewAccountCache(store storage.AccountStore, client *redis.Client) *AccountCache {
	return &AccountCache{store: store, client: client}
}

func accountKey(ownerID, id string) string {
	return fmt.Sprintf("account:%s:%s", ownerID, id)
}

// GetAccount serves from cache when possible, falling through on miss or
// Redis error.
func (c *AccountCache) GetAccount(ctx context.Context, id, ownerID string) (*models.Account, error) {
	key := accountKey(ownerID, id)
	raw, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var account models.Account
		if err := json.Unmarshal(raw, &account); err == nil {
			return &account, nil
		}
		// Stale or corrupt entry, drop it and read through.
		c.client.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		slog.Warn("account cache read failed", "key", key, "error", err)
	}

	account, err := c.store.GetAccount(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	c.set(ctx, account)
	return account, nil
}

func (c *AccountCache) set(ctx context.Context, account *models.Account) {
	raw, err := json.Marshal(account)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, accountKey(account.OwnerId, account.Id), raw, accountTTL).Err(); err != nil {
		slog.Warn("account cache write failed", "account_id", account.Id, "error", err)
	}
}

func (c *AccountCache) invalidate(ctx context.Context, ownerID, id string) {
	if err := c.client.Del(ctx, accountKey(ownerID, id)).Err(); err != nil {
		slog.Warn("account cache invalidation failed", "account_id", id, "error", err)
	}
}

// FindAccountByLast4 is not cached; suffix lookups are rare relative to id gets.
func (c *AccountCache) FindAccountByLast4(ctx context.Context, ownerID, last4 string) (*models.Account, error) {
	return c.store.FindAccountByLast4(ctx, ownerID, last4)
}

func (c *AccountCache) CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	return c.store.CreateAccount(ctx, account)
}

func (c *AccountCache) UpdateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	updated, err := c.store.UpdateAccount(ctx, account)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, account.OwnerId, account.Id)
	return updated, nil
}

func (c *AccountCache) DeleteAccount(ctx context.Context, id, ownerID string) error {
	if err := c.store.DeleteAccount(ctx, id, ownerID); err != nil {
		return err
	}
	c.invalidate(ctx, ownerID, id)
	return nil
}

func (c *AccountCache) ListAccounts(ctx context.Context, ownerID string) ([]models.Account, error) {
	return c.store.ListAccounts(ctx, ownerID)
}

// AdjustBalance invalidates after the atomic adjustment so a subsequent read
// never observes the pre-adjustment balance from cache.
func (c *AccountCache) AdjustBalance(ctx context.Context, id, ownerID string, delta int64) (int64, error) {
	balance, err := c.store.AdjustBalance(ctx, id, ownerID, delta)
	if err != nil {
		return 0, err
	}
	c.invalidate(ctx, ownerID, id)
	return balance, nil
}

func (c *AccountCache) TotalBalance(ctx context.Context, ownerID string) (int64, error) {
	return c.store.TotalBalance(ctx, ownerID)
}
