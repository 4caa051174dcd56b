package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/wb_microservices/internal/domain"
	"github.com/Gunvolt24/wb_microservices/internal/ports"
	"github.com/Gunvolt24/wb_microservices/pkg/metrics"
)

// Проверка, что LRUCacheTTL удовлетворяет интерфейсу UserCache.
var _ ports.UserCache = (*LRUCacheTTL)(nil)

type entry struct {
	id        int64
	user      *domain.User
	expiresAt time.Time
}

// LRUCacheTTL — in-memory кэш пользователей: вытеснение LRU + TTL на запись.
// Наружу всегда отдаются копии, чтобы вызывающий код не менял содержимое кэша.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[int64]*list.Element

	mu sync.Mutex
}

// NewLRUCacheTTL — конструктор; capacity <= 0 трактуем как 1, ttl <= 0 — без истечения.
func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[int64]*list.Element),
	}
}

// Get — (user, true) при попадании; промах и истёкшая запись — (nil, false).
func (c *LRUCacheTTL) Get(_ context.Context, userID int64) (*domain.User, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[userID]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(c.ll.Len()))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = now.Add(c.ttl)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneUser(ent.user), true
}

// Set — сохранить/обновить пользователя; при переполнении вытесняется LRU.
func (c *LRUCacheTTL) Set(_ context.Context, user *domain.User) error {
	if user == nil || user.ID < 1 {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[user.ID]; ok {
		ent := elem.Value.(*entry)
		ent.user = cloneUser(user)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	elem := c.ll.PushFront(&entry{
		id:        user.ID,
		user:      cloneUser(user),
		expiresAt: c.expiryFrom(now),
	})
	c.index[user.ID] = elem

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	metrics.CacheSize.Set(float64(c.ll.Len()))
	return nil
}

// Delete — инвалидация записи; отсутствие записи — no-op.
func (c *LRUCacheTTL) Delete(_ context.Context, userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[userID]; ok {
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(c.ll.Len()))
	}
}

// WarmUp — массовая загрузка при старте; уважает отмену контекста.
func (c *LRUCacheTTL) WarmUp(ctx context.Context, users []*domain.User) error {
	for _, user := range users {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := c.Set(ctx, user); err != nil {
			return err
		}
	}
	return nil
}
