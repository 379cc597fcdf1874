// Package event 实现写时复制事件通道
package event

import (
	"sync"
	"sync/atomic"

	pkgif "github.com/stelro/thread-safe-pub-sub/pkg/interfaces"
	"github.com/stelro/thread-safe-pub-sub/pkg/lib/log"
)

var logger = log.Logger("core/event")

// ============================================================================
// Channel 实现
// ============================================================================

// slot 一个已注册的订阅者条目
type slot[T any] struct {
	id uint64
	fn func(T)
}

// Channel 单一事件形状的发布/订阅通道
//
// 订阅者列表采用写时复制：修改在互斥锁下构建新快照，
// 再通过原子指针整体替换。发布和计数只读取当前快照指针，
// 不加锁，因此发布永远不会被订阅变更阻塞，反之亦然。
type Channel[T any] struct {
	// writeMu 串行化 Subscribe/Unsubscribe/Clear 的写时复制更新
	writeMu sync.Mutex

	// slots 当前订阅者快照，发布后只读，只会被整体替换
	slots atomic.Pointer[[]slot[T]]

	// nextID 订阅者 ID 分配器，从 1 开始，永不复用
	nextID atomic.Uint64

	settings channelSettings
}

// NewChannel 创建新的事件通道
func NewChannel[T any](opts ...pkgif.ChannelOpt) *Channel[T] {
	c := &Channel[T]{}
	for _, opt := range opts {
		opt(&c.settings)
	}

	empty := make([]slot[T], 0)
	c.slots.Store(&empty)
	return c
}

// ============================================================================
// Channel 接口实现
// ============================================================================

// Subscribe 注册回调，返回订阅句柄
//
// 新订阅者对本调用返回后开始的所有发布可见；
// 已经取走快照的在途发布按其快照完成投递。
func (c *Channel[T]) Subscribe(fn func(T)) pkgif.Subscription {
	if fn == nil {
		panic("event: nil callback")
	}

	id := c.nextID.Add(1)

	// 写时复制更新快照
	c.writeMu.Lock()
	curr := *c.slots.Load()
	next := make([]slot[T], len(curr)+1)
	copy(next, curr)
	next[len(curr)] = slot[T]{id: id, fn: fn}
	c.slots.Store(&next)
	c.writeMu.Unlock()

	if st := c.settings.Stats; st != nil {
		st.LogSubscribe()
	}

	return newSubscription(c, id)
}

// Unsubscribe 按 ID 移除订阅者
//
// 返回是否真正移除；未知或已移除的 ID 返回 false，不是错误。
// 不影响任何在途发布。
func (c *Channel[T]) Unsubscribe(id uint64) bool {
	c.writeMu.Lock()
	curr := *c.slots.Load()
	next := make([]slot[T], 0, len(curr))
	removed := false
	for _, s := range curr {
		if s.id == id {
			removed = true
			continue
		}
		next = append(next, s)
	}
	if removed {
		c.slots.Store(&next)
	}
	c.writeMu.Unlock()

	if removed {
		if st := c.settings.Stats; st != nil {
			st.LogUnsubscribe()
		}
	}

	return removed
}

// Publish 向当前快照中的所有订阅者投递事件
//
// 不持有任何锁：取走快照引用后按注册顺序逐个调用。
// 单个订阅者 panic 被就地拦截，不会中断对其余订阅者的投递。
func (c *Channel[T]) Publish(v T) {
	snapshot := *c.slots.Load()
	for i := range snapshot {
		c.invoke(&snapshot[i], v)
	}

	if st := c.settings.Stats; st != nil {
		st.LogPublish(len(snapshot))
	}
}

// SubscriberCount 返回当前订阅者数量（并发修改下为点值）
func (c *Channel[T]) SubscriberCount() int {
	return len(*c.slots.Load())
}

// Clear 原子地用空快照替换当前快照
//
// 不会使已发出的订阅句柄失效：之后对旧 ID 的取消订阅
// 只会返回 false。
func (c *Channel[T]) Clear() {
	c.writeMu.Lock()
	empty := make([]slot[T], 0)
	c.slots.Store(&empty)
	c.writeMu.Unlock()
}

// ============================================================================
// 内部方法
// ============================================================================

// invoke 调用单个订阅者并隔离 panic
func (c *Channel[T]) invoke(s *slot[T], v T) {
	defer func() {
		if r := recover(); r != nil {
			if st := c.settings.Stats; st != nil {
				st.LogDeliveryPanic()
			}
			if h := c.settings.PanicHandler; h != nil {
				h(r)
				return
			}
			logger.Warn("订阅回调 panic 已被拦截",
				"id", s.id,
				"recovered", r)
		}
	}()

	s.fn(v)
}
