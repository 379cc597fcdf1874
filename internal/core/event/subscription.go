// Package event 实现写时复制事件通道
package event

import (
	"runtime"
	"sync/atomic"
	"weak"
)

// ============================================================================
// Subscription 实现
// ============================================================================

// releaseState 句柄的一次性释放状态
//
// 独立于句柄本身，因为 runtime.AddCleanup 的参数不能引用
// 被清理的对象。id 为 0 表示已失效。
type releaseState struct {
	id atomic.Uint64
}

// subscription 订阅句柄
//
// 对所属通道只持有弱引用：句柄不会延长通道的生命周期，
// 通道被回收后释放退化为安全的空操作。
type subscription[T any] struct {
	owner weak.Pointer[Channel[T]]
	st    *releaseState
}

// newSubscription 创建绑定到 (channel, id) 的句柄
//
// 句柄被丢弃而未显式释放时，清理函数在 GC 时完成释放，
// 返回值被丢弃。显式释放的推荐写法：
//
//	sub := ch.Subscribe(fn)
//	defer sub.Unsubscribe()
func newSubscription[T any](owner *Channel[T], id uint64) *subscription[T] {
	st := &releaseState{}
	st.id.Store(id)

	w := weak.Make(owner)
	sub := &subscription[T]{owner: w, st: st}
	runtime.AddCleanup(sub, func(st *releaseState) {
		release(w, st)
	}, st)

	return sub
}

// release 执行恰好一次的释放，返回是否真正移除
//
// 原子交换 id 保证显式释放与清理函数之间不会重复执行移除逻辑。
func release[T any](w weak.Pointer[Channel[T]], st *releaseState) bool {
	id := st.id.Swap(0)
	if id == 0 {
		// 已释放过
		return false
	}

	ch := w.Value()
	if ch == nil {
		// 所属通道已被回收，注册已无意义
		return false
	}

	return ch.Unsubscribe(id)
}

// Unsubscribe 释放注册
//
// 首次调用转发到通道的 Unsubscribe 并返回其结果，
// 之后句柄失效；重复调用返回 false。
func (s *subscription[T]) Unsubscribe() bool {
	return release(s.owner, s.st)
}

// IsActive 返回句柄是否仍未释放
func (s *subscription[T]) IsActive() bool {
	return s.st.id.Load() != 0
}
