package event

import (
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/goleak"
)

// TestMain 验证测试不泄漏 goroutine
func TestMain(m *testing.M) {
	// 句柄兜底释放在运行时的清理 goroutine 上执行
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("runtime.runfinq"),
		goleak.IgnoreTopFunction("runtime.runCleanups"),
	)
}

// ============================================================================
// 并发测试
// ============================================================================

// TestConcurrent_PublishersWithChurn 测试并发发布与订阅变更
//
// 两个生产者各发布 4 个值，同时第三方反复订阅/取消订阅。
// 每次发布都向一份完整一致的快照投递。
func TestConcurrent_PublishersWithChurn(t *testing.T) {
	ch := NewChannel[int]()

	var received atomic.Int64
	stable := ch.Subscribe(func(int) { received.Add(1) })
	defer stable.Unsubscribe()

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		for i := 0; i < 4; i++ {
			ch.Publish(i)
		}
	}()

	go func() {
		defer wg.Done()
		for i := 4; i < 8; i++ {
			ch.Publish(i)
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			sub := ch.Subscribe(func(int) {})
			sub.Unsubscribe()
		}
	}()

	wg.Wait()

	// 在所有发布开始之前注册的订阅者收到全部 8 次发布
	if got := received.Load(); got != 8 {
		t.Errorf("stable subscriber received %d events, want 8", got)
	}

	// 静止点：只剩下 stable 一个订阅者
	if got := ch.SubscriberCount(); got != 1 {
		t.Errorf("SubscriberCount() = %d, want 1", got)
	}
}

// TestConcurrent_QuiescentCount 测试静止点计数不变式
//
// 任意订阅/取消订阅交错后，静止点可见的订阅者总数
// 等于订阅数减去成功取消数。
func TestConcurrent_QuiescentCount(t *testing.T) {
	ch := NewChannel[int]()

	const (
		goroutines  = 8
		subsPerG    = 50
		removedPerG = 20
	)

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()

			subs := make([]*subscription[int], 0, subsPerG)
			for i := 0; i < subsPerG; i++ {
				subs = append(subs, ch.Subscribe(func(int) {}).(*subscription[int]))
			}
			for i := 0; i < removedPerG; i++ {
				if !subs[i].Unsubscribe() {
					t.Error("Unsubscribe() = false for live subscription")
				}
			}
		}()
	}

	wg.Wait()

	want := goroutines * (subsPerG - removedPerG)
	if got := ch.SubscriberCount(); got != want {
		t.Errorf("SubscriberCount() = %d, want %d", got, want)
	}
}

// TestConcurrent_MixedOperations 测试混合操作竞态
//
// 运行 go test -race 时会检测竞态。
func TestConcurrent_MixedOperations(t *testing.T) {
	ch := NewChannel[int]()

	var wg sync.WaitGroup

	// 并发发布
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				ch.Publish(j)
			}
		}()
	}

	// 并发订阅/取消订阅
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				sub := ch.Subscribe(func(int) {})
				sub.Unsubscribe()
			}
		}()
	}

	// 并发读计数与清空
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 50; j++ {
			_ = ch.SubscriberCount()
			if j%10 == 0 {
				ch.Clear()
			}
		}
	}()

	wg.Wait()
}

// TestConcurrent_BusTopicCreation 测试并发主题创建
func TestConcurrent_BusTopicCreation(t *testing.T) {
	bus := NewBus[int]()

	var wg sync.WaitGroup
	var delivered atomic.Int64

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub := bus.Subscribe("cpu", func(int) { delivered.Add(1) })
			defer sub.Unsubscribe()
			bus.Publish("cpu", 1)
		}()
	}

	wg.Wait()

	// 主题只创建一次
	if got := len(bus.Topics()); got != 1 {
		t.Errorf("len(Topics()) = %d, want 1", got)
	}
	if got := bus.SubscriberCount("cpu"); got != 0 {
		t.Errorf("SubscriberCount(cpu) = %d, want 0", got)
	}
	// 每次发布至少投递给发布者自己的订阅
	if got := delivered.Load(); got < 8 {
		t.Errorf("delivered = %d, want >= 8", got)
	}
}
