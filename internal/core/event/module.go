// Package event 实现写时复制事件通道
package event

import (
	"context"

	pkgif "github.com/stelro/thread-safe-pub-sub/pkg/interfaces"
	"go.uber.org/fx"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Result Fx 模块输出结果
type Result[T any] struct {
	fx.Out

	Bus pkgif.Bus[T]
}

// Module 返回负载类型为 T 的 Fx 模块
func Module[T any]() fx.Option {
	return fx.Module("event",
		fx.Provide(ProvideBus[T]),
		fx.Invoke(registerLifecycle[T]),
	)
}

// ProvideBus 提供 Bus 实例
func ProvideBus[T any]() Result[T] {
	return Result[T]{
		Bus: NewBus[T](),
	}
}

// lifecycleInput 生命周期输入参数
type lifecycleInput[T any] struct {
	fx.In

	LC  fx.Lifecycle
	Bus pkgif.Bus[T]
}

// registerLifecycle 注册生命周期
func registerLifecycle[T any](input lifecycleInput[T]) {
	input.LC.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// Bus 无需特殊启动逻辑
			return nil
		},
		OnStop: func(_ context.Context) error {
			// 主题与订阅由各自持有者释放
			return nil
		},
	})
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "event"
	// Description 模块描述
	Description = "事件通道模块，提供写时复制快照的同步发布/订阅机制"
)
