// Package metrics 提供事件投递指标
package metrics

import (
	pkgif "github.com/stelro/thread-safe-pub-sub/pkg/interfaces"
	"go.uber.org/fx"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Result Fx 模块输出结果
type Result struct {
	fx.Out

	Stats pkgif.StatsReporter
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("metrics",
		fx.Provide(ProvideStats),
	)
}

// ProvideStats 提供 StatsReporter 实例
func ProvideStats() Result {
	return Result{
		Stats: NewDeliveryCounter(),
	}
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "metrics"
	// Description 模块描述
	Description = "投递指标模块，提供计数器与 Prometheus 导出"
)
