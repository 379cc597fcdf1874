// Package metrics 提供事件投递指标
package metrics

import pkgif "github.com/stelro/thread-safe-pub-sub/pkg/interfaces"

// Reporter 提供记录和检索投递指标的方法
//
// 在 pkg/interfaces.StatsReporter 之上增加本包实现特有的复位能力。
type Reporter interface {
	pkgif.StatsReporter

	// Reset 将所有计数器清零
	Reset()
}
