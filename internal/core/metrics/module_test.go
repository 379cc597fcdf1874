package metrics

import (
	"context"
	"testing"

	pkgif "github.com/stelro/thread-safe-pub-sub/pkg/interfaces"
	"go.uber.org/fx"
)

// ============================================================================
// Fx 模块测试
// ============================================================================

// TestModule_Load 测试 Fx 模块加载
func TestModule_Load(t *testing.T) {
	var loaded pkgif.StatsReporter

	app := fx.New(
		Module(),
		fx.Invoke(func(stats pkgif.StatsReporter) {
			loaded = stats
		}),
		fx.NopLogger,
	)

	ctx := context.Background()

	if err := app.Start(ctx); err != nil {
		t.Fatalf("app.Start() failed: %v", err)
	}

	if loaded == nil {
		t.Error("StatsReporter not injected by Fx")
	}

	if err := app.Stop(ctx); err != nil {
		t.Errorf("app.Stop() failed: %v", err)
	}
}

// TestModule_Provides 测试模块提供的类型
func TestModule_Provides(t *testing.T) {
	result := ProvideStats()

	if result.Stats == nil {
		t.Error("ProvideStats() did not provide StatsReporter")
	}
}
