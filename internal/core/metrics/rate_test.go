package metrics

import "testing"

// TestRateMeter_Empty 测试空窗口
func TestRateMeter_Empty(t *testing.T) {
	r := NewRateMeter()

	if got := r.Rate(); got != 0 {
		t.Errorf("Rate() = %f, want 0", got)
	}
	if got := r.Total(); got != 0 {
		t.Errorf("Total() = %d, want 0", got)
	}
}

// TestRateMeter_Add 测试累计
func TestRateMeter_Add(t *testing.T) {
	r := NewRateMeter()

	r.Add(30)
	r.Add(30)

	if got := r.Total(); got != 60 {
		t.Errorf("Total() = %d, want 60", got)
	}

	// 60 个计数摊到 60 秒窗口
	if got := r.Rate(); got != 1.0 {
		t.Errorf("Rate() = %f, want 1.0", got)
	}
}

// TestRateMeter_Reset 测试清空窗口
func TestRateMeter_Reset(t *testing.T) {
	r := NewRateMeter()

	r.Add(100)
	r.Reset()

	if got := r.Total(); got != 0 {
		t.Errorf("Total() after Reset = %d, want 0", got)
	}
}
