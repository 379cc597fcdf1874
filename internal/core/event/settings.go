// Package event 实现写时复制事件通道
package event

import pkgif "github.com/stelro/thread-safe-pub-sub/pkg/interfaces"

// channelSettings 是 pkg/interfaces.ChannelSettings 的别名
type channelSettings = pkgif.ChannelSettings
