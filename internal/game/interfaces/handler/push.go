package handler

import (
	"context"
	"time"

	"CityBuilder/internal/shared/transport/ws"
	"CityBuilder/modules/kit/logx"

	"go.uber.org/zap"
)

// ViewPushName 服务端定时推送的快照消息名。
const ViewPushName = "game.view"

// Interval 每次推送后重新读取，配置热加载后下一轮即生效。
type Interval func() time.Duration

// FixedInterval 固定推送间隔。
func FixedInterval(d time.Duration) Interval {
	return func() time.Duration { return d }
}

// ViewPusher 返回一个 ConnectHook：每个 interval 向连接推送一次 View，连接关闭即停止。
// interval 返回值 <= 0 表示不推送。
func ViewPusher(svc GameService, interval Interval, log logx.Logger) ws.ConnectHook {
	if log == nil {
		log = logx.Nop()
	}
	return func(conn ws.WSConn) {
		every := interval()
		if every <= 0 {
			return
		}
		go func() {
			ticker := time.NewTicker(every)
			defer ticker.Stop()
			for {
				select {
				case <-conn.Done():
					return
				case <-ticker.C:
					ctx, cancel := context.WithTimeout(context.Background(), every)
					v, err := svc.View(ctx)
					cancel()
					if err != nil {
						log.Warn("view push failed", zap.String("session_id", conn.SessionID()), zap.Error(err))
					} else {
						conn.Push(ViewPushName, v)
					}
					if next := interval(); next > 0 && next != every {
						every = next
						ticker.Reset(every)
					}
				}
			}
		}()
	}
}
