package serverconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"CityBuilder/internal/city/domain"
)

func TestApplyDefaults(t *testing.T) {
	var c Config
	c.Game.FrameHz = -1
	c.ApplyDefaults()

	if c.HTTPServer.Host != defaultHost || c.HTTPServer.Port != defaultPort {
		t.Fatalf("http=%+v", c.HTTPServer)
	}
	// 负数表示关闭帧驱动，不覆盖。
	if c.Game.FrameHz != -1 {
		t.Fatalf("frame_hz=%d", c.Game.FrameHz)
	}
	if c.Game.AskTimeout() != 3*time.Second || c.Game.PushInterval() != 200*time.Millisecond {
		t.Fatalf("game=%+v", c.Game)
	}
}

func TestLoadFrom(t *testing.T) {
	p := filepath.Join(t.TempDir(), "conf.yml")
	body := `
httpserver:
  port: 9000
game:
  frame_hz: 30
  starting_resources:
    wood: 10
    stone: 20
    silver: 30
`
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	LoadFrom(p)

	if Conf.HTTPServer.Port != 9000 || Conf.HTTPServer.Host != defaultHost || Conf.Game.FrameHz != 30 {
		t.Fatalf("conf=%+v", Conf)
	}
	want := domain.Resources{Wood: 10, Stone: 20, Silver: 30}
	if Conf.Game.StartingResources == nil || *Conf.Game.StartingResources != want {
		t.Fatalf("starting=%v", Conf.Game.StartingResources)
	}
}

func TestLoadFrom_热加载更新Current(t *testing.T) {
	p := filepath.Join(t.TempDir(), "conf.yml")
	if err := os.WriteFile(p, []byte("game:\n  push_interval_ms: 100\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	LoadFrom(p)
	if Current().Game.PushInterval() != 100*time.Millisecond {
		t.Fatalf("current=%+v", Current().Game)
	}

	changed := make(chan Config, 8)
	OnChange(func(c Config) { changed <- c })

	if err := os.WriteFile(p, []byte("game:\n  push_interval_ms: 500\nlog:\n  level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-changed:
			if c.Game.PushIntervalMS != 500 {
				continue
			}
			if c.Log.Level != "debug" || c.Game.FrameHz != defaultFrameHz {
				t.Fatalf("热加载后应补齐缺省值, c=%+v", c)
			}
			if Current().Game.PushInterval() != 500*time.Millisecond {
				t.Fatalf("Current 未更新: %+v", Current().Game)
			}
			return
		case <-deadline:
			t.Fatalf("未收到热加载回调")
		}
	}
}
