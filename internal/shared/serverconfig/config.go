package serverconfig

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"CityBuilder/internal/shared/config"
)

const defaultConfigRelPath = "configs/conf.yml"

const (
	defaultHost           = "127.0.0.1"
	defaultPort           = 8080
	defaultFrameHz        = 60
	defaultAskTimeoutMS   = 3000
	defaultPushIntervalMS = 200
)

// Conf 启动时的配置快照；运行期读取请用 Current。
var Conf Config

var (
	current   atomic.Pointer[Config]
	mu        sync.Mutex
	listeners []func(Config)
)

// Load 读取默认位置的配置并补齐缺省值。
func Load() {
	LoadFrom(defaultConfigRelPath)
}

func LoadFrom(path string) {
	config.MustLoad(path, &Conf, config.WithReload(reload))
	Conf.ApplyDefaults()
	c := Conf
	current.Store(&c)
}

// Current 最近一次成功加载的配置。
func Current() Config {
	if c := current.Load(); c != nil {
		return *c
	}
	return Conf
}

// OnChange 热加载成功后回调，参数是补齐缺省值后的新配置。
func OnChange(fn func(Config)) {
	mu.Lock()
	defer mu.Unlock()
	listeners = append(listeners, fn)
}

func reload(decode config.Decode) {
	var next Config
	if err := decode(&next); err != nil {
		log.Printf("serverconfig reload failed, keep old: %v", err)
		return
	}
	next.ApplyDefaults()
	current.Store(&next)

	mu.Lock()
	fns := append([]func(Config){}, listeners...)
	mu.Unlock()
	for _, fn := range fns {
		fn(next)
	}
}

// ApplyDefaults 零值字段填默认值。视口和格子尺寸的缺省由游戏层处理。
func (c *Config) ApplyDefaults() {
	if c.HTTPServer.Host == "" {
		c.HTTPServer.Host = defaultHost
	}
	if c.HTTPServer.Port <= 0 {
		c.HTTPServer.Port = defaultPort
	}
	if c.Game.FrameHz == 0 {
		c.Game.FrameHz = defaultFrameHz
	}
	if c.Game.AskTimeoutMS <= 0 {
		c.Game.AskTimeoutMS = defaultAskTimeoutMS
	}
	if c.Game.PushIntervalMS <= 0 {
		c.Game.PushIntervalMS = defaultPushIntervalMS
	}
}

func (g GameConfig) AskTimeout() time.Duration {
	return time.Duration(g.AskTimeoutMS) * time.Millisecond
}

func (g GameConfig) PushInterval() time.Duration {
	return time.Duration(g.PushIntervalMS) * time.Millisecond
}
