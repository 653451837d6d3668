package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Load 读取配置并解码到 dst（必须是指针）。
// 约定：
// 1) 绝对路径直接使用；
// 2) 相对路径先按当前目录解析，不存在则从当前目录开始逐级向上查找。
//
// 文件变更时默认重新解码到 dst，调用方需自行处理并发读；
// 传入 WithReload 则改为把解码函数交给回调，由调用方解码到新值再替换。
func Load(cfgPath string, dst any, opts ...Option) error {
	path, err := resolve(cfgPath)
	if err != nil {
		return err
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return load(path, dst, o)
}

// MustLoad 启动阶段使用，失败直接 panic。
func MustLoad(cfgPath string, dst any, opts ...Option) {
	if err := Load(cfgPath, dst, opts...); err != nil {
		panic(err)
	}
}

// Decode 把当前文件内容解码到 v。
type Decode func(v any) error

type Option func(*options)

type options struct {
	reload func(Decode)
}

// WithReload 文件变更时调用 fn，不再直接写 dst。
func WithReload(fn func(Decode)) Option {
	return func(o *options) { o.reload = fn }
}

func resolve(cfgPath string) (string, error) {
	if cfgPath == "" {
		return "", fmt.Errorf("config path is empty")
	}
	if filepath.IsAbs(cfgPath) {
		return cfgPath, nil
	}
	curDir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findConfigUpward(curDir, cfgPath)
}

func findConfigUpward(startDir, relPath string) (string, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, relPath)
		if fileExist(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("config file not exist, searched %s from: %s", relPath, startDir)
		}
		dir = parent
	}
}
