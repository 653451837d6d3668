package config

import (
	"fmt"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

func load(configPath string, dst any, o options) error {
	if !fileExist(configPath) {
		return fmt.Errorf("config file not exist, configPath=%v", configPath)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return err
	}
	if err := v.Unmarshal(dst, decodeHooks()); err != nil {
		return fmt.Errorf("viper unmarshal config: %w", err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		log.Println("配置文件变更", e.Name)
		if o.reload != nil {
			o.reload(func(next any) error {
				return v.Unmarshal(next, decodeHooks())
			})
			return
		}
		if err := v.Unmarshal(dst, decodeHooks()); err != nil {
			// 热加载失败保留旧值
			log.Printf("viper unmarshal changed config: %v", err)
		}
	})
	v.WatchConfig()
	return nil
}

// decodeHooks 支持 "500ms" 之类的时长写法和逗号分隔的切片。
func decodeHooks() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}
