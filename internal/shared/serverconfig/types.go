package serverconfig

import "CityBuilder/internal/city/domain"

type Config struct {
	HTTPServer HTTPServerConfig `yaml:"httpserver" mapstructure:"httpserver"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
	Game       GameConfig       `yaml:"game" mapstructure:"game"`
}

type HTTPServerConfig struct {
	Host string `yaml:"host" mapstructure:"host"`
	Port int    `yaml:"port" mapstructure:"port"`
	// AllowOrigins 为空时允许任意来源。
	AllowOrigins []string `yaml:"allow_origins" mapstructure:"allow_origins"`
}

type LogConfig struct {
	FileDir    string `yaml:"file_dir" mapstructure:"file_dir"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"` // days
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Level      string `yaml:"level" mapstructure:"level"` // debug/info/warn/error...
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
}

type GameConfig struct {
	ViewportWidth  float64 `yaml:"viewport_width" mapstructure:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height" mapstructure:"viewport_height"`
	TileSize       float64 `yaml:"tile_size" mapstructure:"tile_size"`
	FrameHz        int     `yaml:"frame_hz" mapstructure:"frame_hz"`
	AskTimeoutMS   int     `yaml:"ask_timeout_ms" mapstructure:"ask_timeout_ms"`
	PushIntervalMS int     `yaml:"push_interval_ms" mapstructure:"push_interval_ms"`
	// StartingResources 为空时使用城市默认开局资源。
	StartingResources *domain.Resources `yaml:"starting_resources" mapstructure:"starting_resources"`
}
