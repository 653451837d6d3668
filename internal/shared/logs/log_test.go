package logs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"CityBuilder/internal/shared/serverconfig"

	"go.uber.org/zap/zapcore"
)

func TestInit_写入JSON文件(t *testing.T) {
	file := filepath.Join(t.TempDir(), "city.log")
	if err := Init("city-test", serverconfig.LogConfig{FileDir: file, Level: "debug"}); err != nil {
		t.Fatalf("Init err=%v", err)
	}
	Info("hello file")
	Sync()

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("read log err=%v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello file"`) || !strings.Contains(string(data), `"logger":"city-test"`) {
		t.Fatalf("log=%s", data)
	}
	if Logx() == nil {
		t.Fatalf("Logx 不应为空")
	}
}

func TestInit_非法级别回退info(t *testing.T) {
	if err := Init("city-test", serverconfig.LogConfig{Level: "verbose"}); err != nil {
		t.Fatalf("Init err=%v", err)
	}
	if Logger().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug 不应开启")
	}
}

func TestSetLevel_运行期调整(t *testing.T) {
	if err := Init("city-test", serverconfig.LogConfig{Level: "info"}); err != nil {
		t.Fatalf("Init err=%v", err)
	}
	SetLevel("debug")
	if !Logger().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("SetLevel(debug) 后应开启 debug")
	}
	SetLevel("bogus")
	if Logger().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("非法级别应回退 info")
	}
}
