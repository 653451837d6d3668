package errx

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Is_只按code比较(t *testing.T) {
	e1 := NewBiz("CITY_X", "x").WithData("x", 1).WithCause(errors.New("cause1"))
	e2 := NewBiz("CITY_X", "y").WithData("y", 2)
	if !errors.Is(e1, e2) {
		t.Fatalf("期望 errors.Is(e1, e2)==true, e1=%v e2=%v", e1, e2)
	}
	if errors.Is(e1, NewBiz("CITY_Y", "x")) {
		t.Fatalf("不同 code 不应匹配")
	}
}

func TestError_业务错误不捕获栈(t *testing.T) {
	cause := errors.New("tile empty")
	err := NewBiz("CITY_TILE_EMPTY", "格子为空").WithCause(cause)
	if got := err.Stack(); got != nil {
		t.Fatalf("期望业务错误不捕获栈，got=%v", got)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("期望 cause 链不丢，err=%v", err)
	}
	if !err.IsBiz() {
		t.Fatalf("期望 IsBiz()==true")
	}
}

func TestError_系统错误只捕获一次栈(t *testing.T) {
	sys := NewSys("ACTOR_DOWN", "actor 不可用").WithCause(errors.New("stopped"))
	if len(sys.Stack()) == 0 {
		t.Fatalf("期望系统错误捕获栈")
	}
	sys2 := NewSys("RUNTIME_ERROR", "运行时异常").WithCause(sys)
	if got := sys2.Stack(); got != nil {
		t.Fatalf("cause 链已有栈时上层不应重复捕获，got=%v", got)
	}
}

func TestError_WithData_不污染哨兵(t *testing.T) {
	base := ErrInvalidParam
	derived := base.WithData("x", 11)
	if base.Data() != nil {
		t.Fatalf("哨兵错误被污染: %v", base.Data())
	}
	if derived.Data()["x"] != 11 {
		t.Fatalf("期望 derived.Data()[x]==11, got=%v", derived.Data())
	}

	m := map[string]any{"k": "v"}
	e := NewBiz("CITY_X", "").WithDataMap(m)
	m["k"] = "mutated"
	if got := e.Data()["k"]; got != "v" {
		t.Fatalf("期望构造时复制 data，got=%v", got)
	}
}

type reason string

func (r reason) ReasonCode() string { return string(r) }

func TestCodeOf_穿透fmt包装(t *testing.T) {
	err := fmt.Errorf("wrap: %w", NewBiz("CITY_LEVEL_FLOOR", "已是最低等级").WithReason(reason("level_1")))
	if got := CodeOf(err); got != "CITY_LEVEL_FLOOR" {
		t.Fatalf("CodeOf=%q", got)
	}
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Fatalf("普通错误应返回空 code, got=%q", got)
	}
	var e *Error
	if !errors.As(err, &e) || e.Reason() != "level_1" {
		t.Fatalf("期望 reason=level_1, err=%v", err)
	}
}
