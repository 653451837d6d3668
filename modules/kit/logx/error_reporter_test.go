package logx

import (
	"context"
	"errors"
	"testing"

	"CityBuilder/modules/kit/errx"
	"CityBuilder/modules/kit/tracex"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuildErrorLog_能提取语义与栈(t *testing.T) {
	e := errx.NewSys("SYS_INTERNAL", "服务器内部错误").
		WithData("op", "upgrade").
		WithCause(errors.New("actor stopped"))

	meta := BuildErrorLog(e)
	if meta.Error == "" || meta.Code == "" || meta.Msg == "" {
		t.Fatalf("期望 Error/Code/Msg 非空, got=%+v", meta)
	}
	if meta.Data["op"] != "upgrade" {
		t.Fatalf("期望 Data 包含 op=upgrade, got=%v", meta.Data)
	}
	if len(meta.CauseChain) == 0 {
		t.Fatalf("期望 CauseChain 非空")
	}
	if meta.Origin == "" || meta.Stack == "" {
		t.Fatalf("期望 Origin/Stack 非空 origin=%q stack=%q", meta.Origin, meta.Stack)
	}
}

func TestReportError_业务错误记INFO_系统错误记ERROR(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLogger(zap.New(core))
	ctx := tracex.WithTraceID(context.Background(), "t-1")

	ReportErrorWithLoggerContext(ctx, l, "city upgrade", errx.NewBiz("CITY_INSUFFICIENT_RESOURCES", "资源不足"))
	ReportErrorWithLoggerContext(ctx, l, "city runtime", errx.NewSys("SYS", "boom").WithCause(errors.New("x")))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("期望 2 条日志, got=%d", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel || entries[0].ContextMap()["err_type"] != "biz" {
		t.Fatalf("业务错误应记 INFO/biz, got=%v %v", entries[0].Level, entries[0].ContextMap())
	}
	if entries[0].ContextMap()["trace_id"] != "t-1" {
		t.Fatalf("期望透传 trace_id, got=%v", entries[0].ContextMap())
	}
	if entries[1].Level != zapcore.ErrorLevel || entries[1].ContextMap()["err_type"] != "sys" {
		t.Fatalf("系统错误应记 ERROR/sys, got=%v %v", entries[1].Level, entries[1].ContextMap())
	}
}

func TestReportAccess_按biz_code分级(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLogger(zap.New(core))

	ReportAccessWithLoggerContext(context.Background(), l, "GET /api/view", 0)
	ReportAccessWithLoggerContext(context.Background(), l, "POST /api/click", 400)
	ReportAccessWithLoggerContext(context.Background(), l, "POST /api/click", 500)

	want := []zapcore.Level{zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, e := range logs.All() {
		if e.Level != want[i] {
			t.Fatalf("第 %d 条日志级别=%v, want=%v", i, e.Level, want[i])
		}
	}
}
