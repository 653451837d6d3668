package domain

import (
	"errors"
	"testing"
)

func TestRegistry_Add_名称唯一且等级至少为1(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Add(TimberCamp, 1); err != nil {
		t.Fatalf("Add err=%v", err)
	}
	if _, err := r.Add(TimberCamp, 1); !errors.Is(err, ErrDuplicateBuilding) {
		t.Fatalf("重复名称期望 ErrDuplicateBuilding, got=%v", err)
	}
	if _, err := r.Add(Quarry, 0); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("等级 0 期望 ErrInvalidLevel, got=%v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("失败的 Add 不应登记, len=%d", r.Len())
	}
}

func TestRegistry_ProductionRate(t *testing.T) {
	r := NewRegistry()
	_, _ = r.Add(Quarry, 3)
	_, _ = r.Add(TownHall, 2)

	if got := r.ProductionRate(Quarry); got != 3 {
		t.Fatalf("Quarry rate=%d, want=3", got)
	}
	if got := r.ProductionRate(SilverMine); got != 0 {
		t.Fatalf("不存在的建筑 rate=%d, want=0", got)
	}
	rates := r.Rates()
	if rates != (Rates{Stone: 3}) {
		t.Fatalf("Town Hall 不应计入任何资源, rates=%+v", rates)
	}
}

func TestRegistry_Buildings_返回副本(t *testing.T) {
	r := NewRegistry()
	_, _ = r.Add(TimberCamp, 1)

	list := r.Buildings()
	list[0].Level = 99
	if got := r.ProductionRate(TimberCamp); got != 1 {
		t.Fatalf("修改副本不应影响名册, rate=%d", got)
	}
}

func TestSourceOf_静态生产表(t *testing.T) {
	want := map[Kind]string{Wood: TimberCamp, Stone: Quarry, Silver: SilverMine}
	for k, name := range want {
		if got := SourceOf(k); got != name {
			t.Fatalf("SourceOf(%s)=%q, want=%q", k, got, name)
		}
	}
	if SourceOf(Kind(7)) != "" {
		t.Fatalf("未知资源应返回空")
	}
}
