package main

import (
	"testing"

	"CityBuilder/internal/shared/serverconfig"
)

func TestReadConfig(t *testing.T) {
	serverconfig.Load()
	conf := serverconfig.Conf
	if conf.HTTPServer.Port == 0 || conf.Game.FrameHz != 60 {
		t.Fatalf("conf=%+v", conf)
	}
	if conf.Game.StartingResources == nil || conf.Game.StartingResources.Wood != 100 {
		t.Fatalf("starting=%v", conf.Game.StartingResources)
	}
}
