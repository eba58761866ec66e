package main

import "testing"

func TestConfigPathFor(t *testing.T) {
	flagAsteroidsCfg, flagBreakoutCfg = "a.yaml", "b.yaml"
	t.Cleanup(func() { flagAsteroidsCfg, flagBreakoutCfg = "", "" })

	tests := []struct {
		name     string
		gameID   string
		explicit string
		want     string
	}{
		{"asteroids own flag", "asteroids", "", "a.yaml"},
		{"breakout own flag", "breakout", "", "b.yaml"},
		{"explicit path wins", "breakout", "play.yaml", "play.yaml"},
		{"unknown game", "pong", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := configPathFor(tt.gameID, tt.explicit); got != tt.want {
				t.Errorf("configPathFor(%q, %q) = %q, expected %q", tt.gameID, tt.explicit, got, tt.want)
			}
		})
	}
}
