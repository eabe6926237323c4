package logic

import (
	"testing"

	engine "ravio/pkg/engine/logic"
	"ravio/pkg/game/items"
	"ravio/pkg/game/progress"
	"ravio/pkg/game/settings"
)

func newProgress(tier engine.Tier, held ...items.Item) *progress.Progress {
	s := settings.Default()
	s.Logic = tier
	p := progress.New(s, 0)
	for _, it := range held {
		p.Add(it)
	}
	return p
}

func TestCanPass_Tiers(t *testing.T) {
	g := Normal(Has(items.Lamp), CanMerge).Hard(Has(items.FireRod))

	tests := []struct {
		name string
		p    *progress.Progress
		want bool
	}{
		{"normal without items", newProgress(engine.Normal), false},
		{"normal with lamp only", newProgress(engine.Normal, items.Lamp), false},
		{"normal with lamp and merge", newProgress(engine.Normal, items.Lamp, items.RaviosBracelet, items.RaviosBracelet), true},
		{"normal with fire rod", newProgress(engine.Normal, items.FireRod), false},
		{"hard with fire rod", newProgress(engine.Hard, items.FireRod), true},
		{"glitched inherits hard", newProgress(engine.Glitched, items.FireRod), true},
		{"nologic without items", newProgress(engine.NoLogic), true},
	}
	for _, tt := range tests {
		if got := CanPass(g, tt.p); got != tt.want {
			t.Errorf("%s: CanPass = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCanPass_Open(t *testing.T) {
	if !CanPass(Open(), newProgress(engine.Normal)) {
		t.Errorf("CanPass(Open()) = false, want true")
	}
}

func TestCount(t *testing.T) {
	p := newProgress(engine.Normal, items.Glove)
	if Count(items.Glove, 2).Eval(p) {
		t.Errorf("Count(Glove, 2) passed with one glove")
	}
	p.Add(items.Glove)
	if !Count(items.Glove, 2).Eval(p) || !CanLiftBig.Eval(p) {
		t.Errorf("Count(Glove, 2) failed with two gloves")
	}
}

func TestLCBarrier(t *testing.T) {
	s := settings.Default()
	s.LCRequirement, s.YuganonRequirement = 2, 2
	p := progress.New(s, 0)
	p.Add(items.SageOren)
	if LCBarrier.Eval(p) {
		t.Errorf("barrier open with one sage, want two")
	}
	p.Add(items.SageImpa)
	if !LCBarrier.Eval(p) {
		t.Errorf("barrier closed with two sages")
	}
}

func TestFlag(t *testing.T) {
	s := settings.Default()
	s.TrialsDoor = settings.OpenFromBothSides
	if !TrialsDoorOutside.Eval(progress.New(s, 0)) {
		t.Errorf("TrialsDoorOutside = false with open_from_both_sides")
	}
	if TrialsDoorOutside.Eval(progress.New(settings.Default(), 0)) {
		t.Errorf("TrialsDoorOutside = true with the default door")
	}
}
