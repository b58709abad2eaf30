package components

import "testing"

func TestCreatureTypeSpecs(t *testing.T) {
	for typ := CreatureType(0); typ < CreatureTypeCount; typ++ {
		base, jitter := typ.BaseSize()
		if base <= 0 || jitter < 0 || jitter >= base {
			t.Errorf("%v base size = %v with jitter %v", typ, base, jitter)
		}
		if typ.BaseSpeed() <= 0 {
			t.Errorf("%v base speed = %v", typ, typ.BaseSpeed())
		}
		if len(typ.Palette()) == 0 {
			t.Errorf("%v has no palette", typ)
		}
		if typ.String() == "" {
			t.Errorf("type %d has no name", typ)
		}
	}

	if !CreatureButterfly.IsFlying() {
		t.Error("butterflies should fly")
	}
	if CreatureBeetle.IsFlying() || CreatureAnt.IsFlying() {
		t.Error("ground creatures should not fly")
	}
}

func TestPlantTypeSpecs(t *testing.T) {
	for _, typ := range []PlantType{PlantGrass, PlantFlower, PlantBush} {
		base, jitter := typ.BaseMaxSize()
		if base <= 0 || jitter < 0 || jitter >= base {
			t.Errorf("plant type %d base max size = %v with jitter %v", typ, base, jitter)
		}
		if len(typ.Palette()) == 0 {
			t.Errorf("plant type %d has no palette", typ)
		}
	}
}

func TestStateString(t *testing.T) {
	for _, s := range []State{StateWander, StateRest, StateEat} {
		if s.String() == "" {
			t.Errorf("state %d has no name", s)
		}
	}
}
