package terrain

import "testing"

func TestPresetsValid(t *testing.T) {
	for _, name := range PresetNames() {
		cfg, ok := Preset(name)
		if !ok {
			t.Fatalf("listed preset %q not found", name)
		}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("preset %q invalid: %v", name, err)
		}
	}
}

func TestPresetUnknown(t *testing.T) {
	if _, ok := Preset("lunar"); ok {
		t.Fatal("unknown preset name resolved")
	}
}

func TestPresetNamesStable(t *testing.T) {
	a := PresetNames()
	b := PresetNames()
	if len(a) != len(b) {
		t.Fatal("preset listing not stable")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("preset order not stable: %v vs %v", a, b)
		}
		if i > 0 && a[i-1] >= a[i] {
			t.Fatalf("preset names not sorted: %v", a)
		}
	}
}
