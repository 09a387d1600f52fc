package password

import "testing"

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	cfg := LoadConfigFromEnv()
	if cfg.Cost != defaultCost {
		t.Fatalf("expected default cost %d, got %d", defaultCost, cfg.Cost)
	}
	if cfg.Policy.MaxLength != 72 {
		t.Fatalf("expected bcrypt input bound 72, got %d", cfg.Policy.MaxLength)
	}
}

func TestLoadConfigFromEnv_CostOverride(t *testing.T) {
	t.Setenv("TASKD_BCRYPT_COST", "12")
	cfg := LoadConfigFromEnv()
	if cfg.Cost != 12 {
		t.Fatalf("expected cost 12, got %d", cfg.Cost)
	}
}

func TestLoadConfigFromEnv_RejectsOutOfRangeCost(t *testing.T) {
	t.Setenv("TASKD_BCRYPT_COST", "99")
	cfg := LoadConfigFromEnv()
	if cfg.Cost != defaultCost {
		t.Fatalf("expected default cost on out-of-range value, got %d", cfg.Cost)
	}
}
