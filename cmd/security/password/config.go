package password

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Policy bounds what plaintexts are accepted before hashing.
type Policy struct {
	// MinLength is measured in runes, not bytes.
	MinLength int

	// MaxLength guards the bcrypt 72-byte input truncation boundary.
	MaxLength int
}

// Config carries the bcrypt work factor and the password policy.
//
// The work factor is intentionally environment-tunable so deployments can
// raise it as hardware improves without a code change.
type Config struct {
	// Cost is the bcrypt work factor (2^Cost rounds).
	Cost int

	Policy Policy
}

const (
	// defaultCost matches the service baseline of 10 bcrypt rounds.
	defaultCost = 10

	// maxVerifyCost is the ceiling accepted from stored hashes during Verify.
	maxVerifyCost = 15
)

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return Config{
		Cost: defaultCost,
		Policy: Policy{
			MinLength: 1,
			MaxLength: 72,
		},
	}
}

// LoadConfigFromEnv loads password configuration from environment variables.
//
// Optional:
//   - TASKD_BCRYPT_COST (clamped to bcrypt's supported range)
//   - TASKD_PASSWORD_MIN_LENGTH
func LoadConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := strings.TrimSpace(os.Getenv("TASKD_BCRYPT_COST")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= bcrypt.MinCost && n <= bcrypt.MaxCost {
			cfg.Cost = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("TASKD_PASSWORD_MIN_LENGTH")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= cfg.Policy.MaxLength {
			cfg.Policy.MinLength = n
		}
	}

	return cfg
}
