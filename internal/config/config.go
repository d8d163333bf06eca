package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable the game core reads. Values come from
// STARMATH_* environment variables, with the shipped game balance as
// defaults.
type Config struct {
	// Progression.
	MaxLevel       int     `env:"STARMATH_MAX_LEVEL" envDefault:"20"`
	BaseScore      int     `env:"STARMATH_BASE_SCORE" envDefault:"10"`
	ExpBase        int     `env:"STARMATH_EXP_BASE" envDefault:"6"`
	ExpGrowth      float64 `env:"STARMATH_EXP_GROWTH" envDefault:"0.8"`
	TierBThreshold int     `env:"STARMATH_TIER_B_THRESHOLD" envDefault:"11"`

	// Operand ranges.
	TierAMax       int `env:"STARMATH_TIER_A_MAX" envDefault:"10"`
	TierBMax       int `env:"STARMATH_TIER_B_MAX" envDefault:"20"`
	MultiplyMax    int `env:"STARMATH_MULTIPLY_MAX" envDefault:"9"`
	OptionOffset   int `env:"STARMATH_OPTION_OFFSET" envDefault:"5"`
	OptionRetryCap int `env:"STARMATH_OPTION_RETRY_CAP" envDefault:"64"`

	// Countdown timer.
	TimeLimitEnabled bool          `env:"STARMATH_TIME_LIMIT" envDefault:"true"`
	TierATimeLimit   time.Duration `env:"STARMATH_TIER_A_TIME_LIMIT" envDefault:"10s"`
	TierBTimeLimit   time.Duration `env:"STARMATH_TIER_B_TIME_LIMIT" envDefault:"8s"`

	// Inter-question delays.
	CorrectDelay   time.Duration `env:"STARMATH_CORRECT_DELAY" envDefault:"1200ms"`
	WrongDelay     time.Duration `env:"STARMATH_WRONG_DELAY" envDefault:"600ms"`
	TimeUpDelay    time.Duration `env:"STARMATH_TIMEUP_DELAY" envDefault:"1200ms"`
	EntryDelay     time.Duration `env:"STARMATH_ENTRY_DELAY" envDefault:"800ms"`
	LevelUpDelay   time.Duration `env:"STARMATH_LEVELUP_DELAY" envDefault:"2s"`
	HintResetDelay time.Duration `env:"STARMATH_HINT_RESET_DELAY" envDefault:"300ms"`

	// Special move gauge.
	GaugeMax       int `env:"STARMATH_GAUGE_MAX" envDefault:"100"`
	ChargeBase     int `env:"STARMATH_CHARGE_BASE" envDefault:"5"`
	ChargePerCombo int `env:"STARMATH_CHARGE_PER_COMBO" envDefault:"1"`
	ChargeCap      int `env:"STARMATH_CHARGE_CAP" envDefault:"15"`

	// Special move costs and durations.
	TimeStopCost       int           `env:"STARMATH_TIMESTOP_COST" envDefault:"20"`
	TimeStopDuration   time.Duration `env:"STARMATH_TIMESTOP_DURATION" envDefault:"5s"`
	SlowMotionCost     int           `env:"STARMATH_SLOWMO_COST" envDefault:"30"`
	SlowMotionDuration time.Duration `env:"STARMATH_SLOWMO_DURATION" envDefault:"8s"`
	SlowMotionScale    float64       `env:"STARMATH_SLOWMO_SCALE" envDefault:"0.5"`
	HintCost           int           `env:"STARMATH_HINT_COST" envDefault:"15"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Default returns the built-in configuration without consulting the
// environment. Used by tests and as a fallback.
func Default() Config {
	return Config{
		MaxLevel:           20,
		BaseScore:          10,
		ExpBase:            6,
		ExpGrowth:          0.8,
		TierBThreshold:     11,
		TierAMax:           10,
		TierBMax:           20,
		MultiplyMax:        9,
		OptionOffset:       5,
		OptionRetryCap:     64,
		TimeLimitEnabled:   true,
		TierATimeLimit:     10 * time.Second,
		TierBTimeLimit:     8 * time.Second,
		CorrectDelay:       1200 * time.Millisecond,
		WrongDelay:         600 * time.Millisecond,
		TimeUpDelay:        1200 * time.Millisecond,
		EntryDelay:         800 * time.Millisecond,
		LevelUpDelay:       2 * time.Second,
		HintResetDelay:     300 * time.Millisecond,
		GaugeMax:           100,
		ChargeBase:         5,
		ChargePerCombo:     1,
		ChargeCap:          15,
		TimeStopCost:       20,
		TimeStopDuration:   5 * time.Second,
		SlowMotionCost:     30,
		SlowMotionDuration: 8 * time.Second,
		SlowMotionScale:    0.5,
		HintCost:           15,
	}
}

// TimeLimitFor returns the per-question countdown for the given level.
func (c Config) TimeLimitFor(level int) time.Duration {
	if level >= c.TierBThreshold {
		return c.TierBTimeLimit
	}
	return c.TierATimeLimit
}
