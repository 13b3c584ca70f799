// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import "time"

// RunnerConfig contains all configuration for the Tummy Runner game.
// Units are playfield units; the terminal adapter scales them to cells.
type RunnerConfig struct {
	Playfield RunnerPlayfield `yaml:"playfield"`
	Player    RunnerPlayer    `yaml:"player"`
	Physics   RunnerPhysics   `yaml:"physics"`
	Obstacles RunnerObstacles `yaml:"obstacles"`
}

// RunnerPlayfield defines the simulated area. Floor is the y the player rests on.
type RunnerPlayfield struct {
	Width float64 `yaml:"width"`
	Floor float64 `yaml:"floor"`
}

// RunnerPlayer defines the player's box. The player starts resting on the floor.
type RunnerPlayer struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RunnerPhysics defines physics parameters for Tummy Runner.
type RunnerPhysics struct {
	Gravity        float64 `yaml:"gravity"`
	JumpPower      float64 `yaml:"jump_power"`
	InitialSpeed   float64 `yaml:"initial_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
}

// RunnerObstacles defines spawn and collision parameters.
type RunnerObstacles struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	SpawnChance  float64 `yaml:"spawn_chance"`
	JunkAbove    float64 `yaml:"junk_above"` // Kind draw strictly above this yields junk
	JunkY        float64 `yaml:"junk_y"`
	HealthyMinY  float64 `yaml:"healthy_min_y"`
	HealthyBand  float64 `yaml:"healthy_band"` // Healthy y in [min, min+band)
	Padding      float64 `yaml:"padding"`
	HealthyScore int     `yaml:"healthy_score"`
}

// WheelConfig contains all configuration for the Habit Wheel.
type WheelConfig struct {
	Labels       []string `yaml:"labels"`
	MinRotations int      `yaml:"min_rotations"`
	MaxRotations int      `yaml:"max_rotations"` // Exclusive
	PhaseDegrees int      `yaml:"phase_degrees"`
	SettleMillis int      `yaml:"settle_ms"`
}

// SettleDelay returns the spin animation time as a duration.
func (c WheelConfig) SettleDelay() time.Duration {
	return time.Duration(c.SettleMillis) * time.Millisecond
}

// QuizConfig contains the question set and result tiers for the Tummy Quiz.
type QuizConfig struct {
	Name      string         `yaml:"name"`
	Questions []QuizQuestion `yaml:"questions"`
	Tiers     []QuizTier     `yaml:"tiers"` // Ordered by MinScore descending
}

// QuizQuestion is one question and its fixed options.
type QuizQuestion struct {
	Text    string       `yaml:"text"`
	Options []QuizOption `yaml:"options"`
}

// QuizOption pairs an answer label with the score it awards.
type QuizOption struct {
	Text  string `yaml:"text"`
	Score int    `yaml:"score"`
}

// QuizTier maps a minimum total score to a result message.
type QuizTier struct {
	Name     string `yaml:"name"`
	MinScore int    `yaml:"min_score"`
	Message  string `yaml:"message"`
}

// ServerConfig configures the content/auth HTTP service.
type ServerConfig struct {
	Address        string        `yaml:"address"`
	DBPath         string        `yaml:"db_path"`
	SecretKey      string        `yaml:"secret_key"`
	TokenTTL       time.Duration `yaml:"token_ttl"`
	BcryptCost     int           `yaml:"bcrypt_cost"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	SeedContent    bool          `yaml:"seed_content"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI string to a preset. Unknown values yield "".
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
