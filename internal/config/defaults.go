package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

//go:embed defaults/wheel.yaml
var defaultWheelYAML []byte

//go:embed defaults/quiz.yaml
var defaultQuizYAML []byte

//go:embed defaults/server.yaml
var defaultServerYAML []byte

// DefaultRunnerConfig returns the default Tummy Runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Playfield: RunnerPlayfield{
			Width: 800,
			Floor: 400,
		},
		Player: RunnerPlayer{
			X:      50,
			Width:  40,
			Height: 40,
		},
		Physics: RunnerPhysics{
			Gravity:        0.6,
			JumpPower:      -13,
			InitialSpeed:   4,
			SpeedIncrement: 0.0005,
		},
		Obstacles: RunnerObstacles{
			Width:        30,
			Height:       30,
			SpawnChance:  0.01,
			JunkAbove:    0.5,
			JunkY:        360,
			HealthyMinY:  100,
			HealthyBand:  200,
			Padding:      5,
			HealthyScore: 10,
		},
	}
}

// DefaultWheelConfig returns the default Habit Wheel configuration.
func DefaultWheelConfig() WheelConfig {
	return WheelConfig{
		Labels: []string{
			"No Sugar", "Eat Fiber", "Drink Water", "Walk 10m", "Sleep 8h", "Eat Yogurt",
		},
		MinRotations: 5,
		MaxRotations: 10,
		PhaseDegrees: 30,
		SettleMillis: 4000,
	}
}

// DefaultQuizConfig returns the default Tummy Quiz question set.
func DefaultQuizConfig() QuizConfig {
	opts := func(good, mid, bad string) []QuizOption {
		return []QuizOption{
			{Text: good, Score: 10},
			{Text: mid, Score: 5},
			{Text: bad, Score: 0},
		}
	}

	return QuizConfig{
		Name: "DQ_Test",
		Questions: []QuizQuestion{
			{Text: "How often do you feel bloated after meals?", Options: opts("Rarely", "Sometimes", "Often")},
			{Text: "How many glasses of water do you drink daily?", Options: opts("8 or more", "4 to 7", "Less than 4")},
			{Text: "Do you include fruits and vegetables in your diet?", Options: opts("Daily", "Occasionally", "Rarely")},
			{Text: "How would you rate your sleep quality?", Options: opts("Good (7-8 hrs)", "Average (5-6 hrs)", "Poor (<5 hrs)")},
			{Text: "How often do you exercise?", Options: opts("Regularly", "Sometimes", "Never")},
		},
		Tiers: []QuizTier{
			{Name: "A", MinScore: 40, Message: "Amazing! Your tummy is very happy! 🌟"},
			{Name: "B", MinScore: 25, Message: "Good job! A few tweaks and you'll be perfect. 👍"},
			{Name: "C", MinScore: 0, Message: "Your tummy needs some love. Let's start healthy habits! 💚"},
		},
	}
}

// DefaultServerConfig returns the default content service configuration.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:        ":3000",
		DBPath:         "~/.tummy/content.db",
		SecretKey:      "happytummy_secret_key",
		TokenTTL:       24 * time.Hour,
		BcryptCost:     8,
		RequestTimeout: 60 * time.Second,
		SeedContent:    true,
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "runner":
		return defaultRunnerYAML
	case "wheel":
		return defaultWheelYAML
	case "quiz":
		return defaultQuizYAML
	case "server":
		return defaultServerYAML
	default:
		return nil
	}
}
