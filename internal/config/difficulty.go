package config

// speedScaleForPreset returns the multiplier applied to the runner's initial speed.
func speedScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// ApplyRunnerPreset modifies the runner config based on a difficulty preset.
// Fixed keeps the configured initial speed and disables the speed ramp.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Physics.SpeedIncrement = 0
		return
	}
	cfg.Physics.InitialSpeed *= speedScaleForPreset(preset)
	if preset == DifficultyHard {
		cfg.Physics.SpeedIncrement *= 2
	}
}
