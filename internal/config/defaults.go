package config

import (
	"clitemplate/internal/demo"
)

// DefaultName is greeted when neither an argument nor config names anyone.
const DefaultName = "World"

// GetDefaultConfig returns the configuration used when no config.yaml exists.
func GetDefaultConfig() Config {
	pacing := demo.DefaultPacing()
	return Config{
		Hello: HelloConfig{
			DefaultName: DefaultName,
		},
		Table: TableConfig{
			DefaultStyle: demo.TableSimple.String(),
		},
		Progress: ProgressConfig{
			DefaultType: demo.ProgressSimple.String(),
			Pacing: PacingConfig{
				Simple: pacing.Simple,
				Custom: pacing.Custom,
				Multi:  pacing.Multi,
			},
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}

// DemoPacing converts the pacing settings for the showcase.
func (c Config) DemoPacing() demo.Pacing {
	return demo.Pacing{
		Simple: c.Progress.Pacing.Simple,
		Custom: c.Progress.Pacing.Custom,
		Multi:  c.Progress.Pacing.Multi,
	}
}
