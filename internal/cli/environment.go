package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tivojn/google-maps-api-skill/internal/bind"
)

// AirQualityCmd creates the air-quality command.
func AirQualityCmd(env *Env) *cobra.Command {
	var health, pollutants bool

	cmd := &cobra.Command{
		Use:   "air-quality <lat> <lng>",
		Short: "Current air quality conditions at a point",
		Example: `  gmaps air-quality 52.5200 13.4050
  gmaps air-quality 28.6139 77.2090 --health --pollutants`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, pos []string) error {
			args := bind.Args{"lat": pos[0], "lng": pos[1]}
			var extras []string
			if health {
				extras = append(extras, "HEALTH_RECOMMENDATIONS")
			}
			if pollutants {
				extras = append(extras, "POLLUTANT_CONCENTRATION",
					"DOMINANT_POLLUTANT_CONCENTRATION")
			}
			if len(extras) > 0 {
				args["extras"] = strings.Join(extras, "|")
			}
			return run(cmd, env, "air-quality", args)
		},
	}

	cmd.Flags().BoolVar(&health, "health", false, "Include health recommendations")
	cmd.Flags().BoolVar(&pollutants, "pollutants", false, "Include pollutant concentrations")
	cmd.Flags().String("language", "", "Reply language")

	return cmd
}

// AirQualityHistoryCmd creates the air-quality-history command.
func AirQualityHistoryCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "air-quality-history <lat> <lng>",
		Short: "Hourly air quality history at a point",
		Example: `  gmaps air-quality-history 52.5200 13.4050
  gmaps air-quality-history 52.5200 13.4050 --hours 72`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "air-quality-history",
				bind.Args{"lat": pos[0], "lng": pos[1]})
		},
	}

	cmd.Flags().Int("hours", 0, "Hours of history, 1-720")
	cmd.Flags().String("language", "", "Reply language")

	return cmd
}

// AirQualityForecastCmd creates the air-quality-forecast command.
func AirQualityForecastCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "air-quality-forecast <lat> <lng>",
		Short:   "Hourly air quality forecast at a point",
		Example: `  gmaps air-quality-forecast 52.5200 13.4050`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "air-quality-forecast",
				bind.Args{"lat": pos[0], "lng": pos[1]})
		},
	}

	cmd.Flags().String("language", "", "Reply language")

	return cmd
}

// PollenCmd creates the pollen command.
func PollenCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pollen <lat> <lng>",
		Short: "Pollen forecast at a point",
		Example: `  gmaps pollen 52.5200 13.4050
  gmaps pollen 52.5200 13.4050 --days 5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "pollen",
				bind.Args{"lat": pos[0], "lng": pos[1]})
		},
	}

	cmd.Flags().Int("days", 0, "Forecast days, 1-5")
	cmd.Flags().String("language", "", "Reply language")

	return cmd
}

// SolarCmd creates the solar command.
func SolarCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solar <lat> <lng>",
		Short: "Solar potential of the building closest to a point",
		Example: `  gmaps solar 37.4450 -122.1390
  gmaps solar 37.4450 -122.1390 --quality HIGH`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "solar",
				bind.Args{"lat": pos[0], "lng": pos[1]})
		},
	}

	cmd.Flags().String("quality", "", "Minimum imagery quality: LOW, MEDIUM, HIGH")

	return cmd
}

// SolarLayersCmd creates the solar-layers command.
func SolarLayersCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solar-layers <lat> <lng>",
		Short: "Solar data layer URLs around a point",
		Example: `  gmaps solar-layers 37.4450 -122.1390
  gmaps solar-layers 37.4450 -122.1390 --radius 100 --pixel-size 0.5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "solar-layers",
				bind.Args{"lat": pos[0], "lng": pos[1]})
		},
	}

	cmd.Flags().Float64("radius", 0, "Layer radius in meters, up to 500")
	cmd.Flags().String("quality", "", "Minimum imagery quality: LOW, MEDIUM, HIGH")
	cmd.Flags().Float64("pixel-size", 0, "Pixel resolution in meters")

	return cmd
}
