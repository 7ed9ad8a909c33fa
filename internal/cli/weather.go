package cli

import (
	"github.com/spf13/cobra"

	"github.com/tivojn/google-maps-api-skill/internal/bind"
)

// WeatherCurrentCmd creates the weather-current command.
func WeatherCurrentCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "weather-current <lat> <lng>",
		Short:   "Current weather conditions at a point",
		Example: `  gmaps weather-current 52.5200 13.4050`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "weather-current",
				bind.Args{"lat": pos[0], "lng": pos[1]})
		},
	}

	cmd.Flags().String("language", "", "Reply language")

	return cmd
}

// WeatherHourlyCmd creates the weather-hourly command.
func WeatherHourlyCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weather-hourly <lat> <lng>",
		Short: "Hourly weather forecast at a point",
		Example: `  gmaps weather-hourly 52.5200 13.4050
  gmaps weather-hourly 52.5200 13.4050 --hours 48`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "weather-hourly",
				bind.Args{"lat": pos[0], "lng": pos[1]})
		},
	}

	cmd.Flags().Int("hours", 0, "Forecast hours, 1-240")
	cmd.Flags().String("language", "", "Reply language")

	return cmd
}

// WeatherDailyCmd creates the weather-daily command.
func WeatherDailyCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weather-daily <lat> <lng>",
		Short: "Daily weather forecast at a point",
		Example: `  gmaps weather-daily 52.5200 13.4050
  gmaps weather-daily 52.5200 13.4050 --days 7`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "weather-daily",
				bind.Args{"lat": pos[0], "lng": pos[1]})
		},
	}

	cmd.Flags().Int("days", 0, "Forecast days, 1-10")
	cmd.Flags().String("language", "", "Reply language")

	return cmd
}

// WeatherHistoryCmd creates the weather-history command.
func WeatherHistoryCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weather-history <lat> <lng>",
		Short: "Hourly weather history at a point",
		Example: `  gmaps weather-history 52.5200 13.4050
  gmaps weather-history 52.5200 13.4050 --hours 168`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "weather-history",
				bind.Args{"lat": pos[0], "lng": pos[1]})
		},
	}

	cmd.Flags().Int("hours", 0, "Hours of history, 1-720")
	cmd.Flags().String("language", "", "Reply language")

	return cmd
}
