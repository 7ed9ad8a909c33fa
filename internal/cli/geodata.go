package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tivojn/google-maps-api-skill/internal/bind"
)

// ElevationCmd creates the elevation command.
func ElevationCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "elevation",
		Short: "Elevation at points or sampled along a path",
		Long: `Look up elevation for discrete points (--locations) or sample it
along a path (--path with --samples). Exactly one of the two must be
given.`,
		Example: `  gmaps elevation --locations 27.9881,86.9250
  gmaps elevation --locations "52.52,13.40|48.14,11.58"
  gmaps elevation --path "52.52,13.40|48.14,11.58" --samples 50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "elevation", bind.Args{})
		},
	}

	cmd.Flags().String("locations", "", "Points as pipe-separated lat,lng pairs")
	cmd.Flags().String("path", "", "Path as pipe-separated lat,lng pairs")
	cmd.Flags().Int("samples", 0, "Sample count along the path, at least 2")

	return cmd
}

// TimezoneCmd creates the timezone command.
func TimezoneCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timezone <lat> <lng>",
		Short: "Time zone at a point",
		Example: `  gmaps timezone 52.5200 13.4050
  gmaps timezone 40.7128 -74.0060 --timestamp 1735689600`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, pos []string) error {
			args := bind.Args{"location": pair(pos[0], pos[1])}
			// The service resolves DST against this instant; default to now.
			if !cmd.Flags().Changed("timestamp") {
				args["timestamp"] = strconv.FormatInt(env.Now().Unix(), 10)
			}
			return run(cmd, env, "timezone", args)
		},
	}

	cmd.Flags().Int64("timestamp", 0, "Unix timestamp to resolve DST against (default now)")
	cmd.Flags().String("language", "", "Reply language")

	return cmd
}

// GeolocationCmd creates the geolocation command.
func GeolocationCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "geolocation",
		Short: "Estimate a position from WiFi, cell towers, or IP",
		Long: `Estimate the caller's position. With no signals the service falls
back to IP geolocation. WiFi access points are "MAC[,signalStrength]"
items; cell towers are "cellId[,lac[,mcc[,mnc]]]" items.`,
		Example: `  gmaps geolocation
  gmaps geolocation --wifi "00:25:9c:cf:1c:ac,-43|00:25:9c:cf:1c:ad,-55"
  gmaps geolocation --cell "42,415,310,410" --consider-ip=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "geolocation", bind.Args{})
		},
	}

	cmd.Flags().String("wifi", "", "WiFi access points, pipe-separated MAC[,signal] items")
	cmd.Flags().String("cell", "", "Cell towers, pipe-separated cellId[,lac[,mcc[,mnc]]] items")
	cmd.Flags().Bool("consider-ip", true, "Fall back to IP-based location")

	return cmd
}

// OperationsCmd creates the operations command, listing every supported
// operation name.
func OperationsCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:     "operations",
		Short:   "List all supported operations",
		Example: `  gmaps operations`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, pos []string) error {
			return writeJSON(env.Stdout, env.client().Operations())
		},
	}
}
