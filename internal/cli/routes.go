package cli

import (
	"github.com/spf13/cobra"

	"github.com/tivojn/google-maps-api-skill/internal/bind"
)

// DirectionsCmd creates the directions command.
func DirectionsCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "directions <origin> <destination>",
		Short: "Compute a route between two places",
		Example: `  gmaps directions "Berlin Hbf" "Hamburg Hbf"
  gmaps directions "Alexanderplatz" "Potsdam" --mode transit
  gmaps directions "Munich" "Stuttgart" --avoid-tolls --alternatives`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "directions",
				bind.Args{"origin": pos[0], "destination": pos[1]})
		},
	}

	cmd.Flags().String("mode", "", "Travel mode: driving, walking, bicycling, transit, two_wheeler")
	cmd.Flags().Bool("alternatives", false, "Compute alternative routes")
	cmd.Flags().String("waypoints", "", "Intermediate stops, pipe-separated")
	cmd.Flags().String("departure-time", "", "Departure time (RFC 3339)")
	cmd.Flags().Bool("avoid-tolls", false, "Avoid toll roads")
	cmd.Flags().Bool("avoid-highways", false, "Avoid highways")
	cmd.Flags().Bool("avoid-ferries", false, "Avoid ferries")
	cmd.Flags().String("units", "", "Unit system: metric, imperial")
	cmd.Flags().String("language", "", "Reply language")
	cmd.Flags().String("fields", "", "Override the response field mask")

	return cmd
}

// DistanceMatrixCmd creates the distance-matrix command.
func DistanceMatrixCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distance-matrix <origins> <destinations>",
		Short: "Compute travel time and distance between point sets",
		Long: `Compute travel time and distance for every origin/destination pair.
Origins and destinations are pipe-separated lists of addresses or
"lat,lng" pairs.`,
		Example: `  gmaps distance-matrix "Berlin|Leipzig" "Munich|Frankfurt"
  gmaps distance-matrix "52.52,13.40" "48.14,11.58" --mode driving`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "distance-matrix",
				bind.Args{"origins": pos[0], "destinations": pos[1]})
		},
	}

	cmd.Flags().String("mode", "", "Travel mode: driving, walking, bicycling, transit, two_wheeler")
	cmd.Flags().String("fields", "", "Override the response field mask")

	return cmd
}

// RouteOptimizeCmd creates the route-optimize command.
func RouteOptimizeCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route-optimize <request-file>",
		Short: "Optimize multi-vehicle tours from a JSON request file",
		Long: `Optimize vehicle tours. The request file holds the full
OptimizeToursRequest JSON (shipments, vehicles, constraints); it is
checked for well-formedness before any network activity.`,
		Example: `  gmaps route-optimize tours.json
  gmaps route-optimize tours.json --project my-gcp-project`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "route-optimize", bind.Args{"input": pos[0]})
		},
	}

	cmd.Flags().String("project", "", "Google Cloud project id")

	return cmd
}

// SnapRoadsCmd creates the snap-roads command.
func SnapRoadsCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snap-roads <lat,lng>...",
		Short: "Snap GPS points to the road network",
		Example: `  gmaps snap-roads 52.5200,13.4050 52.5205,13.4061 52.5210,13.4075
  gmaps snap-roads 52.5200,13.4050 52.5210,13.4075 --interpolate`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "snap-roads", bind.Args{"path": joinList(pos)})
		},
	}

	cmd.Flags().Bool("interpolate", false, "Add points to smooth the snapped path")

	return cmd
}

// NearestRoadsCmd creates the nearest-roads command.
func NearestRoadsCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:     "nearest-roads <lat,lng>...",
		Short:   "Find the nearest road segment for each point",
		Example: `  gmaps nearest-roads 52.5200,13.4050 48.1371,11.5754`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "nearest-roads", bind.Args{"points": joinList(pos)})
		},
	}
}
