package cli

import (
	"github.com/spf13/cobra"

	"github.com/tivojn/google-maps-api-skill/internal/bind"
)

// StreetviewCmd creates the streetview command.
func StreetviewCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "streetview [location]...",
		Short: "Download a Street View image",
		Long: `Download a Street View image for a location (address or "lat,lng")
or a panorama id (--pano). Exactly one of the two must be given. The
image is written to streetview.jpg unless --output names a destination.`,
		Example: `  gmaps streetview "Brandenburg Gate, Berlin"
  gmaps streetview 52.5163,13.3777 --heading 90 --fov 120
  gmaps streetview --pano tu510ie_z4ptBZYo2BGEJg -o gate.jpg`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, pos []string) error {
			args := bind.Args{}
			if len(pos) > 0 {
				args["location"] = joinWords(pos)
			}
			return run(cmd, env, "streetview", args)
		},
	}

	cmd.Flags().String("pano", "", "Panorama id instead of a location")
	cmd.Flags().String("size", "", "Image size as WIDTHxHEIGHT, e.g. 600x400")
	cmd.Flags().Float64("heading", 0, "Camera heading in degrees, 0-360")
	cmd.Flags().Float64("pitch", 0, "Camera pitch in degrees, -90 to 90")
	cmd.Flags().Float64("fov", 0, "Field of view in degrees, 10-120")
	cmd.Flags().StringP("output", "o", "", "Destination file (default streetview.jpg)")

	return cmd
}

// StaticMapCmd creates the static-map command.
func StaticMapCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "static-map <center>...",
		Short: "Download a static map image",
		Example: `  gmaps static-map "Berlin, Germany"
  gmaps static-map 52.52,13.40 --zoom 12 --maptype satellite
  gmaps static-map Berlin --markers "color:red|52.52,13.40" -o berlin.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "static-map",
				bind.Args{"center": joinWords(pos)})
		},
	}

	cmd.Flags().Int("zoom", 0, "Zoom level, 0-21")
	cmd.Flags().String("size", "", "Image size as WIDTHxHEIGHT, e.g. 600x400")
	cmd.Flags().String("maptype", "", "Map type: roadmap, satellite, terrain, hybrid")
	cmd.Flags().String("format", "", "Image format: png, jpg, gif")
	cmd.Flags().String("markers", "", "Marker spec, e.g. color:red|52.52,13.40")
	cmd.Flags().String("path-line", "", "Path spec, e.g. color:blue|52.52,13.40|52.53,13.41")
	cmd.Flags().String("style", "", "Custom map style spec")
	cmd.Flags().Int("scale", 0, "Pixel density multiplier: 1, 2, or 4")
	cmd.Flags().StringP("output", "o", "", "Destination file (default map.<format>)")

	return cmd
}

// AerialViewCheckCmd creates the aerial-view-check command.
func AerialViewCheckCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:     "aerial-view-check <address>...",
		Short:   "Check whether an aerial view video exists for an address",
		Example: `  gmaps aerial-view-check "500 W 2nd St, Austin, TX"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "aerial-view-check",
				bind.Args{"address": joinWords(pos)})
		},
	}
}

// AerialViewRenderCmd creates the aerial-view-render command.
func AerialViewRenderCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:     "aerial-view-render <address>...",
		Short:   "Request rendering of an aerial view video for an address",
		Example: `  gmaps aerial-view-render "500 W 2nd St, Austin, TX"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "aerial-view-render",
				bind.Args{"address": joinWords(pos)})
		},
	}
}

// AerialViewGetCmd creates the aerial-view-get command.
func AerialViewGetCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aerial-view-get",
		Short: "Fetch aerial view video URIs by video id or address",
		Example: `  gmaps aerial-view-get --video-id eLsL5nVvYahwYwL8
  gmaps aerial-view-get --address "500 W 2nd St, Austin, TX"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "aerial-view-get", bind.Args{})
		},
	}

	cmd.Flags().String("video-id", "", "Video id from a render or check call")
	cmd.Flags().String("address", "", "Address the video was rendered for")

	return cmd
}

// EmbedURLCmd creates the embed-url command.
func EmbedURLCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "embed-url",
		Short: "Build a Maps Embed iframe URL",
		Long: `Build a Maps Embed API URL suitable for an iframe src attribute.
No network call is made; the URL is rendered locally with the resolved
API key.`,
		Example: `  gmaps embed-url --query "Eiffel Tower"
  gmaps embed-url --mode directions --origin Berlin --destination Hamburg
  gmaps embed-url --mode view --center 52.52,13.40 --zoom 12`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "embed-url", bind.Args{})
		},
	}

	cmd.Flags().String("mode", "", "Embed mode: place, directions, search, view, streetview")
	cmd.Flags().String("query", "", "Place or search query (place/search modes)")
	cmd.Flags().String("origin", "", "Route origin (directions mode)")
	cmd.Flags().String("destination", "", "Route destination (directions mode)")
	cmd.Flags().String("waypoints", "", "Route waypoints, pipe-separated (directions mode)")
	cmd.Flags().String("center", "", "Map center as lat,lng (view mode)")
	cmd.Flags().String("location", "", "Panorama location as lat,lng (streetview mode)")
	cmd.Flags().Int("zoom", 0, "Zoom level, 0-21")
	cmd.Flags().Float64("heading", 0, "Camera heading in degrees, 0-360")

	return cmd
}
