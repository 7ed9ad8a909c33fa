package cli

import (
	"github.com/spf13/cobra"

	"github.com/tivojn/google-maps-api-skill/internal/bind"
)

// PlacesSearchCmd creates the places-search command.
func PlacesSearchCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "places-search <query>...",
		Short: "Search places by free-form text",
		Example: `  gmaps places-search "vegan restaurants in Kreuzberg"
  gmaps places-search pizza --location 52.52,13.40 --radius 2000 --min-rating 4
  gmaps places-search coffee --open-now --max-results 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "places-search",
				bind.Args{"query": joinWords(pos)})
		},
	}

	cmd.Flags().String("location", "", "Bias center as lat,lng")
	cmd.Flags().Float64("radius", 0, "Bias radius in meters (requires --location)")
	cmd.Flags().String("type", "", "Restrict to one place type, e.g. restaurant")
	cmd.Flags().Float64("min-rating", 0, "Minimum rating, 1-5")
	cmd.Flags().Bool("open-now", false, "Only places open right now")
	cmd.Flags().Int("max-results", 0, "Result cap, 1-20")
	cmd.Flags().String("language", "", "Reply language")
	cmd.Flags().String("fields", "", "Override the response field mask")

	return cmd
}

// PlacesNearbyCmd creates the places-nearby command.
func PlacesNearbyCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "places-nearby <lat> <lng>",
		Short: "List places around a point",
		Example: `  gmaps places-nearby 52.5200 13.4050
  gmaps places-nearby 52.5200 13.4050 --radius 1000 --type cafe|bakery`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "places-nearby",
				bind.Args{"lat": pos[0], "lng": pos[1]})
		},
	}

	cmd.Flags().Float64("radius", 0, "Search radius in meters, up to 50000")
	cmd.Flags().String("type", "", "Place types, pipe-separated")
	cmd.Flags().Int("max-results", 0, "Result cap, 1-20")
	cmd.Flags().String("language", "", "Reply language")
	cmd.Flags().String("fields", "", "Override the response field mask")

	return cmd
}

// PlaceDetailsCmd creates the place-details command.
func PlaceDetailsCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "place-details <place-id>",
		Short:   "Fetch full details for one place",
		Example: `  gmaps place-details ChIJAVkDPzdOqEcRcDteW0YgIQQ`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "place-details", bind.Args{"place-id": pos[0]})
		},
	}

	cmd.Flags().String("fields", "", "Override the response field mask")

	return cmd
}

// AutocompleteCmd creates the autocomplete command.
func AutocompleteCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autocomplete <input>...",
		Short: "Suggest place completions for partial input",
		Example: `  gmaps autocomplete "brandenb"
  gmaps autocomplete "cafe flor" --location 52.52,13.40 --radius 5000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "autocomplete",
				bind.Args{"input": joinWords(pos)})
		},
	}

	cmd.Flags().String("location", "", "Bias center as lat,lng")
	cmd.Flags().Float64("radius", 0, "Bias radius in meters (requires --location)")
	cmd.Flags().String("region", "", "Region code, e.g. de")
	cmd.Flags().String("types", "", "Primary types to include, pipe-separated")
	cmd.Flags().String("language", "", "Reply language")

	return cmd
}

// PlacePhotoCmd creates the place-photo command.
func PlacePhotoCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "place-photo <photo-ref>",
		Short: "Resolve a place photo reference to its image URI",
		Long: `Resolve a photo resource name (places/.../photos/.../) to a servable
image URI. The reply is JSON carrying photoUri; pass the URI to any HTTP
client to fetch the bytes.`,
		Example: `  gmaps place-photo places/ChIJAVkDPzdOqEcRcDteW0YgIQQ/photos/AUac
  gmaps place-photo places/ChIJ.../photos/AUac --max-width 1200`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "place-photo", bind.Args{"photo-ref": pos[0]})
		},
	}

	cmd.Flags().Int("max-height", 0, "Maximum image height in pixels, 1-4800")
	cmd.Flags().Int("max-width", 0, "Maximum image width in pixels, 1-4800")

	return cmd
}

// PlacesAggregateCmd creates the places-aggregate command.
func PlacesAggregateCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "places-aggregate <lat> <lng>",
		Short: "Count or list places matching filters in an area",
		Example: `  gmaps places-aggregate 52.5200 13.4050 --type restaurant
  gmaps places-aggregate 52.5200 13.4050 --type cafe --min-rating 4.5 --radius 2000`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "places-aggregate",
				bind.Args{"location": pair(pos[0], pos[1])})
		},
	}

	cmd.Flags().String("insight", "", "Insight kind: INSIGHT_COUNT, INSIGHT_PLACES")
	cmd.Flags().Float64("radius", 0, "Area radius in meters, up to 50000")
	cmd.Flags().String("type", "", "Place types to include, pipe-separated")
	cmd.Flags().Float64("min-rating", 0, "Minimum rating, 1-5")
	cmd.Flags().String("price-levels", "", "Price levels, pipe-separated PRICE_LEVEL_* tokens")

	return cmd
}
