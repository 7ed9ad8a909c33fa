package cli

import "github.com/spf13/cobra"

// Commands returns every operation command wired to the given Env, in
// the order they appear in help output.
func Commands(env *Env) []*cobra.Command {
	return []*cobra.Command{
		// Geocoding and addresses
		GeocodeCmd(env),
		ReverseGeocodeCmd(env),
		ValidateAddressCmd(env),

		// Routing and roads
		DirectionsCmd(env),
		DistanceMatrixCmd(env),
		RouteOptimizeCmd(env),
		SnapRoadsCmd(env),
		NearestRoadsCmd(env),

		// Places
		PlacesSearchCmd(env),
		PlacesNearbyCmd(env),
		PlaceDetailsCmd(env),
		AutocompleteCmd(env),
		PlacePhotoCmd(env),
		PlacesAggregateCmd(env),

		// Environment
		AirQualityCmd(env),
		AirQualityHistoryCmd(env),
		AirQualityForecastCmd(env),
		PollenCmd(env),
		SolarCmd(env),
		SolarLayersCmd(env),

		// Weather
		WeatherCurrentCmd(env),
		WeatherHourlyCmd(env),
		WeatherDailyCmd(env),
		WeatherHistoryCmd(env),

		// Imagery
		StreetviewCmd(env),
		StaticMapCmd(env),
		AerialViewCheckCmd(env),
		AerialViewRenderCmd(env),
		AerialViewGetCmd(env),
		EmbedURLCmd(env),

		// Geodata
		ElevationCmd(env),
		TimezoneCmd(env),
		GeolocationCmd(env),

		// Introspection
		OperationsCmd(env),
	}
}
