package cli

import (
	"github.com/spf13/cobra"

	"github.com/tivojn/google-maps-api-skill/internal/bind"
)

// GeocodeCmd creates the geocode command.
func GeocodeCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "geocode <address>...",
		Short: "Convert an address to coordinates",
		Example: `  gmaps geocode "1600 Amphitheatre Parkway, Mountain View, CA"
  gmaps geocode Brandenburger Tor Berlin --language de`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "geocode", bind.Args{"address": joinWords(pos)})
		},
	}

	cmd.Flags().String("bounds", "", "Viewport bias: south,west|north,east")
	cmd.Flags().String("region", "", "Region bias (ccTLD, e.g. de)")
	cmd.Flags().String("components", "", "Component filter, e.g. country:DE|postal_code:10117")
	cmd.Flags().String("language", "", "Reply language")

	return cmd
}

// ReverseGeocodeCmd creates the reverse-geocode command.
func ReverseGeocodeCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reverse-geocode <lat> <lng>",
		Short: "Convert coordinates to addresses",
		Example: `  gmaps reverse-geocode 52.5162 13.3777
  gmaps reverse-geocode 40.714 -73.998 --result-type street_address`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "reverse-geocode",
				bind.Args{"latlng": pair(pos[0], pos[1])})
		},
	}

	cmd.Flags().String("result-type", "", "Filter by address type, e.g. street_address")
	cmd.Flags().String("location-type", "", "Filter by location type, e.g. ROOFTOP")
	cmd.Flags().String("language", "", "Reply language")

	return cmd
}

// ValidateAddressCmd creates the validate-address command.
func ValidateAddressCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate-address <address-line>...",
		Short: "Validate and standardize a postal address",
		Example: `  gmaps validate-address "1600 Amphitheatre Pkwy" "Mountain View, CA 94043" --region US
  gmaps validate-address "Unter den Linden 77" --region DE --locality Berlin`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return run(cmd, env, "validate-address",
				bind.Args{"address": joinList(pos)})
		},
	}

	cmd.Flags().String("region", "", "CLDR region code, e.g. US")
	cmd.Flags().String("locality", "", "City or locality")
	cmd.Flags().Bool("enable-usps", false, "Run USPS CASS processing (US only)")

	return cmd
}
