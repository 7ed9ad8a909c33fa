package registry

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Default field masks for the new-style APIs. Field masks keep replies
// (and billing) bounded; callers can override with --fields.
const (
	placesFieldMask = "places.id,places.displayName,places.formattedAddress," +
		"places.rating,places.userRatingCount,places.types," +
		"places.nationalPhoneNumber,places.websiteUri,places.regularOpeningHours," +
		"places.priceLevel,places.editorialSummary,places.location"

	placeDetailsFieldMask = "id,displayName,formattedAddress,rating," +
		"userRatingCount,types,nationalPhoneNumber,internationalPhoneNumber," +
		"websiteUri,regularOpeningHours,priceLevel,editorialSummary,reviews," +
		"photos,location,adrFormatAddress,businessStatus,googleMapsUri"

	routesFieldMask = "routes.duration,routes.distanceMeters," +
		"routes.polyline.encodedPolyline,routes.legs,routes.description," +
		"routes.warnings,routes.travelAdvisory"

	routeMatrixFieldMask = "originIndex,destinationIndex,duration," +
		"distanceMeters,status,condition"
)

var sizePattern = regexp.MustCompile(`^\d+x\d+$`)

// travelModes maps CLI travel mode tokens to Routes API enums.
var travelModes = map[string]string{
	"driving":     "DRIVE",
	"walking":     "WALK",
	"bicycling":   "BICYCLE",
	"transit":     "TRANSIT",
	"two_wheeler": "TWO_WHEELER",
}

// ident builds an enum whose wire values equal the accepted tokens.
func ident(tokens ...string) map[string]string {
	m := make(map[string]string, len(tokens))
	for _, t := range tokens {
		m[t] = t
	}
	return m
}

// Numeric range rules are written as validation.By closures rather than
// the stock Min/Max/In rules: the stock rules treat a numeric zero as
// "empty" and skip it, which would let an explicitly supplied
// out-of-range 0 through. The closures check every value they are
// handed; the binder never hands them an absent parameter.

func asNumber(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case float64:
		return n, nil
	}
	return 0, errors.New("must be a number")
}

func fmtBound(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// between requires lo <= n <= hi, inclusive at both ends.
func between(lo, hi float64) validation.Rule {
	return validation.By(func(v any) error {
		n, err := asNumber(v)
		if err != nil {
			return err
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %s and %s", fmtBound(lo), fmtBound(hi))
		}
		return nil
	})
}

// positiveUpTo requires 0 < n <= hi.
func positiveUpTo(hi float64) validation.Rule {
	return validation.By(func(v any) error {
		n, err := asNumber(v)
		if err != nil {
			return err
		}
		if n <= 0 {
			return errors.New("must be greater than 0")
		}
		if n > hi {
			return fmt.Errorf("must be no greater than %s", fmtBound(hi))
		}
		return nil
	})
}

// positiveNumber requires n > 0.
func positiveNumber() validation.Rule {
	return validation.By(func(v any) error {
		n, err := asNumber(v)
		if err != nil {
			return err
		}
		if n <= 0 {
			return errors.New("must be greater than 0")
		}
		return nil
	})
}

// atLeast requires n >= lo.
func atLeast(lo float64) validation.Rule {
	return validation.By(func(v any) error {
		n, err := asNumber(v)
		if err != nil {
			return err
		}
		if n < lo {
			return fmt.Errorf("must be no less than %s", fmtBound(lo))
		}
		return nil
	})
}

// oneOfInts requires n to be one of the allowed integer values.
func oneOfInts(allowed ...int) validation.Rule {
	return validation.By(func(v any) error {
		n, err := asNumber(v)
		if err != nil {
			return err
		}
		for _, a := range allowed {
			if n == float64(a) {
				return nil
			}
		}
		parts := make([]string, len(allowed))
		for i, a := range allowed {
			parts[i] = strconv.Itoa(a)
		}
		return fmt.Errorf("must be one of %v", parts)
	})
}

// latFloat/lngFloat are the range rules the remote services enforce.
func latFloat() []validation.Rule {
	return []validation.Rule{between(-90, 90)}
}

func lngFloat() []validation.Rule {
	return []validation.Rule{between(-180, 180)}
}

// latLngAt returns the lat/lng float pair bound at prefix.latitude and
// prefix.longitude, in the given placement (the new APIs take the pair
// as two dotted fields in both query strings and JSON bodies).
func latLngAt(placement Placement, prefix string) []Param {
	return []Param{
		{Name: "lat", Wire: prefix + ".latitude", Placement: placement,
			Type: TypeFloat, Required: true, Rules: latFloat()},
		{Name: "lng", Wire: prefix + ".longitude", Placement: placement,
			Type: TypeFloat, Required: true, Rules: lngFloat()},
	}
}

// languageIn returns the optional language parameter with the given wire
// key ("language" for legacy APIs, "languageCode" for the new ones).
func languageIn(placement Placement, wire string) Param {
	return Param{Name: "language", Wire: wire, Placement: placement, Type: TypeString}
}

// catalog is the full operation set. Descriptors are read-only
// process-wide state; New() indexes them once at startup.
var catalog = []Descriptor{
	{
		Name:    "geocode",
		Method:  http.MethodGet,
		URL:     "https://maps.googleapis.com/maps/api/geocode/json",
		Service: "geocoding-backend.googleapis.com",
		Mode:    ModeStructured,
		Params: []Param{
			{Name: "address", Placement: InQuery, Type: TypeString, Required: true,
				Rules: []validation.Rule{validation.Length(1, 0)}},
			{Name: "bounds", Placement: InQuery, Type: TypeString},
			{Name: "region", Placement: InQuery, Type: TypeString},
			{Name: "components", Placement: InQuery, Type: TypeString},
			languageIn(InQuery, "language"),
		},
	},
	{
		Name:    "reverse-geocode",
		Method:  http.MethodGet,
		URL:     "https://maps.googleapis.com/maps/api/geocode/json",
		Service: "geocoding-backend.googleapis.com",
		Mode:    ModeStructured,
		Params: []Param{
			{Name: "latlng", Placement: InQuery, Type: TypeLatLng, Required: true},
			{Name: "result-type", Wire: "result_type", Placement: InQuery, Type: TypeString},
			{Name: "location-type", Wire: "location_type", Placement: InQuery, Type: TypeString},
			languageIn(InQuery, "language"),
		},
	},
	{
		Name:      "directions",
		Method:    http.MethodPost,
		URL:       "https://routes.googleapis.com/directions/v2:computeRoutes",
		Service:   "routes.googleapis.com",
		Mode:      ModeStructured,
		FieldMask: routesFieldMask,
		Params: []Param{
			{Name: "origin", Wire: "origin.address", Placement: InBody,
				Type: TypeString, Required: true},
			{Name: "destination", Wire: "destination.address", Placement: InBody,
				Type: TypeString, Required: true},
			{Name: "mode", Wire: "travelMode", Placement: InBody, Type: TypeString,
				Default: "driving", Enum: travelModes},
			{Name: "alternatives", Wire: "computeAlternativeRoutes", Placement: InBody,
				Type: TypeBool},
			{Name: "waypoints", Wire: "intermediates[].address", Placement: InBody,
				Type: TypeStringList, MaxItems: 25},
			{Name: "departure-time", Wire: "departureTime", Placement: InBody,
				Type: TypeString},
			{Name: "avoid-tolls", Wire: "routeModifiers.avoidTolls", Placement: InBody,
				Type: TypeBool},
			{Name: "avoid-highways", Wire: "routeModifiers.avoidHighways", Placement: InBody,
				Type: TypeBool},
			{Name: "avoid-ferries", Wire: "routeModifiers.avoidFerries", Placement: InBody,
				Type: TypeBool},
			{Name: "units", Placement: InBody, Type: TypeString, Default: "metric",
				Enum: map[string]string{"metric": "METRIC", "imperial": "IMPERIAL"}},
			{Name: "language", Wire: "languageCode", Placement: InBody,
				Type: TypeString, Default: "en"},
			{Name: "fields", Placement: InFieldMask, Type: TypeString},
		},
	},
	{
		Name:      "distance-matrix",
		Method:    http.MethodPost,
		URL:       "https://routes.googleapis.com/distanceMatrix/v2:computeRouteMatrix",
		Service:   "routes.googleapis.com",
		Mode:      ModeStructured,
		FieldMask: routeMatrixFieldMask,
		Params: []Param{
			{Name: "origins", Wire: "origins[].waypoint.address", Placement: InBody,
				Type: TypeStringList, Required: true, MinItems: 1, MaxItems: 50},
			{Name: "destinations", Wire: "destinations[].waypoint.address", Placement: InBody,
				Type: TypeStringList, Required: true, MinItems: 1, MaxItems: 50},
			{Name: "mode", Wire: "travelMode", Placement: InBody, Type: TypeString,
				Default: "driving", Enum: travelModes},
			{Name: "fields", Placement: InFieldMask, Type: TypeString},
		},
	},
	{
		Name:      "places-search",
		Method:    http.MethodPost,
		URL:       "https://places.googleapis.com/v1/places:searchText",
		Service:   "places.googleapis.com",
		Mode:      ModeStructured,
		FieldMask: placesFieldMask,
		Params: []Param{
			{Name: "query", Wire: "textQuery", Placement: InBody, Type: TypeString,
				Required: true, Rules: []validation.Rule{validation.Length(1, 0)}},
			{Name: "location", Wire: "locationBias.circle.center", Placement: InBody,
				Type: TypeLatLng},
			{Name: "radius", Wire: "locationBias.circle.radius", Placement: InBody,
				Type: TypeFloat, Default: "5000", OnlyWith: "location",
				Rules: []validation.Rule{positiveUpTo(50000)}},
			{Name: "type", Wire: "includedType", Placement: InBody, Type: TypeString},
			{Name: "min-rating", Wire: "minRating", Placement: InBody, Type: TypeFloat,
				Rules: []validation.Rule{between(1, 5)}},
			{Name: "open-now", Wire: "openNow", Placement: InBody, Type: TypeBool},
			{Name: "max-results", Wire: "maxResultCount", Placement: InBody, Type: TypeInt,
				Rules: []validation.Rule{between(1, 20)}},
			languageIn(InBody, "languageCode"),
			{Name: "fields", Placement: InFieldMask, Type: TypeString},
		},
	},
	{
		Name:      "places-nearby",
		Method:    http.MethodPost,
		URL:       "https://places.googleapis.com/v1/places:searchNearby",
		Service:   "places.googleapis.com",
		Mode:      ModeStructured,
		FieldMask: placesFieldMask,
		Params: append(latLngAt(InBody, "locationRestriction.circle.center"),
			Param{Name: "radius", Wire: "locationRestriction.circle.radius",
				Placement: InBody, Type: TypeFloat, Default: "500",
				Rules: []validation.Rule{positiveUpTo(50000)}},
			Param{Name: "type", Wire: "includedTypes[]", Placement: InBody,
				Type: TypeStringList},
			Param{Name: "max-results", Wire: "maxResultCount", Placement: InBody,
				Type: TypeInt, Default: "20",
				Rules: []validation.Rule{between(1, 20)}},
			languageIn(InBody, "languageCode"),
			Param{Name: "fields", Placement: InFieldMask, Type: TypeString},
		),
	},
	{
		Name:      "place-details",
		Method:    http.MethodGet,
		URL:       "https://places.googleapis.com/v1/places/{place-id}",
		Service:   "places.googleapis.com",
		Mode:      ModeStructured,
		FieldMask: placeDetailsFieldMask,
		Params: []Param{
			{Name: "place-id", Placement: InPath, Type: TypeString, Required: true,
				Rules: []validation.Rule{validation.Length(1, 0)}},
			{Name: "fields", Placement: InFieldMask, Type: TypeString},
		},
	},
	{
		Name:    "autocomplete",
		Method:  http.MethodPost,
		URL:     "https://places.googleapis.com/v1/places:autocomplete",
		Service: "places.googleapis.com",
		Mode:    ModeStructured,
		Params: []Param{
			{Name: "input", Placement: InBody, Type: TypeString, Required: true,
				Rules: []validation.Rule{validation.Length(1, 0)}},
			{Name: "location", Wire: "locationBias.circle.center", Placement: InBody,
				Type: TypeLatLng},
			{Name: "radius", Wire: "locationBias.circle.radius", Placement: InBody,
				Type: TypeFloat, Default: "5000", OnlyWith: "location",
				Rules: []validation.Rule{positiveUpTo(50000)}},
			{Name: "region", Wire: "regionCode", Placement: InBody, Type: TypeString},
			{Name: "types", Wire: "includedPrimaryTypes[]", Placement: InBody,
				Type: TypeStringList, MaxItems: 5},
			languageIn(InBody, "languageCode"),
		},
	},
	{
		Name:    "place-photo",
		Method:  http.MethodGet,
		URL:     "https://places.googleapis.com/v1/{photo-ref}/media",
		Service: "places.googleapis.com",
		Mode:    ModeStructured,
		Params: []Param{
			{Name: "photo-ref", Placement: InPath, Type: TypeString, Required: true,
				Rules: []validation.Rule{validation.Length(1, 0)}},
			{Name: "max-height", Wire: "maxHeightPx", Placement: InQuery, Type: TypeInt,
				Default: "400",
				Rules:   []validation.Rule{between(1, 4800)}},
			{Name: "max-width", Wire: "maxWidthPx", Placement: InQuery, Type: TypeInt,
				Default: "400",
				Rules:   []validation.Rule{between(1, 4800)}},
			// Forces a JSON {photoUri} reply instead of a redirect to bytes.
			{Name: "skip-redirect", Wire: "skipHttpRedirect", Placement: InQuery,
				Type: TypeBool, Default: "true"},
		},
	},
	{
		Name:    "elevation",
		Method:  http.MethodGet,
		URL:     "https://maps.googleapis.com/maps/api/elevation/json",
		Service: "elevation-backend.googleapis.com",
		Mode:    ModeStructured,
		Params: []Param{
			{Name: "locations", Placement: InQuery, Type: TypeCoordList,
				MinItems: 1, MaxItems: 512},
			{Name: "path", Placement: InQuery, Type: TypeCoordList,
				MinItems: 2, MaxItems: 512},
			{Name: "samples", Placement: InQuery, Type: TypeInt,
				Default: "10", OnlyWith: "path",
				Rules: []validation.Rule{between(2, 512)}},
		},
		OneOf: []Group{
			{Required: true, Sets: [][]string{{"locations"}, {"path"}}},
		},
	},
	{
		Name:    "timezone",
		Method:  http.MethodGet,
		URL:     "https://maps.googleapis.com/maps/api/timezone/json",
		Service: "timezone-backend.googleapis.com",
		Mode:    ModeStructured,
		Params: []Param{
			{Name: "location", Placement: InQuery, Type: TypeLatLng, Required: true},
			{Name: "timestamp", Placement: InQuery, Type: TypeInt, Required: true,
				Rules: []validation.Rule{atLeast(0)}},
			languageIn(InQuery, "language"),
		},
	},
	{
		Name:    "air-quality",
		Method:  http.MethodPost,
		URL:     "https://airquality.googleapis.com/v1/currentConditions:lookup",
		Service: "airquality.googleapis.com",
		Mode:    ModeStructured,
		Params: append(latLngAt(InBody, "location"),
			Param{Name: "extras", Wire: "extraComputations[]", Placement: InBody,
				Type: TypeStringList,
				Enum: ident("HEALTH_RECOMMENDATIONS", "DOMINANT_POLLUTANT_CONCENTRATION",
					"POLLUTANT_CONCENTRATION", "LOCAL_AQI", "POLLUTANT_ADDITIONAL_INFO")},
			languageIn(InBody, "languageCode"),
		),
	},
	{
		Name:    "air-quality-history",
		Method:  http.MethodPost,
		URL:     "https://airquality.googleapis.com/v1/history:lookup",
		Service: "airquality.googleapis.com",
		Mode:    ModeStructured,
		Params: append(latLngAt(InBody, "location"),
			// The service keeps a rolling 30-day window.
			Param{Name: "hours", Placement: InBody, Type: TypeInt, Default: "24",
				Rules: []validation.Rule{between(1, 720)}},
			languageIn(InBody, "languageCode"),
		),
	},
	{
		Name:    "air-quality-forecast",
		Method:  http.MethodPost,
		URL:     "https://airquality.googleapis.com/v1/forecast:lookup",
		Service: "airquality.googleapis.com",
		Mode:    ModeStructured,
		Params: append(latLngAt(InBody, "location"),
			languageIn(InBody, "languageCode"),
		),
	},
	{
		Name:    "pollen",
		Method:  http.MethodGet,
		URL:     "https://pollen.googleapis.com/v1/forecast:lookup",
		Service: "pollen.googleapis.com",
		Mode:    ModeStructured,
		Params: append(latLngAt(InQuery, "location"),
			Param{Name: "days", Placement: InQuery, Type: TypeInt, Default: "3",
				Rules: []validation.Rule{between(1, 5)}},
			languageIn(InQuery, "languageCode"),
		),
	},
	{
		Name:    "solar",
		Method:  http.MethodGet,
		URL:     "https://solar.googleapis.com/v1/buildingInsights:findClosest",
		Service: "solar.googleapis.com",
		Mode:    ModeStructured,
		Params: append(latLngAt(InQuery, "location"),
			Param{Name: "quality", Wire: "requiredQuality", Placement: InQuery,
				Type: TypeString, Enum: ident("LOW", "MEDIUM", "HIGH")},
		),
	},
	{
		Name:    "solar-layers",
		Method:  http.MethodGet,
		URL:     "https://solar.googleapis.com/v1/dataLayers:get",
		Service: "solar.googleapis.com",
		Mode:    ModeStructured,
		Params: append(latLngAt(InQuery, "location"),
			Param{Name: "radius", Wire: "radiusMeters", Placement: InQuery,
				Type: TypeFloat, Default: "50",
				Rules: []validation.Rule{positiveUpTo(500)}},
			Param{Name: "quality", Wire: "requiredQuality", Placement: InQuery,
				Type: TypeString, Enum: ident("LOW", "MEDIUM", "HIGH")},
			Param{Name: "pixel-size", Wire: "pixelSizeMeters", Placement: InQuery,
				Type: TypeFloat,
				Rules: []validation.Rule{positiveNumber()}},
		),
	},
	{
		Name:    "weather-current",
		Method:  http.MethodGet,
		URL:     "https://weather.googleapis.com/v1/currentConditions:lookup",
		Service: "weather.googleapis.com",
		Mode:    ModeStructured,
		Params: append(latLngAt(InQuery, "location"),
			languageIn(InQuery, "languageCode"),
		),
	},
	{
		Name:    "weather-hourly",
		Method:  http.MethodGet,
		URL:     "https://weather.googleapis.com/v1/forecast/hours",
		Service: "weather.googleapis.com",
		Mode:    ModeStructured,
		Params: append(latLngAt(InQuery, "location"),
			Param{Name: "hours", Wire: "forecastHours", Placement: InQuery,
				Type: TypeInt,
				Rules: []validation.Rule{between(1, 240)}},
			languageIn(InQuery, "languageCode"),
		),
	},
	{
		Name:    "weather-daily",
		Method:  http.MethodGet,
		URL:     "https://weather.googleapis.com/v1/forecast/days",
		Service: "weather.googleapis.com",
		Mode:    ModeStructured,
		Params: append(latLngAt(InQuery, "location"),
			Param{Name: "days", Wire: "forecastDays", Placement: InQuery,
				Type: TypeInt,
				Rules: []validation.Rule{between(1, 10)}},
			languageIn(InQuery, "languageCode"),
		),
	},
	{
		Name:    "weather-history",
		Method:  http.MethodGet,
		URL:     "https://weather.googleapis.com/v1/history/hours",
		Service: "weather.googleapis.com",
		Mode:    ModeStructured,
		Params: append(latLngAt(InQuery, "location"),
			Param{Name: "hours", Placement: InQuery, Type: TypeInt,
				Rules: []validation.Rule{between(1, 720)}},
			languageIn(InQuery, "languageCode"),
		),
	},
	{
		Name:    "validate-address",
		Method:  http.MethodPost,
		URL:     "https://addressvalidation.googleapis.com/v1:validateAddress",
		Service: "addressvalidation.googleapis.com",
		Mode:    ModeStructured,
		Params: []Param{
			{Name: "address", Wire: "address.addressLines[]", Placement: InBody,
				Type: TypeStringList, Required: true, MinItems: 1},
			{Name: "region", Wire: "address.regionCode", Placement: InBody,
				Type: TypeString},
			{Name: "locality", Wire: "address.locality", Placement: InBody,
				Type: TypeString},
			{Name: "enable-usps", Wire: "enableUspsCass", Placement: InBody,
				Type: TypeBool},
		},
	},
	{
		Name:    "snap-roads",
		Method:  http.MethodGet,
		URL:     "https://roads.googleapis.com/v1/snapToRoads",
		Service: "roads.googleapis.com",
		Mode:    ModeStructured,
		Params: []Param{
			{Name: "path", Placement: InQuery, Type: TypeCoordList, Required: true,
				MinItems: 1, MaxItems: 100},
			{Name: "interpolate", Placement: InQuery, Type: TypeBool},
		},
	},
	{
		Name:    "nearest-roads",
		Method:  http.MethodGet,
		URL:     "https://roads.googleapis.com/v1/nearestRoads",
		Service: "roads.googleapis.com",
		Mode:    ModeStructured,
		Params: []Param{
			{Name: "points", Placement: InQuery, Type: TypeCoordList, Required: true,
				MinItems: 1, MaxItems: 100},
		},
	},
	{
		Name:    "streetview",
		Method:  http.MethodGet,
		URL:     "https://maps.googleapis.com/maps/api/streetview",
		Service: "street-view-image-backend.googleapis.com",
		Mode:    ModeBinary,
		Output:  "streetview.jpg",
		Params: []Param{
			{Name: "location", Placement: InQuery, Type: TypeString},
			{Name: "pano", Placement: InQuery, Type: TypeString},
			{Name: "size", Placement: InQuery, Type: TypeString, Default: "600x400",
				Rules: []validation.Rule{validation.Match(sizePattern)}},
			{Name: "heading", Placement: InQuery, Type: TypeFloat,
				Rules: []validation.Rule{between(0, 360)}},
			{Name: "pitch", Placement: InQuery, Type: TypeFloat,
				Rules: []validation.Rule{between(-90, 90)}},
			{Name: "fov", Placement: InQuery, Type: TypeFloat,
				Rules: []validation.Rule{between(10, 120)}},
		},
		OneOf: []Group{
			{Required: true, Sets: [][]string{{"location"}, {"pano"}}},
		},
	},
	{
		Name:    "static-map",
		Method:  http.MethodGet,
		URL:     "https://maps.googleapis.com/maps/api/staticmap",
		Service: "static-maps-backend.googleapis.com",
		Mode:    ModeBinary,
		Output:  "map.{format}",
		Params: []Param{
			{Name: "center", Placement: InQuery, Type: TypeString, Required: true,
				Rules: []validation.Rule{validation.Length(1, 0)}},
			{Name: "zoom", Placement: InQuery, Type: TypeInt, Default: "14",
				Rules: []validation.Rule{between(0, 21)}},
			{Name: "size", Placement: InQuery, Type: TypeString, Default: "600x400",
				Rules: []validation.Rule{validation.Match(sizePattern)}},
			{Name: "maptype", Placement: InQuery, Type: TypeString, Default: "roadmap",
				Enum: ident("roadmap", "satellite", "terrain", "hybrid")},
			{Name: "format", Placement: InQuery, Type: TypeString, Default: "png",
				Enum: ident("png", "jpg", "gif")},
			{Name: "markers", Placement: InQuery, Type: TypeString},
			{Name: "path-line", Wire: "path", Placement: InQuery, Type: TypeString},
			{Name: "style", Placement: InQuery, Type: TypeString},
			{Name: "scale", Placement: InQuery, Type: TypeInt,
				Rules: []validation.Rule{oneOfInts(1, 2, 4)}},
		},
	},
	{
		Name:    "geolocation",
		Method:  http.MethodPost,
		URL:     "https://www.googleapis.com/geolocation/v1/geolocate",
		Service: "geolocation.googleapis.com",
		Mode:    ModeStructured,
		Params: []Param{
			{Name: "consider-ip", Wire: "considerIp", Placement: InBody,
				Type: TypeBool, Default: "true"},
			{Name: "wifi", Wire: "wifiAccessPoints", Placement: InBody,
				Type: TypeWifiList, MinItems: 1},
			{Name: "cell", Wire: "cellTowers", Placement: InBody,
				Type: TypeCellList, MinItems: 1},
		},
	},
	{
		Name:    "aerial-view-check",
		Method:  http.MethodGet,
		URL:     "https://aerialview.googleapis.com/v1/videos:lookupVideoMetadata",
		Service: "aerialview.googleapis.com",
		Mode:    ModeStructured,
		Params: []Param{
			{Name: "address", Placement: InQuery, Type: TypeString, Required: true,
				Rules: []validation.Rule{validation.Length(1, 0)}},
		},
	},
	{
		Name:    "aerial-view-render",
		Method:  http.MethodPost,
		URL:     "https://aerialview.googleapis.com/v1/videos:renderVideo",
		Service: "aerialview.googleapis.com",
		Mode:    ModeStructured,
		Params: []Param{
			{Name: "address", Placement: InBody, Type: TypeString, Required: true,
				Rules: []validation.Rule{validation.Length(1, 0)}},
		},
	},
	{
		Name:    "aerial-view-get",
		Method:  http.MethodGet,
		URL:     "https://aerialview.googleapis.com/v1/videos:lookupVideo",
		Service: "aerialview.googleapis.com",
		Mode:    ModeStructured,
		Params: []Param{
			{Name: "video-id", Wire: "videoId", Placement: InQuery, Type: TypeString},
			{Name: "address", Placement: InQuery, Type: TypeString},
		},
		OneOf: []Group{
			{Required: true, Sets: [][]string{{"video-id"}, {"address"}}},
		},
	},
	{
		Name:    "route-optimize",
		Method:  http.MethodPost,
		URL:     "https://routeoptimization.googleapis.com/v1/projects/{project}:optimizeTours",
		Service: "routeoptimization.googleapis.com",
		Mode:    ModeStructured,
		Params: []Param{
			{Name: "input", Placement: InBody, Type: TypeJSONFile, Required: true},
			{Name: "project", Placement: InPath, Type: TypeString, Default: "default"},
		},
	},
	{
		Name:    "places-aggregate",
		Method:  http.MethodPost,
		URL:     "https://areainsights.googleapis.com/v1:computeInsights",
		Service: "areainsights.googleapis.com",
		Mode:    ModeStructured,
		Params: []Param{
			{Name: "insight", Wire: "insights[]", Placement: InBody, Type: TypeStringList,
				Default: "INSIGHT_COUNT", Enum: ident("INSIGHT_COUNT", "INSIGHT_PLACES")},
			{Name: "location", Wire: "filter.locationFilter.circle.latLng",
				Placement: InBody, Type: TypeLatLng, Required: true},
			{Name: "radius", Wire: "filter.locationFilter.circle.radius",
				Placement: InBody, Type: TypeFloat, Default: "5000",
				Rules: []validation.Rule{positiveUpTo(50000)}},
			{Name: "type", Wire: "filter.typeFilter.includedTypes[]", Placement: InBody,
				Type: TypeStringList},
			{Name: "min-rating", Wire: "filter.ratingFilter.minRating", Placement: InBody,
				Type: TypeFloat,
				Rules: []validation.Rule{between(1, 5)}},
			{Name: "price-levels", Wire: "filter.priceLevelFilter.priceLevels[]",
				Placement: InBody, Type: TypeStringList,
				Enum: ident("PRICE_LEVEL_FREE", "PRICE_LEVEL_INEXPENSIVE",
					"PRICE_LEVEL_MODERATE", "PRICE_LEVEL_EXPENSIVE",
					"PRICE_LEVEL_VERY_EXPENSIVE")},
		},
	},
	{
		Name:    "embed-url",
		Method:  http.MethodGet,
		URL:     "https://www.google.com/maps/embed/v1/{mode}",
		Service: "maps-embed-backend.googleapis.com",
		Mode:    ModeLocal,
		Params: []Param{
			{Name: "mode", Placement: InPath, Type: TypeString, Default: "place",
				Enum: ident("place", "directions", "search", "view", "streetview")},
			{Name: "query", Wire: "q", Placement: InQuery, Type: TypeString},
			{Name: "origin", Placement: InQuery, Type: TypeString},
			{Name: "destination", Placement: InQuery, Type: TypeString},
			{Name: "waypoints", Placement: InQuery, Type: TypeString},
			{Name: "center", Placement: InQuery, Type: TypeLatLng},
			{Name: "location", Placement: InQuery, Type: TypeLatLng},
			{Name: "zoom", Placement: InQuery, Type: TypeInt,
				Rules: []validation.Rule{between(0, 21)}},
			{Name: "heading", Placement: InQuery, Type: TypeFloat,
				Rules: []validation.Rule{between(0, 360)}},
		},
	},
}
