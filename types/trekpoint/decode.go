package trekpoint

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb/geojson"
	"github.com/tidwall/gjson"
)

var ErrDecodePoints = fmt.Errorf("could not decode as geojson feature, featurecollection, or array")

// DecodeShotgun attempts to turn a blob of JSON into trek points.
// Clients push single features, FeatureCollections, and bare arrays
// of features; this sniffs which with gjson before unmarshaling.
func DecodeShotgun(data []byte) (out []*TrekPoint, err error) {
	// A FeatureCollection object has a member with the name "features".
	// https://datatracker.ietf.org/doc/html/rfc7946#section-3.3
	if res := gjson.GetBytes(data, "features"); res.Exists() {
		fc := geojson.NewFeatureCollection()
		if err := fc.UnmarshalJSON(data); err != nil {
			return nil, err
		}
		for _, f := range fc.Features {
			tp := TrekPoint(*f)
			out = append(out, &tp)
		}
		return out, nil
	}

	parsed := gjson.ParseBytes(data)
	if parsed.IsObject() {
		tp := &TrekPoint{}
		if err := json.Unmarshal(data, tp); err != nil {
			return nil, err
		}
		return []*TrekPoint{tp}, nil
	}

	if !parsed.IsArray() {
		return nil, ErrDecodePoints
	}
	arr := parsed.Array()
	if len(arr) == 0 {
		return nil, fmt.Errorf("empty set")
	}
	for _, el := range arr {
		if !el.IsObject() {
			return nil, fmt.Errorf("non-object element in array")
		}
		tp := &TrekPoint{}
		if err := json.Unmarshal([]byte(el.Raw), tp); err != nil {
			return nil, err
		}
		out = append(out, tp)
	}
	return out, nil
}
