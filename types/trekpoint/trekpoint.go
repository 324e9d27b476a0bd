package trekpoint

import (
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/trailsense/graded/common"
)

// TrekPoint is one position+elevation fix along a trek.
// It's an alias of geojson.Feature with definite point geometry and a time property.
// GeoJSON is the wire format trackers push, so the feature IS the sample;
// the engine-relevant fields live in properties:
//
//	Elevation  meters, the best-available estimate (GPS, fused, or barometric -- the client decides)
//	VAccuracy  vertical accuracy estimate in meters; negative means unknown
//	UnixTime   preferred; Time (RFC3339 string) as fallback
//	Name       the trek (session) the fix belongs to
type TrekPoint geojson.Feature

// NewTrekPoint creates and initializes a GeoJSON point feature.
func NewTrekPoint(pt orb.Point) *TrekPoint {
	return &TrekPoint{
		Type:       "Feature",
		Geometry:   pt,
		Properties: make(map[string]interface{}),
	}
}

// MarshalJSON implements the json.Marshaler interface.
func (tp TrekPoint) MarshalJSON() ([]byte, error) {
	f := geojson.Feature(tp)
	return f.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (tp *TrekPoint) UnmarshalJSON(data []byte) error {
	f, err := geojson.UnmarshalFeature(data)
	if err != nil {
		return err
	}
	*tp = *(*TrekPoint)(f)
	return nil
}

// IsEmpty is useful for dealing with zero-value points.
func (tp *TrekPoint) IsEmpty() bool {
	return tp == nil || tp.Geometry == nil ||
		tp.Properties == nil || len(tp.Properties) == 0
}

// Point returns the position of the fix.
func (tp *TrekPoint) Point() orb.Point {
	return tp.Geometry.Bound().Center()
}

// Elevation returns the elevation estimate in meters, 0 if missing.
func (tp *TrekPoint) Elevation() float64 {
	return tp.Properties.MustFloat64("Elevation", 0)
}

// VAccuracy returns the vertical accuracy estimate in meters.
// A missing property is the same as an unknown accuracy.
func (tp *TrekPoint) VAccuracy() float64 {
	return tp.Properties.MustFloat64("VAccuracy", common.VAccuracyUnknown)
}

// Name returns the trek (session) name of the fix.
func (tp *TrekPoint) Name() string {
	return tp.Properties.MustString("Name", "")
}

// Time returns the fix time.
// UnixTime is preferred; Time (RFC3339) is the fallback.
func (tp *TrekPoint) Time() (time.Time, error) {
	if unix, ok := tp.Properties["UnixTime"]; ok {
		if v, ok := unix.(int64); ok {
			return time.Unix(v, 0), nil
		} else if v, ok := unix.(float64); ok {
			return time.Unix(int64(v), 0), nil
		}
	}
	rfc3339, ok := tp.Properties["Time"]
	if !ok {
		return time.Time{}, fmt.Errorf("missing Time property")
	}
	if v, ok := rfc3339.(time.Time); ok {
		return v, nil
	}
	ts, ok := rfc3339.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("property Time is not a string")
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}, err
	}
	if t.IsZero() {
		return time.Time{}, fmt.Errorf("zero time")
	}
	return t, nil
}

// MustTime gets the time or panics.
func (tp *TrekPoint) MustTime() time.Time {
	t, err := tp.Time()
	if err != nil {
		panic(err)
	}
	return t
}

// IsValid reports whether the point passes Validate.
func (tp *TrekPoint) IsValid() bool {
	return tp.Validate() == nil
}

// Validate checks the point for basic validity,
// returning the first error it encounters.
func (tp *TrekPoint) Validate() error {
	if tp.Type != "Feature" {
		return fmt.Errorf("not a feature")
	}
	if tp.Geometry == nil {
		return fmt.Errorf("nil geometry")
	}
	pt, ok := tp.Geometry.(orb.Point)
	if !ok {
		return fmt.Errorf("not a point")
	}
	ptLng, ptLat := pt[0], pt[1]
	if ptLat < -90 || ptLat > 90 {
		return fmt.Errorf("invalid coordinate: lat=%.14f", ptLat)
	}
	if ptLng < -180 || ptLng > 180 {
		return fmt.Errorf("invalid coordinate: lng=%.14f", ptLng)
	}
	if tp.Properties == nil || len(tp.Properties) == 0 {
		return fmt.Errorf("empty properties")
	}
	if _, err := tp.Time(); err != nil {
		return err
	}
	elevation := tp.Elevation()
	if elevation < common.ElevationOfDeadSea || elevation > common.ElevationOfTroposphere {
		return fmt.Errorf("implausible elevation: %.2f", elevation)
	}
	return nil
}
