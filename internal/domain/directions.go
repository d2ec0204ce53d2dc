package domain

import "encoding/json"

// DirectionsResponse is the route payload shared by OSRM and Mapbox Directions.
type DirectionsResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message,omitempty"`
	Routes  []DirectionsRoute `json:"routes"`
}

type DirectionsRoute struct {
	Distance float64         `json:"distance"`
	Duration float64         `json:"duration"`
	Geometry json.RawMessage `json:"geometry"`
}

func (r *DirectionsResponse) Candidates() []RouteCandidate {
	out := make([]RouteCandidate, 0, len(r.Routes))
	for _, route := range r.Routes {
		out = append(out, RouteCandidate{
			DistanceMeters:  route.Distance,
			DurationSeconds: route.Duration,
			Geometry:        route.Geometry,
		})
	}
	return out
}
