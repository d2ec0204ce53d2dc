package domain

import "encoding/json"

// RouteCandidate is one alternative returned by the routing collaborator.
type RouteCandidate struct {
	DistanceMeters  float64
	DurationSeconds float64
	Geometry        json.RawMessage
}

// RankedRoute is a candidate annotated with derived metrics and its position.
type RankedRoute struct {
	Rank         int             `json:"rank"`
	DistanceKm   float64         `json:"distance_km"`
	DurationMin  float64         `json:"duration_min"`
	AvgSpeedKmh  float64         `json:"avg_speed"`
	TrafficScore int             `json:"traffic_score"`
	OverallScore float64         `json:"overall_score"`
	Geometry     json.RawMessage `json:"geometry" swaggertype:"object"`
}

type Recommendation struct {
	BestRouteIndex int     `json:"best_route_index"`
	Reason         string  `json:"reason"`
	TimeSaved      float64 `json:"time_saved"`
}

// RankingResult holds routes sorted ascending by OverallScore.
type RankingResult struct {
	TotalRoutes    int            `json:"total_routes"`
	Routes         []RankedRoute  `json:"routes"`
	Recommendation Recommendation `json:"recommendation"`
}
