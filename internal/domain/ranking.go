package domain

import (
	"sort"

	"github.com/route-optimizer/internal/pkg/utils"
)

const (
	durationWeight = 2.0
	distanceWeight = 0.5
	trafficWeight  = 10.0

	fastSpeedKmh     = 50.0
	moderateSpeedKmh = 30.0

	RecommendationReason = "Fastest route with optimal traffic conditions"
)

// TrafficScore infers congestion from average speed: 1 is free-flowing, 3 is congested.
func TrafficScore(avgSpeedKmh float64) int {
	switch {
	case avgSpeedKmh > fastSpeedKmh:
		return 1
	case avgSpeedKmh > moderateSpeedKmh:
		return 2
	default:
		return 3
	}
}

// NewRankedRoute computes the derived metrics of a candidate. Rank is left
// at its provisional value.
func NewRankedRoute(c RouteCandidate, rank int) RankedRoute {
	distanceKm := utils.Round(c.DistanceMeters/1000, 2)
	durationMin := utils.Round(c.DurationSeconds/60, 2)

	var avgSpeed float64
	if durationMin > 0 {
		avgSpeed = utils.Round(distanceKm/(durationMin/60), 1)
	}

	traffic := TrafficScore(avgSpeed)

	return RankedRoute{
		Rank:         rank,
		DistanceKm:   distanceKm,
		DurationMin:  durationMin,
		AvgSpeedKmh:  avgSpeed,
		TrafficScore: traffic,
		OverallScore: durationMin*durationWeight + distanceKm*distanceWeight + float64(traffic)*trafficWeight,
		Geometry:     c.Geometry,
	}
}

// RankRoutes scores candidates and orders them best first. Equal scores keep
// their input order.
func RankRoutes(candidates []RouteCandidate) *RankingResult {
	routes := make([]RankedRoute, 0, len(candidates))
	for i, c := range candidates {
		routes = append(routes, NewRankedRoute(c, i+1))
	}

	sort.SliceStable(routes, func(i, j int) bool {
		return routes[i].OverallScore < routes[j].OverallScore
	})

	for i := range routes {
		routes[i].Rank = i + 1
	}

	// timeSaved compares against the runner-up and may be negative when the
	// runner-up is quicker but scores worse overall.
	var timeSaved float64
	if len(routes) > 1 {
		timeSaved = utils.Round(routes[1].DurationMin-routes[0].DurationMin, 1)
	}

	return &RankingResult{
		TotalRoutes: len(routes),
		Routes:      routes,
		Recommendation: Recommendation{
			BestRouteIndex: 0,
			Reason:         RecommendationReason,
			TimeSaved:      timeSaved,
		},
	}
}
