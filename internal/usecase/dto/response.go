package dto

import "github.com/route-optimizer/internal/domain"

// PlanResponse combines both geocoded endpoints with the ranked routes.
type PlanResponse struct {
	From    domain.Place          `json:"from"`
	To      domain.Place          `json:"to"`
	Ranking *domain.RankingResult `json:"ranking"`
}
