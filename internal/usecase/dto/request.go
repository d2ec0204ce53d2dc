package dto

// GeocodeRequest - запрос на геокодирование названия места
type GeocodeRequest struct {
	Place string `json:"place" validate:"required" example:"Howrah Bridge, Kolkata"`
}

// RouteRequest carries coordinates exactly as the caller sent them.
type RouteRequest struct {
	StartLat string `json:"start_lat" validate:"required,latitude" example:"22.5726"`
	StartLng string `json:"start_lng" validate:"required,longitude" example:"88.3639"`
	EndLat   string `json:"end_lat" validate:"required,latitude" example:"22.6531"`
	EndLng   string `json:"end_lng" validate:"required,longitude" example:"88.4449"`
}

// PlanRequest - маршрут между двумя названиями мест
type PlanRequest struct {
	From string `json:"from" validate:"required" example:"Park Street, Kolkata"`
	To   string `json:"to" validate:"required" example:"Salt Lake, Kolkata"`
}
