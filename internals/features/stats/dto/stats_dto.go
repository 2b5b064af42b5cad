package dto

import "ewm_backend/internals/helpers/dbtime"

// EndpointHit is one recorded request to a public endpoint.
type EndpointHit struct {
	App       string          `json:"app"`
	URI       string          `json:"uri"`
	IP        string          `json:"ip"`
	Timestamp dbtime.DateTime `json:"timestamp"`
}

type ViewStats struct {
	App  string `json:"app"`
	URI  string `json:"uri"`
	Hits int64  `json:"hits"`
}
