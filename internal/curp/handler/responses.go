package handler

import "curp/internal/curp"

// GenerateResponse is the HTTP response for POST /generate_curp.
type GenerateResponse struct {
	CURP string `json:"curp"`
}

// RegionResponse is one entry of GET /regions.
type RegionResponse struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// FromRegions converts the region table to its HTTP shape.
func FromRegions(regions []curp.Region) []RegionResponse {
	out := make([]RegionResponse, 0, len(regions))
	for _, r := range regions {
		out = append(out, RegionResponse{Name: r.Name, Code: r.Code})
	}
	return out
}
