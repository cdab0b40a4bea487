package outfit

// Recommendation is the /outfit response body. City echoes the caller's
// query string rather than the canonical geocoded name, so the summary
// reads back exactly what was asked.
type Recommendation struct {
	City        string   `json:"city"`
	Temperature float64  `json:"temperature"`
	Condition   string   `json:"condition"`
	PrecipMM    float64  `json:"precip_mm"`
	UVCategory  string   `json:"uv_category"`
	Summary     string   `json:"summary"`
	Clothing    []string `json:"clothing"`
	Accessories []string `json:"accessories"`
	Notes       []string `json:"notes"`
}
