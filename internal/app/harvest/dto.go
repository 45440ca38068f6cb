package harvest

import "evoworld/internal/domain/ecology"

type Request struct {
	Requests []ecology.HarvestRequest `json:"requests"`
}

type Response struct {
	Tick    uint64                  `json:"tick"`
	Results []ecology.HarvestResult `json:"results"`
}
