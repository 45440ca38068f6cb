package ecology

import (
	"sort"

	"github.com/google/uuid"
)

// HarvestRequest is one agent's claim against one resource in a tick.
type HarvestRequest struct {
	AgentID    string    `json:"agent_id"`
	ResourceID uuid.UUID `json:"resource_id"`
	Quantity   float64   `json:"quantity"`
}

// HarvestResult is the settled outcome. Granted is what the agent actually
// received; Partial marks a grant cut short by the remaining quantity.
type HarvestResult struct {
	AgentID    string    `json:"agent_id"`
	ResourceID uuid.UUID `json:"resource_id"`
	Requested  float64   `json:"requested"`
	Granted    float64   `json:"granted"`
	Quality    float64   `json:"quality"`
	Partial    bool      `json:"partial"`
	Depleted   bool      `json:"depleted"`
	NotFound   bool      `json:"not_found"`
}

// Resolver settles a tick's harvest requests against the live resource
// set and feeds the drain into the environmental tracker.
type Resolver struct {
	spawner *Spawner
	env     *Tracker
}

func NewResolver(spawner *Spawner, env *Tracker) *Resolver {
	return &Resolver{spawner: spawner, env: env}
}

// Resolve settles all requests for one tick. Requests against the same
// resource are ordered by ascending agent id, so contention resolves the
// same way on every replay: with 10 units left and two claims of 7, the
// lower id takes 7 and the higher id takes the remaining 3 as a partial
// grant with a depletion event.
func (rv *Resolver) Resolve(tick uint64, requests []HarvestRequest) ([]HarvestResult, []DomainEvent) {
	ordered := make([]HarvestRequest, len(requests))
	copy(ordered, requests)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].ResourceID != ordered[j].ResourceID {
			return ordered[i].ResourceID.String() < ordered[j].ResourceID.String()
		}
		return ordered[i].AgentID < ordered[j].AgentID
	})

	results := make([]HarvestResult, 0, len(ordered))
	var events []DomainEvent

	for _, req := range ordered {
		res := HarvestResult{
			AgentID:    req.AgentID,
			ResourceID: req.ResourceID,
			Requested:  req.Quantity,
		}

		r := rv.spawner.Lookup(req.ResourceID)
		if r == nil {
			res.NotFound = true
			results = append(results, res)
			continue
		}

		granted := req.Quantity
		if granted > r.Quantity {
			granted = r.Quantity
			res.Partial = true
		}
		if granted < 0 {
			granted = 0
		}

		r.Quantity -= granted
		r.LastHarvestTick = tick
		res.Granted = granted
		res.Quality = r.Quality

		if r.Quantity <= DepletionEpsilon {
			r.Quantity = 0
			if !r.Depleted {
				r.Depleted = true
				res.Depleted = true
				events = append(events, DomainEvent{
					Type: EventResourceDepleted,
					Tick: tick,
					Payload: map[string]any{
						"resource_id": r.ID.String(),
						"type":        string(r.Type),
						"agent_id":    req.AgentID,
					},
				})
			}
		}

		if granted > 0 {
			rv.env.RecordHarvest(r.RegionID, granted, rv.spawner.RegionCapacity(r.RegionID))
			events = append(events, DomainEvent{
				Type: EventHarvestSettled,
				Tick: tick,
				Payload: map[string]any{
					"resource_id": r.ID.String(),
					"agent_id":    req.AgentID,
					"granted":     granted,
					"partial":     res.Partial,
				},
			})
		}

		results = append(results, res)
	}

	return results, events
}
