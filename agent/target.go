package agent

import (
	"math"

	"github.com/nstehr/bumblebee/model"
)

// NearestBase returns the candidate closest to ref, or nil when there is none.
// Candidates sharing ref's uid are skipped; two bases can sit on the same spot,
// so identity is compared, never position. Ties go to the earliest candidate.
func NearestBase(ref model.Entity, candidates []model.Base) model.Base {
	var nearest model.Base
	bestDist := math.Inf(1)
	from := ref.Position()
	for _, c := range candidates {
		if c.UID() == ref.UID() {
			continue
		}
		if d := from.Dist(c.Position()); d < bestDist {
			bestDist = d
			nearest = c
		}
	}
	return nearest
}
