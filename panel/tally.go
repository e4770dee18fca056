package panel

import "github.com/lixenwraith/duel/sim"

// Tally counts confirmed hits, indexed by the hero whose bullet scored
type Tally struct {
	hits [sim.HeroCount]int
}

// Record increments the counter for id
func (t *Tally) Record(id sim.HeroID) {
	if id.Valid() {
		t.hits[id]++
	}
}

// Count returns hits scored by id
func (t Tally) Count(id sim.HeroID) int {
	if !id.Valid() {
		return 0
	}
	return t.hits[id]
}

// Total returns hits scored by both heroes
func (t Tally) Total() int {
	return t.hits[sim.Hero1] + t.hits[sim.Hero2]
}
