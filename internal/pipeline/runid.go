package pipeline

import (
	"fmt"
	"math/rand"
	"time"
)

// DefaultAdjectives is the stock vocabulary for run identifiers.
var DefaultAdjectives = []string{
	// Colors and visual qualities
	"azure", "crimson", "golden", "silver", "emerald", "sapphire", "crystal",
	"amber", "obsidian", "platinum", "jade", "cobalt", "scarlet", "ivory",

	// Cosmic and natural
	"cosmic", "stellar", "lunar", "solar", "astral", "celestial", "ethereal",
	"nebular", "galactic", "orbital", "aurora", "zenith", "arctic", "tropical",

	// Qualities
	"swift", "bold", "grand", "noble", "vital", "prime", "peak",
	"dynamic", "radiant", "vivid", "lucid", "serene", "pristine", "infinite",

	// Mystical
	"mystic", "arcane", "mythic", "fabled", "epic", "legendary",
	"ancient", "eternal", "phantom", "cryptic", "enigmatic", "mythical",

	// Technical
	"quantum", "cyber", "digital", "sonic", "neural", "vector", "matrix",
	"binary", "atomic", "plasma", "photon", "fusion", "nano", "hyper",
}

// DefaultNouns is the stock vocabulary for run identifiers.
var DefaultNouns = []string{
	// Cosmic objects
	"nebula", "quasar", "pulsar", "nova", "cosmos", "galaxy", "star",
	"comet", "meteor", "aurora", "eclipse", "orbit", "void", "horizon",

	// Mythical creatures and concepts
	"phoenix", "dragon", "griffin", "titan", "atlas", "oracle", "chimera",
	"hydra", "kraken", "sphinx", "pegasus", "leviathan", "basilisk",

	// Geometric and abstract
	"vertex", "nexus", "prism", "helix", "spiral", "octagon",
	"apex", "core", "sphere", "cube", "pyramid", "cipher",

	// Natural phenomena
	"zenith", "summit", "storm", "thunder",
	"cascade", "tempest", "vortex", "mirage", "oasis", "delta",

	// Technical
	"beacon", "pulse", "node", "stream",
	"portal", "reactor", "sensor", "cortex", "grid",
}

// NewRunID builds a run identifier of the form adj1-adj2-noun-YYYYMMDD-HHMMSS.
// All inputs are explicit: the random source, the two vocabularies, and the
// timestamp. The two adjectives are always distinct.
func NewRunID(r *rand.Rand, adjectives, nouns []string, now time.Time) string {
	i := r.Intn(len(adjectives))
	j := r.Intn(len(adjectives) - 1)
	if j >= i {
		j++
	}
	noun := nouns[r.Intn(len(nouns))]

	return fmt.Sprintf("%s-%s-%s-%s", adjectives[i], adjectives[j], noun, now.Format("20060102-150405"))
}
