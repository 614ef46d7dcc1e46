package seeding

import (
	"math"
	"math/rand"
	"sort"

	"aushealthsim/internal/pkg/constvars"
)

// Simulation randomness. Reference numbers use crypto-backed helpers in
// utils; plain math/rand is enough for distribution draws here.

func randomIndex(length int) int {
	return rand.Intn(length)
}

// randomBetween returns an int in [min, max] inclusive.
func randomBetween(min, max int) int {
	return min + rand.Intn(max-min+1)
}

func randomUniform(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

func randomChance(probability float64) bool {
	return rand.Float64() < probability
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

var stateCodes = func() []string {
	codes := make([]string, 0, len(constvars.States))
	for code := range constvars.States {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}()

func randomStateCode() string {
	return stateCodes[randomIndex(len(stateCodes))]
}
