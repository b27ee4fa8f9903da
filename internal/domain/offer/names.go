package offer

import "math/rand/v2"

// Fallback author names for submissions that omit the optional name field.
var namePool = [...]string{"Keks", "Pavel", "Nikolay", "Alex", "Ulyana", "Anastasyia", "Julia"}

// RandomName picks uniformly from the fixed pool. No seeding contract beyond
// "a member of the pool".
func RandomName() string {
	return namePool[rand.IntN(len(namePool))]
}

func NamePool() []string {
	return namePool[:]
}
