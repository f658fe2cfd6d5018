package repositories

import (
	"strings"

	"gudang/internal/models"
)

// Relevance weights for the text search over SKU and name. SKU matches
// outrank name matches two to one, so an exact part-number hit always sorts
// above a product whose description merely mentions the term.
const (
	skuMatchWeight  = 10
	nameMatchWeight = 5
)

// searchTokens splits a search term into upper-cased whitespace tokens.
// An empty or blank term yields nil, which disables text matching.
func searchTokens(term string) []string {
	return strings.Fields(strings.ToUpper(term))
}

// matchScore computes the relevance of a product against the given tokens
// using case-insensitive substring matching. A score of zero means the
// product does not match at all.
func matchScore(p *models.Product, tokens []string) int {
	sku := strings.ToUpper(p.SKU)
	name := strings.ToUpper(p.Name)

	score := 0
	for _, tok := range tokens {
		if strings.Contains(sku, tok) {
			score += skuMatchWeight
		}
		if strings.Contains(name, tok) {
			score += nameMatchWeight
		}
	}
	return score
}
