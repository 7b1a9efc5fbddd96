package backfill

import (
	"regexp"
	"strings"
)

// Static keyword tables for the legacy-data heuristics. Loaded once, never
// mutated at runtime. All matching happens on lower-cased text.

// valueKeywords maps an attribute name to candidate values and the keywords
// that imply each value. The first candidate whose keyword appears in the
// listing text wins.
var valueKeywords = map[string]map[string][]string{
	"Couleur": {
		"noir":   {"noir", "noire"},
		"blanc":  {"blanc", "blanche"},
		"gris":   {"gris", "grise", "anthracite"},
		"rouge":  {"rouge"},
		"bleu":   {"bleu", "bleue"},
		"vert":   {"vert", "verte"},
		"jaune":  {"jaune"},
		"marron": {"marron", "brun", "brune"},
	},
	"Carburant": {
		"essence":    {"essence", "sans plomb"},
		"diesel":     {"diesel", "gazole", "gasoil"},
		"electrique": {"electrique", "électrique"},
		"hybride":    {"hybride"},
	},
	"Type de contrat": {
		"cdi":        {"cdi"},
		"cdd":        {"cdd"},
		"interim":    {"interim", "intérim"},
		"stage":      {"stage", "stagiaire"},
		"alternance": {"alternance", "apprentissage"},
	},
}

// booleanKeywords maps an attribute name to the keywords that imply "true".
// Absence of a keyword never implies "false": the heuristic only writes what
// it can positively infer.
var booleanKeywords = map[string][]string{
	"Meublé":    {"meublé", "meuble", "meublée", "meublee"},
	"Garage":    {"garage", "box fermé"},
	"Ascenseur": {"ascenseur"},
	"Jardin":    {"jardin"},
	"Balcon":    {"balcon", "terrasse"},
}

// numberPatterns maps an attribute name to a pattern whose first capture
// group is the numeric value.
var numberPatterns = map[string]*regexp.Regexp{
	"Surface":     regexp.MustCompile(`(\d+)\s*(?:m2|m²|metres carres|mètres carrés)`),
	"Kilométrage": regexp.MustCompile(`(\d+)\s*(?:km|kilometres|kilomètres)`),
	"Pièces":      regexp.MustCompile(`(\d+)\s*(?:pieces|pièces|p\.)`),
	"Année":       regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`),
}

// subCategoryKeywords maps a sub-category name to the keywords that vote for
// it during sub-category assignment.
var subCategoryKeywords = map[string][]string{
	"Appartements": {"appartement", "studio", "t1", "t2", "t3", "duplex"},
	"Maisons":      {"maison", "villa", "pavillon"},
	"Terrains":     {"terrain", "parcelle"},
	"Voitures":     {"voiture", "berline", "citadine", "suv"},
	"Motos":        {"moto", "scooter", "125cc"},
	"Utilitaires":  {"utilitaire", "fourgon", "camionnette"},
	"Téléphones":   {"telephone", "téléphone", "smartphone", "iphone", "android"},
	"Ordinateurs":  {"ordinateur", "pc", "portable", "macbook"},
	"Consoles":     {"console", "playstation", "xbox", "nintendo"},
}

// matchScore sums the character length of every keyword found in the text.
// Longer, more specific keywords therefore weigh more than short generic
// ones.
func matchScore(text string, keywords []string) int {
	score := 0
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			score += len(keyword)
		}
	}
	return score
}

func keywordsForSubCategory(name string) []string {
	if keywords, ok := subCategoryKeywords[name]; ok {
		return keywords
	}
	return []string{strings.ToLower(name)}
}
