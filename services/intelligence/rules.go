// File: services/intelligence/rules.go
package intelligence

import "strings"

// DefaultSpecialty answers when nothing more specific matches.
const DefaultSpecialty = "General Physician"

// ValidSpecialties is the closed set a recommendation may come from; model
// output outside this list is discarded.
var ValidSpecialties = []string{
	"Cardiologist",
	"Dermatologist",
	"Neurologist",
	"General Physician",
	"Orthopedist",
	"Gastroenterologist",
	"Ophthalmologist",
	"ENT Specialist",
}

var specialtyKeywords = []struct {
	specialty string
	keywords  []string
}{
	{"Cardiologist", []string{"heart", "chest pain", "bp", "blood pressure", "cardiac"}},
	{"Dermatologist", []string{"skin", "rash", "itch", "allergy", "dermatitis", "acne"}},
	{"Neurologist", []string{"headache", "seizure", "stroke", "numbness", "migraine", "neurological"}},
	{"General Physician", []string{"fever", "cold", "cough", "flu", "infection"}},
}

// MatchSpecialty maps symptom text onto a specialty with simple keyword
// rules. First matching group wins.
func MatchSpecialty(symptoms string) string {
	s := strings.ToLower(symptoms)
	for _, group := range specialtyKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(s, kw) {
				return group.specialty
			}
		}
	}
	return DefaultSpecialty
}

// IsValidSpecialty reports whether the given name is in the closed set.
func IsValidSpecialty(name string) bool {
	for _, s := range ValidSpecialties {
		if s == name {
			return true
		}
	}
	return false
}
