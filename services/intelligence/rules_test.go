package intelligence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchSpecialty(t *testing.T) {
	cases := []struct {
		symptoms string
		want     string
	}{
		{"crushing chest pain after exercise", "Cardiologist"},
		{"high Blood Pressure readings", "Cardiologist"},
		{"itchy rash on both arms", "Dermatologist"},
		{"recurring migraine with aura", "Neurologist"},
		{"fever and dry cough for three days", "General Physician"},
		{"sore left knee", DefaultSpecialty},
		{"", DefaultSpecialty},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MatchSpecialty(tc.symptoms), "symptoms %q", tc.symptoms)
	}
}

func TestIsValidSpecialty(t *testing.T) {
	for _, s := range ValidSpecialties {
		assert.True(t, IsValidSpecialty(s))
	}
	assert.False(t, IsValidSpecialty("Astrologist"))
	assert.False(t, IsValidSpecialty("cardiologist"))
	assert.False(t, IsValidSpecialty(""))
}
