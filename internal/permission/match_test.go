package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPath(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		pathname string
		want     bool
	}{
		{"exact", "/hotels-administration/hotels", "/hotels-administration/hotels", true},
		{"param segment", "/hotels-administration/onboarding/:id", "/hotels-administration/onboarding/42", true},
		{"param mid path", "/matches/:id/lineup", "/matches/7/lineup", true},
		{"literal mismatch", "/tournaments", "/teams", false},
		{"too few segments", "/hotels-administration/hotels", "/hotels-administration", false},
		{"too many segments", "/tournaments", "/tournaments/7", false},
		{"trailing slash on path", "/tournaments", "/tournaments/", true},
		{"trailing slash on pattern", "/tournaments/", "/tournaments", true},
		{"root", "/", "/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchPath(tt.pattern, tt.pathname))
		})
	}
}
