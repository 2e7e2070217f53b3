package nameparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFeedName(t *testing.T) {
	cases := []struct {
		in    string
		first string
		last  string
		full  string
	}{
		{"Scheffler, Scottie", "Scottie", "Scheffler", "Scottie Scheffler"},
		{"McIlroy,Rory", "Rory", "McIlroy", "Rory McIlroy"},
		{"Rory McIlroy", "Rory", "McIlroy", "Rory McIlroy"},
		{"Matt Fitzpatrick", "Matt", "Fitzpatrick", "Matt Fitzpatrick"},
		// Multi-token first names in display order split on the last space.
		{"Byeong Hun An", "Byeong Hun", "An", "Byeong Hun An"},
		{"Cejka", "", "Cejka", "Cejka"},
		{"  Day,  Jason  ", "Jason", "Day", "Jason Day"},
		{"", "", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			first, last, full := ParseFeedName(tc.in)
			assert.Equal(t, tc.first, first)
			assert.Equal(t, tc.last, last)
			assert.Equal(t, tc.full, full)
		})
	}
}

func TestGolferID(t *testing.T) {
	taken := map[string]bool{}

	id := GolferID("Scottie", "Scheffler", taken)
	assert.Equal(t, "SCHES0100", id)
}

func TestGolferID_CollisionBumpsSequence(t *testing.T) {
	taken := map[string]bool{"SCHES0100": true}

	id := GolferID("Scottie", "Scheffler", taken)
	assert.Equal(t, "SCHES0200", id)
}

func TestGolferID_ShortNamesPadded(t *testing.T) {
	taken := map[string]bool{}

	// "An, Byeong Hun": two last-name letters, one first-name letter,
	// padded to the five-character stem.
	id := GolferID("Byeong Hun", "An", taken)
	assert.Equal(t, "ANBXX0100", id)
	assert.Len(t, id, 9)
}

func TestGolferID_NonLettersStripped(t *testing.T) {
	taken := map[string]bool{}

	id := GolferID("J.T.", "O'Neal", taken)
	assert.Equal(t, "ONEAJ0100", id)
}
