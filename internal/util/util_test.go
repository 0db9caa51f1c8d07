package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripSpaces(t *testing.T) {
	assert.Equal(t, "StreetsofTarkov", StripSpaces("Streets of Tarkov"))
	assert.Equal(t, "Labs", StripSpaces("Labs"))
	assert.Equal(t, "", StripSpaces("   "))
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "Shoreline", BaseName("maps/Shoreline.svg"))
	assert.Equal(t, "Customs", BaseName("Customs.svg"))
	assert.Equal(t, "Woods", BaseName("/abs/path/Woods"))
	assert.Equal(t, "Ground Zero", BaseName("Ground Zero.svg"))
}
