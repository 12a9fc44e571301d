package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasAny(t *testing.T) {
	assert.True(t, HasAny("light rain shower", "snow", "rain"))
	assert.False(t, HasAny("sunny", "rain", "cloud"))
	assert.False(t, HasAny("sunny"))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Top", Capitalize("tOP"))
	assert.Equal(t, "Rain", Capitalize("rain"))
	assert.Equal(t, "", Capitalize(""))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold([]string{"Clear", " clouds"}, "clouds"))
	assert.False(t, ContainsFold([]string{"clear"}, "rain"))
	assert.False(t, ContainsFold(nil, "rain"))
}
