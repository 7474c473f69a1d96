package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityIsValid(t *testing.T) {
	assert.True(t, PriorityLow.IsValid())
	assert.True(t, PriorityMedium.IsValid())
	assert.True(t, PriorityHigh.IsValid())
	assert.False(t, Priority("").IsValid())
	assert.False(t, Priority("urgent").IsValid())
}

func TestDefaultCategories(t *testing.T) {
	assert.Len(t, DefaultCategories, 7)
	assert.Equal(t, "Personal", DefaultCategories[0].Name)
	assert.Equal(t, "#007bff", DefaultCategories[0].Color)
	assert.Equal(t, "Others", DefaultCategories[6].Name)
	assert.Equal(t, "#ff00f7", DefaultCategories[6].Color)
}
