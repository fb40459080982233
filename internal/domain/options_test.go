package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveOptions(t *testing.T) {
	sample := []Character{
		{Name: "Rick", Status: StatusAlive, Gender: "Male", Type: ""},
		{Name: "Morty", Status: StatusAlive, Gender: "Male", Type: ""},
		{Name: "Abadango Cluster Princess", Status: StatusAlive, Gender: "Female", Type: "Genetic experiment"},
		{Name: "Adjudicator Rick", Status: StatusDead, Gender: "Male", Type: ""},
		{Name: "Alien Googah", Status: StatusUnknown, Gender: "unknown", Type: "Genetic experiment"},
	}
	locations := []Location{{Name: "Earth (C-137)"}, {Name: "Abadango"}, {Name: "Earth (C-137)"}}

	opts := DeriveOptions(sample, locations)

	assert.Equal(t, []string{"Genetic experiment"}, opts.Types)
	assert.Equal(t, []string{"Male", "Female", "unknown"}, opts.Genders)
	assert.Equal(t, []string{"Alive", "Dead", "unknown"}, opts.Statuses)
	// location names are kept exactly as listed
	assert.Equal(t, []string{"Earth (C-137)", "Abadango", "Earth (C-137)"}, opts.Locations)

	assert.Equal(t, opts.Genders, opts.For(CategoryGender))
	assert.Nil(t, opts.For(Category("Species")))
}

func TestDeriveOptionsEmptySample(t *testing.T) {
	opts := DeriveOptions(nil, nil)
	assert.Empty(t, opts.Types)
	assert.Empty(t, opts.Locations)
}

func TestCharacterValue(t *testing.T) {
	c := Character{Type: "Parasite", Gender: "Female", Status: StatusDead}

	v, ok := c.Value(CategoryStatus)
	assert.True(t, ok)
	assert.Equal(t, "Dead", v)

	_, ok = c.Value(CategoryLocation)
	assert.False(t, ok, "missing location has no value")

	c.Location = &NamedRef{Name: "Earth (C-137)"}
	v, ok = c.Value(CategoryLocation)
	assert.True(t, ok)
	assert.Equal(t, "Earth (C-137)", v)
}
