package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationService(t *testing.T) {
	s := NewLocationService()

	assert.Equal(t, UnknownLocation, s.Get("v101"))

	s.Update("v101", Location{Lat: 28.61, Lon: 77.2, Timestamp: "2026-10-15T12:00:00Z"})
	s.Update("v101", Location{Lat: "28.7", Lon: "77.3", Timestamp: 1760529600})

	got := s.Get("v101")
	assert.Equal(t, "28.7", got.Lat)
	assert.Equal(t, 1760529600, got.Timestamp)
	assert.Equal(t, UnknownLocation, s.Get("v102"))
}
