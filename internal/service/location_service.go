package service

import "sync"

// Location - последняя присланная волонтёром позиция. Значения не проверяются
// и хранятся в том виде, в каком пришли от клиента.
type Location struct {
	Lat       any `json:"lat"`
	Lon       any `json:"lon"`
	Timestamp any `json:"timestamp"`
}

// UnknownLocation подставляется, пока волонтёр не прислал ни одной позиции.
var UnknownLocation = Location{Lat: "N/A", Lon: "N/A", Timestamp: "Never"}

// LocationService хранит последние позиции волонтёров.
type LocationService struct {
	mu        sync.RWMutex
	locations map[string]Location
}

func NewLocationService() *LocationService {
	return &LocationService{locations: make(map[string]Location)}
}

// Update записывает позицию волонтёра, перезаписывая предыдущую.
func (s *LocationService) Update(volunteerID string, loc Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations[volunteerID] = loc
}

// Get возвращает позицию или UnknownLocation.
func (s *LocationService) Get(volunteerID string) Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if loc, ok := s.locations[volunteerID]; ok {
		return loc
	}
	return UnknownLocation
}
