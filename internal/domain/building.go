package domain

// Building represents a campus building with its rooms
type Building struct {
	Code       string // аббревиатура корпуса, например "ESJ"
	Name       string
	BuildingID string // внешний идентификатор корпуса в датасете кампуса
	Latitude   float64
	Longitude  float64
	Rooms      []Room
}

// HasRooms returns true if the building has at least one room
func (b *Building) HasRooms() bool {
	return len(b.Rooms) > 0
}
