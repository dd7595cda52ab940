package domain

// Room represents a single campus room
type Room struct {
	ID            int64
	Name          string // полное имя аудитории, например "ESJ 0202"
	RoomNumber    string
	BuildingCode  string
	Capacity      *int
	HasWhiteboard bool
	HasProjector  bool

	// Events расписание аудитории из фида доступности.
	// nil означает, что расписание еще не загружено - движок трактует это
	// как отсутствие событий, а не как ошибку.
	Events []Event
}
