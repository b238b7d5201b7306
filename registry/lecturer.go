package registry

import "fmt"

// Lecturer represents a lecturer or professor. Lecturers are values:
// two Lecturer structs are the same lecturer when all fields match.
// Mononym lecturers have an empty LastName.
type Lecturer struct {
	ID        int
	NetID     string
	FirstName string
	LastName  string
}

func (l Lecturer) String() string {
	if l.LastName == "" {
		return fmt.Sprintf("%s (%s)", l.FirstName, l.NetID)
	}
	return fmt.Sprintf("%s %s (%s)", l.FirstName, l.LastName, l.NetID)
}

// Location represents a room a section meets in. RoomCapacity is the fire
// code ceiling for any section held there.
type Location struct {
	Building     string
	Room         string
	RoomCapacity int
}

func (l Location) String() string {
	return fmt.Sprintf("%s %s", l.Building, l.Room)
}
