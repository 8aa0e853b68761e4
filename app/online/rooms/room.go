package rooms

type Room struct {
	ID     int64
	Name   string
	HostID int
}
