package types

// PacketType identifies which record kind a packet describes.
type PacketType string

const (
	// PacketClient is a packet describing a service client.
	PacketClient PacketType = "client"
	// PacketEmployee is a packet describing a staff member.
	PacketEmployee PacketType = "employee"
)

// String returns the wire representation of the packet type.
func (p PacketType) String() string {
	return string(p)
}
