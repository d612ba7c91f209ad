// Package callbacks holds the callback shapes a session is configured with
// and a Session that dispatches to them.
package callbacks

type IntCallback func(code int, user any)

type DataCallback func(data []byte, user any) int

type IntIntCallback func(user any, code int, errnoCode int)

// AuthCallback is asked for a secret, e.g. a key passphrase. echo tells
// whether the answer may be shown while typed, verify whether it should be
// asked for twice.
type AuthCallback func(prompt string, echo bool, verify bool, userdata any) (string, error)

// LogCallback receives every loggable event of a session.
type LogCallback func(session *Session, priority int, message string, userdata any)

// StatusCallback is told the fraction of connection steps completed.
type StatusCallback func(userdata any, status float32)

type PacketCallback func(session *Session, packetType uint8, packet []byte, user any) int

const (
	LogNoLog = iota
	LogRare
	LogProtocol
	LogPacket
	LogFunctions
)

const (
	PacketUsed    = 1
	PacketNotUsed = 2
)

const (
	SocketFlowWriteWillBlock = 1 << 0
	SocketFlowWriteWontBlock = 1 << 1

	SocketExceptionEOF   = 1 << 0
	SocketExceptionError = 1 << 1

	SocketConnectedOK      = 1 << 0
	SocketConnectedError   = 1 << 1
	SocketConnectedTimeout = 1 << 2
)

// Callbacks is what a user registers on a session. Any function may be nil.
type Callbacks struct {
	Userdata              any
	AuthFunction          AuthCallback
	LogFunction           LogCallback
	ConnectStatusFunction StatusCallback
}

// SocketCallbacks is what a socket reports to its owner.
type SocketCallbacks struct {
	Data        DataCallback
	ControlFlow IntCallback
	Exception   IntIntCallback
	Connected   IntIntCallback
	User        any
}

// PacketCallbacks handles the packet types Start..Start+len(Callbacks)-1,
// the handler for type Start+i being Callbacks[i].
type PacketCallbacks struct {
	Start     uint8
	Callbacks []PacketCallback
	User      any
}

func (packetCallbacks *PacketCallbacks) handler(packetType uint8) PacketCallback {
	if packetType < packetCallbacks.Start {
		return nil
	}
	index := int(packetType) - int(packetCallbacks.Start)
	if index >= len(packetCallbacks.Callbacks) {
		return nil
	}
	return packetCallbacks.Callbacks[index]
}
