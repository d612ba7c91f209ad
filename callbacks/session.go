package callbacks

import (
	"errors"
	"fmt"

	"sshmisc/util"
)

var (
	ErrInvalidCallbacks = errors.New("invalid callbacks")
	ErrNoAuthCallback   = errors.New("no auth callback registered")
)

// Session carries the user callbacks and the packet handler tables. Handler
// tables are consulted in registration order. A Session is not safe for
// concurrent use.
type Session struct {
	callbacks       *Callbacks
	packetCallbacks util.List[*PacketCallbacks]
}

func NewSession() *Session {
	return &Session{}
}

// SetCallbacks replaces the user callbacks of the session.
func (session *Session) SetCallbacks(cb *Callbacks) error {
	if cb == nil {
		return fmt.Errorf("%w: nil callbacks", ErrInvalidCallbacks)
	}
	session.callbacks = cb
	return nil
}

func (session *Session) Callbacks() *Callbacks {
	return session.callbacks
}

// AddPacketCallbacks registers a handler table after the existing ones.
// The returned iterator identifies the table for RemovePacketCallbacks.
func (session *Session) AddPacketCallbacks(packetCallbacks *PacketCallbacks) *util.Iterator[*PacketCallbacks] {
	return session.packetCallbacks.Add(packetCallbacks)
}

func (session *Session) RemovePacketCallbacks(iterator *util.Iterator[*PacketCallbacks]) bool {
	return session.packetCallbacks.Remove(iterator)
}

// DispatchPacket hands the packet to the registered handlers covering
// packetType until one of them reports PacketUsed. It reports whether the
// packet was consumed.
func (session *Session) DispatchPacket(packetType uint8, packet []byte) bool {
	for it := session.packetCallbacks.Iterator(); it != nil; it = it.Next() {
		packetCallbacks := it.Data()
		if packetCallbacks == nil {
			continue
		}
		handler := packetCallbacks.handler(packetType)
		if handler == nil {
			continue
		}
		if handler(session, packetType, packet, packetCallbacks.User) == PacketUsed {
			return true
		}
	}
	return false
}

func (session *Session) Log(priority int, message string) {
	if priority <= LogNoLog || session.callbacks == nil || session.callbacks.LogFunction == nil {
		return
	}
	session.callbacks.LogFunction(session, priority, message, session.callbacks.Userdata)
}

func (session *Session) ReportStatus(status float32) {
	if session.callbacks == nil || session.callbacks.ConnectStatusFunction == nil {
		return
	}
	session.callbacks.ConnectStatusFunction(session.callbacks.Userdata, status)
}

func (session *Session) Auth(prompt string, echo bool, verify bool) (string, error) {
	if session.callbacks == nil || session.callbacks.AuthFunction == nil {
		return "", ErrNoAuthCallback
	}
	return session.callbacks.AuthFunction(prompt, echo, verify, session.callbacks.Userdata)
}
