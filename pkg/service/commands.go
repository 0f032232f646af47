package service

import (
	"log"
	"time"

	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/protocol/command"
	"github.com/byrobot-go/edrone/pkg/protocol/control"
	"github.com/byrobot-go/edrone/pkg/protocol/system"
)

// InitializeLink sends the handshake sequence a fresh connection needs:
// a liveness ping followed by an Information request, pacing each send
// with a short sleep so the peer isn't flooded mid-handshake.
func (s *Service) InitializeLink() error {
	log.Println("Starting link initialization...")

	if err := s.SendPing(); err != nil {
		log.Printf("Warning: failed to send initial ping: %v", err)
	} else {
		log.Println("Sent initial ping")
	}
	time.Sleep(50 * time.Millisecond)

	if err := s.SendRequest(protocol.DataInformation); err != nil {
		log.Printf("Warning: failed to request Information: %v", err)
	} else {
		log.Println("Sent Information request")
	}

	log.Println("Link initialization sequence sent")
	return nil
}

// SendPing transmits a Ping stamped with the current time.
func (s *Service) SendPing() error {
	p := system.Ping{SystemTime: uint64(time.Now().UnixMicro())}
	return s.transport.Send(protocol.DataPing, s.from, s.to, p.ToVec())
}

// SendRequest asks the peer to emit one frame of the given DataType.
func (s *Service) SendRequest(dataType protocol.DataType) error {
	r := system.Request{DataType: dataType}
	return s.transport.Send(protocol.DataRequest, s.from, s.to, r.ToVec())
}

// SendControl transmits a raw flight-stick axis quad.
func (s *Service) SendControl(roll, pitch, yaw, throttle int8) error {
	c := control.Quad8{Roll: roll, Pitch: pitch, Yaw: yaw, Throttle: throttle}
	return s.transport.Send(protocol.DataControl, s.from, s.to, c.ToVec())
}

// SendCommand transmits a one-shot Command/option pair.
func (s *Service) SendCommand(commandType command.Type, option uint8) error {
	c := command.Command{CommandType: commandType, Option: option}
	return s.transport.Send(protocol.DataCommand, s.from, s.to, c.ToVec())
}
