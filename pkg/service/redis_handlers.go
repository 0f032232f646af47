package service

import (
	"fmt"
	"log"

	"github.com/fxamacker/cbor/v2"

	"github.com/byrobot-go/edrone/pkg/protocol/command"
)

// outboundCommand is the CBOR envelope a pilot app LPUSHes onto
// KeyDroneCommandList. Kind selects which Send* method dispatches it;
// the remaining fields are read only by the kinds that use them.
type outboundCommand struct {
	Kind        string       `cbor:"kind"`
	Roll        int8         `cbor:"roll,omitempty"`
	Pitch       int8         `cbor:"pitch,omitempty"`
	Yaw         int8         `cbor:"yaw,omitempty"`
	Throttle    int8         `cbor:"throttle,omitempty"`
	CommandType command.Type `cbor:"command-type,omitempty"`
	Option      uint8        `cbor:"option,omitempty"`
}

// RunCommandLoop blocks on KeyDroneCommandList and dispatches every
// LPUSHed command to the transport via a BRPOP loop.
func (s *Service) RunCommandLoop() {
	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		result, err := s.redis.BRPop(0, KeyDroneCommandList)
		if err != nil {
			log.Printf("command queue BRPOP failed: %v", err)
			continue
		}
		if result == nil {
			continue
		}

		if err := s.dispatchCommand(result[1]); err != nil {
			log.Printf("failed to dispatch queued command: %v", err)
		}
	}
}

func (s *Service) dispatchCommand(raw string) error {
	var cmd outboundCommand
	if err := cbor.Unmarshal([]byte(raw), &cmd); err != nil {
		return fmt.Errorf("decode command envelope: %w", err)
	}

	switch cmd.Kind {
	case "control":
		return s.SendControl(cmd.Roll, cmd.Pitch, cmd.Yaw, cmd.Throttle)
	case "command":
		return s.SendCommand(cmd.CommandType, cmd.Option)
	case "ping":
		return s.SendPing()
	default:
		return fmt.Errorf("unknown command kind %q", cmd.Kind)
	}
}
