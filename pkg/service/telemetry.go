package service

import (
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/byrobot-go/edrone/pkg/handler"
	"github.com/byrobot-go/edrone/pkg/protocol/navigation"
	"github.com/byrobot-go/edrone/pkg/protocol/sensor"
	"github.com/byrobot-go/edrone/pkg/protocol/system"
)

// publish routes one decoded frame to its Redis projection. Every
// DataType gets the generic CBOR telemetry write, a raw blob for replay;
// a handful of kinds additionally get a human-readable breakout into
// named fields for consumers that don't want to decode CBOR themselves.
func (s *Service) publish(res handler.Result) error {
	if err := s.publishRaw(res); err != nil {
		return err
	}

	switch v := res.Value.(type) {
	case system.Ping:
		return s.redis.WriteAndPublishString(KeyDroneLink, FieldLastPingAt, time.Now().UTC().Format(time.RFC3339Nano))
	case system.Information:
		return s.publishInformation(v)
	case sensor.Attitude:
		return s.publishAttitude(v)
	case sensor.Position:
		return s.publishPosition(v.X, v.Y, v.Z)
	case sensor.PositionVelocity:
		return s.publishPosition(v.X, v.Y, v.Z)
	case navigation.Monitor:
		return s.publishNavigationMonitor(v)
	default:
		return nil
	}
}

// publishRaw CBOR-encodes the decoded value keyed by its DataType. A
// single DataType discriminant is enough here since pkg/handler has
// already resolved any size-polymorphism before this is called.
func (s *Service) publishRaw(res handler.Result) error {
	envelope := map[uint8]interface{}{uint8(res.Header.DataType): res.Value}

	cborData, err := cbor.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal CBOR telemetry envelope: %w", err)
	}

	log.Printf("RX telemetry: DataType=%#x CBOR=%s", res.Header.DataType, hex.EncodeToString(cborData))
	field := fmt.Sprintf("%#02x", uint8(res.Header.DataType))
	return s.redis.WriteAndPublishString(KeyDroneTelemetry, field, hex.EncodeToString(cborData))
}

func (s *Service) publishInformation(info system.Information) error {
	if err := s.redis.WriteString(KeyDroneState, "model-number", fmt.Sprintf("%#08x", uint32(info.ModelNumber))); err != nil {
		return err
	}
	return s.redis.WriteString(KeyDroneState, "version", fmt.Sprintf("%d.%d.%d", info.Version.Major, info.Version.Minor, info.Version.Build))
}

func (s *Service) publishAttitude(a sensor.Attitude) error {
	if err := s.redis.WriteInt(KeyDroneTelemetry, "attitude:roll", int(a.Roll)); err != nil {
		return err
	}
	if err := s.redis.WriteInt(KeyDroneTelemetry, "attitude:pitch", int(a.Pitch)); err != nil {
		return err
	}
	return s.redis.WriteInt(KeyDroneTelemetry, "attitude:yaw", int(a.Yaw))
}

func (s *Service) publishPosition(x, y, z float32) error {
	if err := s.redis.WriteString(KeyDroneTelemetry, "position:x", fmt.Sprintf("%.3f", x)); err != nil {
		return err
	}
	if err := s.redis.WriteString(KeyDroneTelemetry, "position:y", fmt.Sprintf("%.3f", y)); err != nil {
		return err
	}
	return s.redis.WriteString(KeyDroneTelemetry, "position:z", fmt.Sprintf("%.3f", z))
}

func (s *Service) publishNavigationMonitor(m navigation.Monitor) error {
	if err := s.redis.WriteInt(KeyDroneTelemetry, "navigation:mode", int(m.ModeNavigation)); err != nil {
		return err
	}
	if err := s.redis.WriteString(KeyDroneTelemetry, "navigation:distance-to-target", fmt.Sprintf("%.3f", m.DistanceToTarget)); err != nil {
		return err
	}
	return s.redis.WriteInt(KeyDroneTelemetry, "navigation:time-remain", int(m.TimeRemain))
}
