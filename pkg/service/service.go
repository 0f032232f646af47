// Package service bridges the decoded wire protocol to Redis: publishing
// telemetry and state as it arrives, and draining an outbound command
// queue to drive the transport.
package service

import (
	"log"
	"time"

	"github.com/byrobot-go/edrone/pkg/handler"
	"github.com/byrobot-go/edrone/pkg/protocol"
	redisclient "github.com/byrobot-go/edrone/pkg/redis"
	"github.com/byrobot-go/edrone/pkg/transport"
)

// Service couples one open transport to one Redis client. It owns no
// goroutines of its own at construction time; callers start its loops
// explicitly via RunLinkMonitor/RunCommandLoop.
type Service struct {
	transport *transport.Transport
	redis     *redisclient.Client

	from protocol.DeviceType
	to   protocol.DeviceType

	stopCh chan struct{}
}

// New creates a Service that addresses outbound frames From->To over
// transport, publishing decoded frames and draining outbound commands
// through redisClient.
func New(t *transport.Transport, redisClient *redisclient.Client, from, to protocol.DeviceType) *Service {
	return &Service{
		transport: t,
		redis:     redisClient,
		from:      from,
		to:        to,
		stopCh:    make(chan struct{}),
	}
}

// Stop signals the Service's background loops to exit.
func (s *Service) Stop() {
	close(s.stopCh)
}

// HandleFrame is the transport's receive callback: it decodes the frame's
// payload via pkg/handler and publishes the result to Redis. Safe to call
// from the transport's read-loop goroutine.
func (s *Service) HandleFrame(f transport.Frame) {
	res := handler.Handle(f.Header, f.Payload)
	if res.Err != "" {
		log.Printf("decode error: %s", res.Err)
		return
	}
	if err := s.publish(res); err != nil {
		log.Printf("failed to publish %#x to Redis: %v", res.Header.DataType, err)
	}
}

// RunLinkMonitor periodically mirrors the transport's liveness flag into
// Redis at the given interval.
func (s *Service) RunLinkMonitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			connected := s.transport.IsConnected()
			if err := s.redis.WriteAndPublishString(KeyDroneLink, FieldConnected, boolString(connected)); err != nil {
				log.Printf("failed to publish link state: %v", err)
			}
		}
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
