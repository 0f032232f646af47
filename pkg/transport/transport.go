// Package transport owns the physical serial link: opening the port via
// go.bug.st/serial, pumping received bytes into a pkg/receiver.Receiver,
// and writing frames built by pkg/transfer. It generalizes a usock-style
// connection lifecycle (New/readLoop/Close) to the wire layout
// and framing state machine defined by pkg/protocol and pkg/receiver.
package transport

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"go.bug.st/serial"

	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/receiver"
	"github.com/byrobot-go/edrone/pkg/transfer"
)

// Frame is one received, framing-validated datagram handed to the
// consumer's callback.
type Frame struct {
	Header  protocol.Header
	Payload []byte
}

// Transport owns one open serial port plus the Receiver draining its
// byte stream.
type Transport struct {
	port serial.Port
	recv *receiver.Receiver

	handler  func(Frame)
	stopChan chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// Open opens devicePath at baudRate (8-N-1). Call Run once the caller is
// ready to receive frames; the port is not read from until then.
func Open(devicePath string, baudRate int, handler func(Frame)) (*Transport, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(devicePath, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", devicePath, err)
	}

	return &Transport{
		port:     port,
		recv:     receiver.New(),
		handler:  handler,
		stopChan: make(chan struct{}),
	}, nil
}

// Run starts the background read loop that feeds every incoming byte to
// a Receiver, invoking handler once per fully validated frame. Must be
// called exactly once per Transport.
func (t *Transport) Run() {
	t.wg.Add(1)
	go t.readLoop()
}

// Close stops the read loop and closes the underlying port.
func (t *Transport) Close() error {
	close(t.stopChan)
	t.wg.Wait()
	return t.port.Close()
}

// Send builds a frame for (dataType, from, to, payload) and writes it to
// the port in a single call.
func (t *Transport) Send(dataType protocol.DataType, from, to protocol.DeviceType, payload []byte) error {
	frame := transfer.Build(dataType, from, to, payload)

	t.mu.Lock()
	defer t.mu.Unlock()

	log.Printf("TX frame: % X", frame)
	if _, err := t.port.Write(frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// IsConnected reports the Receiver's liveness flag (see
// receiver.Receiver.IsConnected).
func (t *Transport) IsConnected() bool { return t.recv.IsConnected() }

func (t *Transport) readLoop() {
	defer t.wg.Done()

	buf := make([]byte, 256)
	for {
		select {
		case <-t.stopChan:
			return
		default:
		}

		n, err := t.port.Read(buf)
		if err != nil {
			if err != io.EOF {
				log.Printf("serial read error: %v", err)
				time.Sleep(10 * time.Millisecond)
			}
			continue
		}
		if n == 0 {
			continue
		}

		t.recv.PushSlice(buf[:n])
		for t.recv.Check() {
			header := t.recv.Header()
			payload := append([]byte(nil), t.recv.Payload()...)

			log.Printf("RX frame: DataType=%#x Length=%d From=%#x To=%#x Payload=%s",
				header.DataType, header.Length, header.From, header.To, hex.EncodeToString(payload))

			if t.handler != nil {
				t.handler(Frame{Header: header, Payload: payload})
			}
			t.recv.Clear()
		}
	}
}
