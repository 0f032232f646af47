package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/redis"
	"github.com/byrobot-go/edrone/pkg/service"
	"github.com/byrobot-go/edrone/pkg/transport"
)

var (
	serialDevice = flag.String("serial", "/dev/ttyACM0", "Serial device path")
	baudRate     = flag.Int("baud", 115200, "Serial baud rate")
	redisAddr    = flag.String("redis-addr", "localhost:6379", "Redis server address")
	redisPass    = flag.String("redis-pass", "", "Redis password")
	redisDB      = flag.Int("redis-db", 0, "Redis database number")
	linkInterval = flag.Duration("link-interval", 500*time.Millisecond, "Link liveness publish interval")
)

func main() {
	flag.Parse()

	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Printf("Starting e-drone bridge")
	log.Printf("Serial device: %s", *serialDevice)
	log.Printf("Baud rate: %d", *baudRate)
	log.Printf("Redis address: %s", *redisAddr)

	redisClient, err := redis.New(*redisAddr, *redisPass, *redisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Printf("Connected to Redis")

	var svc *service.Service

	t, err := transport.Open(*serialDevice, *baudRate, func(f transport.Frame) {
		svc.HandleFrame(f)
	})
	if err != nil {
		log.Fatalf("Failed to open serial device %s: %v", *serialDevice, err)
	}
	defer t.Close()
	log.Printf("Connected to %s", *serialDevice)

	svc = service.New(t, redisClient, protocol.DeviceController, protocol.DeviceDrone)
	t.Run()

	go svc.RunLinkMonitor(*linkInterval)
	go svc.RunCommandLoop()

	log.Printf("Initializing link...")
	if err := svc.InitializeLink(); err != nil {
		log.Printf("Error during link initialization: %v", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	svc.Stop()
	log.Printf("Shutting down...")
}
