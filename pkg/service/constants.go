package service

// Redis keys, keyed to the drone link rather than a vehicle's battery/dashboard
// state.
const (
	KeyDroneLink      = "drone:link"      // connection/liveness fields
	KeyDroneTelemetry = "drone:telemetry" // decoded sensor/navigation fields
	KeyDroneState     = "drone:state"     // last-known Information/SystemInformation
	KeyDroneControl   = "drone:control"   // desired stick/position setpoint, written by a pilot app
	KeyDroneCommand   = "drone:command"   // one-shot Command/Request values

	KeyDroneCommandList = "drone:commands" // outbound command queue, BRPOP-drained
)

// Field names within KeyDroneLink.
const (
	FieldConnected  = "connected"
	FieldLastPingAt = "last-ping-at"
)
