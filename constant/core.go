package constant

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the simulation step and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventChannelSize is the buffered capacity between the input poller and the main loop
	EventChannelSize = 256

	// SchedulerMaxBehind is the number of intervals a task may lag before it is resynced
	SchedulerMaxBehind = 2
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "duel.log"
	MaxLogSize  = 10 * 1024 * 1024 // Rotate above 10MB
)
