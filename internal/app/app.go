package app

import (
	"log"
	"time"

	"globe/internal/config"
	"globe/internal/profiling"
)

// Host is the window system side of the loop.
type Host interface {
	ShouldClose() bool
	// Present swaps buffers and pumps window events.
	Present()
}

// FrameDriver renders one frame per call.
type FrameDriver interface {
	RenderNextFrame()
}

// Pacer blocks until the next tick is due.
type Pacer interface {
	Wait()
}

// App runs the fixed-cadence frame loop until the host asks to close.
type App struct {
	host   Host
	frames FrameDriver
	pacer  Pacer

	ticks uint64
}

func New(host Host, frames FrameDriver, pacer Pacer) *App {
	return &App{
		host:   host,
		frames: frames,
		pacer:  pacer,
	}
}

func (a *App) Run() {
	for !a.host.ShouldClose() {
		a.tick()
	}
	log.Printf("frame loop stopped after %d ticks", a.ticks)
}

// Ticks returns how many ticks have run.
func (a *App) Ticks() uint64 {
	return a.ticks
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()

	a.frames.RenderNextFrame()
	func() { defer profiling.Track("host.Present")(); a.host.Present() }()
	a.ticks++

	// A frame that overruns its tick delays the next one
	if d := time.Since(start); d > tickBudget() {
		log.Printf("Slow frame: %v (render %v). Top tasks: %s", d, profiling.SumWithPrefix("renderer."), profiling.TopN(5))
	}

	a.pacer.Wait()
}

func tickBudget() time.Duration {
	rate := config.GetTickRate()
	if rate <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(rate)
}
