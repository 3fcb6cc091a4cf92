//go:build rp2040 || rp2350

package main

import (
	"context"
	"machine"
	"time"

	"displayled/core"
	"displayled/panel"
)

var (
	// Debug counters
	loopPanics  uint32
	timerPanics uint32
)

func main() {
	// CRITICAL: Disable watchdog on boot to clear any previous state
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	// Initialize USB CDC first so bring-up errors are visible
	InitUSB()
	core.SetDebugWriter(usbDebugWriter)
	core.InitAsyncDebug()

	InitClock()

	core.SetGPIODriver(NewRPGPIODriver())
	core.SetI2CDriver(NewRPI2CDriver())

	renderer := InitDisplay()
	strip := InitLEDStrip()

	p := panel.New(panel.DefaultConfig(), panel.Deps{
		GPIO:     core.MustGPIO(),
		Renderer: renderer,
		Strip:    strip,
		Source:   usbSource{},
	})

	// Debounce release runs off the timer list, so it must be dispatching
	// before the first edge can arm it.
	go timerLoop()

	if err := p.Start(); err != nil {
		core.RecordEvent(core.EvtInitError, 0, 0)
		core.DebugPrintln("Error starting panel: " + err.Error())
	}
	core.DebugPrintln("displayled ready")

	for {
		runLoop(p)
	}
}

// runLoop runs the main loop until it panics. The caller restarts it, so a
// bad character or driver fault never takes the firmware down.
func runLoop(p *panel.Panel) {
	defer func() {
		if r := recover(); r != nil {
			loopPanics++
			core.DebugPrintln("main loop panic #" + core.Itoa(int(loopPanics)))
			core.DumpEventRing()
			time.Sleep(panel.PollInterval)
		}
	}()

	p.Loop.Run(context.Background())
}

// timerLoop dispatches due timers every millisecond
func timerLoop() {
	// Recover from panics to prevent a firmware crash
	defer func() {
		if r := recover(); r != nil {
			timerPanics++
			time.Sleep(panel.TimerTick)
			go timerLoop()
		}
	}()

	for {
		core.ProcessTimers()
		time.Sleep(panel.TimerTick)
	}
}
