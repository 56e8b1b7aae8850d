// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Command vkreplay replays a recorded trace against a live Vulkan
// driver.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gviegas/vkreplay/display"
	"github.com/gviegas/vkreplay/internal/tracefile"
	"github.com/gviegas/vkreplay/internal/vkffi"
	"github.com/gviegas/vkreplay/replay"
)

func main() {
	width := flag.Int("width", 800, "window width")
	height := flag.Int("height", 600, "window height")
	gpu := flag.Int("gpu", 0, "physical device index to replay against")
	screenshotList := flag.String("screenshot-list", "", "frame list; when non-empty, the screenshot layer is enabled if the host has it")
	adjustForGPU := flag.Bool("adjust-for-gpu", false, "stage memory writes through the Memory Shadow instead of writing immediately")
	discardDebugCallbacks := flag.Bool("discard-debug-callbacks", false, "accept but never create recorded debug report callbacks")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] trace.json\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), replay.Settings{
		ScreenshotList:        *screenshotList,
		AdjustForGPU:          *adjustForGPU,
		Width:                 *width,
		Height:                *height,
		GPUIndex:              *gpu,
		DiscardDebugCallbacks: *discardDebugCallbacks,
	}); err != nil {

		log.Fatalf("vkreplay: %v", err)
	}
}

func run(tracePath string, settings replay.Settings) error {
	f, err := os.Open(tracePath)
	if err != nil {
		return fmt.Errorf("open trace: %w", err)
	}
	src, err := tracefile.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("decode trace: %w", err)
	}

	loaders := vkffi.Loaders()
	if len(loaders) == 0 {
		return fmt.Errorf("no driver loader registered")
	}
	table, err := loaders[0].Open()
	if err != nil {
		return fmt.Errorf("open driver %q: %w", loaders[0].Name(), err)
	}

	disp, err := display.Open(settings.Width, settings.Height, "vkreplay", nil)
	if err != nil {
		return fmt.Errorf("open display: %w", err)
	}

	drv := replay.NewDriver(table, disp, settings)
	defer func() {
		if err := drv.Close(); err != nil {
			log.Printf("vkreplay: close: %v", err)
		}
	}()

	var n, failed int
	for {
		p, ok := src.Next()
		if !ok {
			break
		}
		status := drv.Dispatch(p)
		n++
		if status != replay.StatusSuccess {
			failed++
			log.Printf("vkreplay: packet %d (%s): %s", n, p.Entry, status)
		}
	}
	log.Printf("vkreplay: replayed %d packet(s), %d frame(s), %d failure(s)", n, drv.Frame(), failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d packets did not replay cleanly", failed, n)
	}
	return nil
}
