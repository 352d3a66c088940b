package main

import (
	"flag"
	"fmt"
	"os"

	famicore "github.com/goretro/famicore/nes"
)

func validINesPath(romPath string) error {
	stat, err := os.Stat(romPath)
	if err != nil {
		return fmt.Errorf("iNes rom file path (%q) does not exist or is not valid", romPath)
	} else if stat.IsDir() {
		return fmt.Errorf("iNes rom file path (%q) points to a directory", romPath)
	}
	return nil
}

func main() {
	romPath := flag.String("rom", "", "path to the iNes rom file to run")
	verbose := flag.Bool("verbose", false, "log every executed instruction")
	freeRun := flag.Bool("freerun", false, "run unthrottled and step over bad opcodes")
	audioLib := flag.String("audio", "beep", "audio library to use (nil, beep)")
	logFile := flag.String("logfile", "", "redirect logging to the given file")
	seconds := flag.Float64("seconds", 0, "run headless for the given emulated seconds, then exit")
	flag.Parse()

	if err := validINesPath(*romPath); err != nil {
		fmt.Printf("failed to start famicore, err=%v\n", err)
		os.Exit(1)
	}

	options := []famicore.Option{
		famicore.CartPath(*romPath),
		famicore.Verbose(*verbose),
		famicore.FreeRun(*freeRun),
		famicore.AudioLibrary(*audioLib),
	}
	if *logFile != "" {
		options = append(options, famicore.LogToFile(*logFile))
	}

	fmt.Printf("starting famicore with iNes rom file: %s\n", *romPath)
	nes := famicore.NewNES(options...)

	if *seconds > 0 {
		nes.StepSeconds(*seconds)
		fmt.Printf("ran %d frames\n", nes.Frames())
		return
	}
	nes.Run()
}
