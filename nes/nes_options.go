package famicore

import (
	"fmt"
	"log"
	"os"

	"github.com/goretro/famicore/nes/speakers"
)

// Option configures the console ahead of its initialisation.
type Option func(*nes) error

func (n *nes) setOptions(options ...Option) error {
	for i, option := range options {
		if err := option(n); err != nil {
			return fmt.Errorf("failed to set option index %d, err=%v", i, err)
		}
	}
	return nil
}

func (n *nes) setCart(path string) error {
	n.cartPath = path
	return nil
}
func (n *nes) setVerbose(verbose bool) error {
	n.verbose = verbose
	return nil
}
func (n *nes) setFreeRun(freeRun bool) error {
	n.freeRun = freeRun
	return nil
}
func (n *nes) setAudioLibrary(name speakers.AudioLib) error {
	switch name {
	case speakers.Nil, speakers.Beep:
	default:
		return fmt.Errorf("unknown audio library %q", name)
	}
	n.audioLib = name
	return nil
}
func (n *nes) setLogToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	log.SetOutput(file)
	return nil
}

func CartPath(path string) Option {
	return func(n *nes) error {
		return n.setCart(path)
	}
}

func Verbose(verbose bool) Option {
	return func(n *nes) error {
		return n.setVerbose(verbose)
	}
}

// FreeRun removes the NTSC clock throttle and steps over undecodable
// opcodes instead of halting.
func FreeRun(freeRun bool) Option {
	return func(n *nes) error {
		return n.setFreeRun(freeRun)
	}
}

func AudioLibrary(name string) Option {
	return func(n *nes) error {
		return n.setAudioLibrary(speakers.AudioLib(name))
	}
}

func LogToFile(path string) Option {
	return func(n *nes) error {
		return n.setLogToFile(path)
	}
}
