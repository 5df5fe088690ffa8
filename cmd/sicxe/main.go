// sicxe is a command-line front end for the SIC/XE simulator. It loads an
// object program and steps it, at the rate set by -freq, until decoding or
// executing an instruction fails, then prints the final register state. The
// terminal UI and richer interactive stepping are external collaborators
// this entry point does not implement; see the engine package for the
// simulator itself.
package main

import (
	"fmt"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/smoynes/sicxe/internal/engine"
	"github.com/smoynes/sicxe/internal/log"
)

func main() {
	optFreq := getopt.Uint64Long("freq", 'f', engine.DefaultFrequency, "Instruction frequency in Hz (0 disables throttling)")
	optDevDir := getopt.StringLong("devdir", 'd', "", "Directory for file-backed device (XX.dev) files")
	optHelp := getopt.BoolLong("help", 'h', false, "Help")
	getopt.Parse()

	if *optHelp || getopt.NArgs() == 0 {
		getopt.Usage()
		os.Exit(1)
	}

	logger := log.DefaultLogger()
	log.SetDefault(logger)

	objPath := getopt.Arg(0)

	obj, err := os.Open(objPath)
	if err != nil {
		logger.Error("open object file", "err", err)
		os.Exit(1)
	}
	defer obj.Close()

	driver := engine.NewDriver(
		engine.WithFrequency(*optFreq),
		engine.WithDevices(*optDevDir),
	)

	if err := driver.LoadFile(obj); err != nil {
		logger.Error("load object program", "err", err)
		os.Exit(1)
	}

	driver.Start()

	for {
		if err := driver.TryStep(); err != nil {
			logger.Error("execution halted", "err", err)
			break
		}
	}

	fmt.Printf("%s\n", driver.Machine().Reg.String())
}
