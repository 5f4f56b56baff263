// Command marsrun assembles two or more warriors, places them in a
// shared core, and runs one round to completion, mirroring the
// teacher's run68 in shape: flags select settings, a log narrates
// progress, and a final report is printed.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/corewars/mars/asm"
	"github.com/corewars/mars/config"
	"github.com/corewars/mars/core"
	"github.com/corewars/mars/scheduler"
	"github.com/corewars/mars/tracer"
)

var (
	configPath = flag.String("config", "", "YAML settings file (defaults to spec.md §6 standard '94 settings).")
	seed       = flag.Uint64("seed", 1, "Seed for deterministic warrior placement.")
	traceOut   = flag.String("trace", "", "If set, write a CSV execution trace to this path.")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <warrior1.red> <warrior2.red> [...]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	settings := config.Default()
	if *configPath != "" {
		var err error
		settings, err = config.Load(*configPath)
		if err != nil {
			glog.Errorf("loading config: %v", err)
			os.Exit(1)
		}
	}

	var tr core.Tracer
	var rec *tracer.RecordingTracer
	if *traceOut != "" {
		rec = tracer.NewRecordingTracer(100000, 10000)
		tr = rec
	}

	m := core.New(settings.CoreSize, settings.ReadLimit, settings.WriteLimit, tr)
	s := scheduler.New(m, settings.MaxCycles, settings.MaxProcesses)
	placer := scheduler.NewPlacer(settings.CoreSize, settings.MinDistance, *seed)

	for i, path := range flag.Args() {
		src, err := os.ReadFile(path)
		if err != nil {
			glog.Errorf("reading %s: %v", path, err)
			os.Exit(1)
		}
		p, err := asm.Parse(string(src))
		if err != nil {
			glog.Errorf("assembling %s: %v", path, err)
			os.Exit(1)
		}
		if len(p.Instructions) > settings.MaxLength {
			glog.Errorf("%s: %d instructions exceeds MaxLength %d", path, len(p.Instructions), settings.MaxLength)
			os.Exit(1)
		}
		pid := i + 1
		base := placer.Place(len(p.Instructions))
		name := p.Meta.Name
		if name == "" {
			name = path
		}
		s.AddWarrior(name, pid, p, base)
		glog.Infof("placed %q (pid %d) at %d, %d instructions", name, pid, base, len(p.Instructions))
	}

	result := s.Run()
	fmt.Printf("outcome: %s\n", result.Outcome)
	if result.Outcome == scheduler.Win {
		for _, w := range s.Warriors {
			if w.PID == result.WinnerPID {
				fmt.Printf("winner: %s (pid %d)\n", w.Name, w.PID)
			}
		}
	}
	fmt.Printf("cycles: %d\n", result.Cycles)

	if rec != nil {
		f, err := os.Create(*traceOut)
		if err != nil {
			glog.Errorf("creating trace file: %v", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := tracer.WriteCSV(f, rec.Rows()); err != nil {
			glog.Errorf("writing trace: %v", err)
			os.Exit(1)
		}
		glog.Infof("wrote trace to %s", *traceOut)
	}
}
