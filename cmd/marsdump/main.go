// Command marsdump loads an assembled warrior into a bare MemoryCore
// and prints every occupied cell as address:instruction text, the
// Redcode analogue of the teacher's dis68 linear-sweep disassembly.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/corewars/mars/asm"
	"github.com/corewars/mars/config"
	"github.com/corewars/mars/core"
)

var (
	base = flag.Int("base", 0, "Base address to place the warrior at.")
	full = flag.Bool("full", false, "Dump every core cell instead of just the warrior's footprint.")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <sourcefile>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputFile := flag.Arg(0)

	src, err := os.ReadFile(inputFile)
	if err != nil {
		glog.Errorf("reading source file: %v", err)
		os.Exit(1)
	}

	p, err := asm.Parse(string(src))
	if err != nil {
		glog.Errorf("assembly error: %v", err)
		os.Exit(1)
	}

	settings := config.Default()
	m := core.New(settings.CoreSize, settings.ReadLimit, settings.WriteLimit, nil)
	for i, instr := range p.Instructions {
		m.Place(*base+i, instr, 1)
	}
	glog.Infof("placed %d instructions at base %d", len(p.Instructions), *base)

	if *full {
		for addr := 0; addr < settings.CoreSize; addr++ {
			fmt.Printf("%d: %s\n", addr, m.Load(addr))
		}
		return
	}
	for i := range p.Instructions {
		addr := *base + i
		fmt.Printf("%d: %s\n", m.Fold(addr), m.Load(addr))
	}
}
