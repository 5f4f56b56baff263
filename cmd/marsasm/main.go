// Command marsasm assembles a Redcode '94 source file and prints its
// resolved, position-independent form, mirroring the teacher's
// asm68 in shape (read a source file, report errors, write a result).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/corewars/mars/asm"
)

func main() {
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s <sourcefile>\n", os.Args[0])
		os.Exit(1)
	}
	inputFile := flag.Arg(0)

	src, err := os.ReadFile(inputFile)
	if err != nil {
		glog.Errorf("reading source file: %v", err)
		os.Exit(1)
	}

	glog.Infof("assembling %s", inputFile)
	p, err := asm.Parse(string(src))
	if err != nil {
		glog.Errorf("assembly error: %v", err)
		os.Exit(1)
	}

	fmt.Print(asm.Print(p))
}
