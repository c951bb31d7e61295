// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/ezrec/r16/cpu"
	"github.com/ezrec/r16/emulator"
	"github.com/ezrec/r16/io"
	"github.com/ezrec/r16/translate"
)

func main() {
	var compile string
	var image string
	var output string
	var disassemble bool
	var save bool
	var limit int
	var verbose bool
	var lang string

	flag.StringVar(&compile, "c", "", ".s file to assemble")
	flag.StringVar(&image, "i", "", "binary image to load")
	flag.StringVar(&output, "o", "", "binary image to write ('-' for stdout)")
	flag.BoolVar(&disassemble, "d", false, "Print a disassembly listing")
	flag.BoolVar(&save, "s", false, "Do not execute")
	flag.IntVar(&limit, "n", emulator.TICK_LIMIT, "Maximum ticks to execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "l", "", "Message locale (default: host locale)")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		translate.Use(lang)
	}

	if len(compile) != 0 && len(image) != 0 {
		log.Fatalf("%v: -c and -i are exclusive", os.Args[0])
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	prog := &cpu.Program{}

	// Assemble a new instruction stream.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}
		prog, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	// Load an existing image.
	if len(image) != 0 {
		inf, err := os.Open(image)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		defer inf.Close()

		rom := &io.Rom{}
		_, err = rom.ReadFrom(inf)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}

		prog, err = cpu.NewProgram(rom.Data)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
	}

	if disassemble {
		fmt.Print(prog.Disassemble())
	}

	if len(output) != 0 {
		rom := &io.Rom{Data: prog.Binary()}
		if output == "-" {
			if term.IsTerminal(int(os.Stdout.Fd())) {
				log.Fatalf("%v: refusing to write a binary image to a terminal", os.Args[0])
			}
			_, err := rom.WriteTo(os.Stdout)
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
		} else {
			ouf, err := os.Create(output)
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
			defer ouf.Close()
			_, err = rom.WriteTo(ouf)
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
		}
	}

	if !save {
		emu.Program = prog

		err := emu.Reset()
		if err != nil {
			log.Fatal(err)
		}

		err = emu.Run(limit)
		if err != nil {
			log.Fatal(err)
		}

		if verbose {
			log.Printf("ticks: %v, power: %v", emu.Ticks(), emu.Power())
		}

		fmt.Fprint(os.Stderr, emu.Cpu.String())
	}
}
