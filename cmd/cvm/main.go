// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/ezrec/cellvm/config"
	"github.com/ezrec/cellvm/cpu"
	"github.com/ezrec/cellvm/emulator"
)

// EXIT_FAULT is the exit status of a run that ends in a decoder fault.
const EXIT_FAULT = 2

func main() {
	var compile string
	var image string
	var raw string
	var save bool
	var write string
	var listing bool
	var output string
	var configFile string
	var cells uint
	var verbose bool
	var depth int

	flag.StringVar(&compile, "c", "", ".cvm assembly file to compile")
	flag.StringVar(&image, "x", "", ".cvmx image file to load")
	flag.StringVar(&raw, "b", "", "raw bytecode file to load")
	flag.BoolVar(&save, "s", false, "Save image to -w file, do not execute")
	flag.StringVar(&write, "w", "", "Image file to write")
	flag.BoolVar(&listing, "l", false, "List the disassembled program")
	flag.StringVar(&output, "o", "", "Observation output ('-' for stdout)")
	flag.StringVar(&configFile, "f", "", ".toml configuration file")
	flag.UintVar(&cells, "n", 0, "Cells on the board")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.IntVar(&depth, "d", 0, "Cells to dump after the run")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	sources := 0
	for _, name := range []string{compile, image, raw} {
		if len(name) != 0 {
			sources++
		}
	}
	if sources != 1 {
		log.Fatalf("%v: exactly one of -c, -x or -b is required", os.Args[0])
	}

	cfg := config.Default()
	if len(configFile) != 0 {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	if cells != 0 {
		cfg.Cells = cells
	}
	if verbose {
		cfg.Verbose = true
	}
	if len(output) != 0 {
		cfg.Output = output
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	emu := emulator.NewEmulator(cfg)

	// Raw bytecode has no listing; it runs as-is.
	var stream []byte

	switch {
	case len(compile) != 0:
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		err = emu.Assemble(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	case len(image) != 0:
		inf, err := os.Open(image)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		defer inf.Close()

		emu.Program, err = cpu.DecodeImage(inf)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
	case len(raw) != 0:
		var err error
		stream, err = os.ReadFile(raw)
		if err != nil {
			log.Fatalf("%v: %v", raw, err)
		}
	}

	if save {
		if len(write) == 0 {
			log.Fatalf("%v: -s requires -w", os.Args[0])
		}
		if stream != nil {
			log.Fatalf("%v: raw bytecode cannot be saved as an image", raw)
		}

		ouf, err := os.Create(write)
		if err != nil {
			log.Fatalf("%v: %v", write, err)
		}

		err = errors.Join(cpu.EncodeImage(ouf, emu.Program), ouf.Close())
		if err != nil {
			log.Fatalf("%v: %v", write, err)
		}
		return
	}

	var out io.Writer = os.Stdout
	if cfg.Output != "-" {
		ouf, err := os.Create(cfg.Output)
		if err != nil {
			log.Fatalf("%v: %v", cfg.Output, err)
		}
		defer ouf.Close()
		out = ouf
	}
	buffered := bufio.NewWriter(out)
	emu.Tape.Output = buffered

	if listing {
		binary := stream
		if binary == nil {
			binary = emu.Program.Binary()
		}
		err := cpu.DisassembleAll(binary, os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
	}

	var consumed uint
	var err error
	if stream != nil {
		err = emu.Reset()
		if err == nil {
			consumed, err = emu.Cpu.Run(stream)
		}
	} else {
		consumed, err = emu.Run()
	}

	if ferr := buffered.Flush(); ferr != nil {
		log.Printf("%v: %v", cfg.Output, ferr)
	}

	if err != nil {
		log.Printf("%v", err)
		var fault *cpu.ErrFault
		if errors.As(err, &fault) {
			_ = fault.Dump(os.Stderr)
			os.Exit(EXIT_FAULT)
		}
		os.Exit(1)
	}

	if cfg.Verbose {
		log.Printf("consumed %d bytes in %d ticks", consumed, emu.Ticks())
	}

	if depth > 0 {
		err = emu.Cpu.Dump(os.Stdout, depth)
		if err != nil {
			log.Fatal(err)
		}
	}
}
