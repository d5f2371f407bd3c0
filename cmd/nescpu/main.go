// Command nescpu is the CLI entry point for the 6502 CORE: load a flat
// binary or iNES ROM, then run it, disassemble it, or step it under the
// interactive debugger.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hwalbrandt/nescpu/cpu"
	"github.com/hwalbrandt/nescpu/internal/bus"
	"github.com/hwalbrandt/nescpu/internal/debugger"
	"github.com/hwalbrandt/nescpu/internal/disasm"
	"github.com/hwalbrandt/nescpu/internal/inesrom"
)

func main() {
	app := &cli.App{
		Name:  "nescpu",
		Usage: "drive the 6502 CPU core against a ROM or raw binary",
		Commands: []*cli.Command{
			runCommand(),
			disasmCommand(),
			debugCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

var loadAddrFlag = &cli.Uint64Flag{
	Name:  "addr",
	Usage: "load address for a raw (non-iNES) binary",
	Value: 0xC000,
}

var cyclesFlag = &cli.Uint64Flag{
	Name:  "cycles",
	Usage: "cycle budget; 0 removes the limit, so the run never ends",
	Value: 1_000_000,
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "run a ROM or binary until the cycle budget is spent and print final registers",
		ArgsUsage: "<rom-or-raw-binary>",
		Flags:     []cli.Flag{loadAddrFlag, cyclesFlag},
		Action: func(c *cli.Context) error {
			b, cp, err := loadTarget(c)
			if err != nil {
				return err
			}

			budget := c.Uint64("cycles")
			var spent uint64
			for budget == 0 || spent < budget {
				spent += uint64(cp.Step(b))
			}

			fmt.Printf("A=%02X X=%02X Y=%02X SP=%02X P=%02X PC=%04X (%d cycles)\n",
				cp.A, cp.X, cp.Y, cp.SP, cp.P, cp.PC, spent)
			return nil
		},
	}
}

func disasmCommand() *cli.Command {
	return &cli.Command{
		Name:      "disasm",
		Usage:     "disassemble starting at the reset vector (or --addr)",
		ArgsUsage: "<rom-or-raw-binary>",
		Flags: []cli.Flag{
			loadAddrFlag,
			&cli.Uint64Flag{Name: "count", Usage: "number of instructions to print", Value: 32},
		},
		Action: func(c *cli.Context) error {
			b, cp, err := loadTarget(c)
			if err != nil {
				return err
			}

			pc := cp.PC
			for i := uint64(0); i < c.Uint64("count"); i++ {
				line := disasm.Line(b, pc)
				fmt.Println(line)
				_, _, raw := cpu.Disassemble(b, pc)
				pc += uint16(len(raw))
			}
			return nil
		},
	}
}

func debugCommand() *cli.Command {
	return &cli.Command{
		Name:      "debug",
		Usage:     "step through a ROM or binary in an interactive TUI",
		ArgsUsage: "<rom-or-raw-binary>",
		Flags:     []cli.Flag{loadAddrFlag},
		Action: func(c *cli.Context) error {
			b, cp, err := loadTarget(c)
			if err != nil {
				return err
			}
			return debugger.Run(cp, b)
		},
	}
}

// loadTarget loads the ROM/binary named by the command's first argument
// and constructs a CPU over it. iNES images (".nes") go through
// inesrom+bus.NROM; anything else is treated as a raw binary loaded at
// --addr with the reset vector pointed at it.
func loadTarget(c *cli.Context) (cpu.Bus, *cpu.CPU, error) {
	path := c.Args().First()
	if path == "" {
		return nil, nil, cli.Exit("missing ROM/binary argument", 1)
	}

	if isINES(path) {
		rom, err := inesrom.Load(path)
		if err != nil {
			return nil, nil, fmt.Errorf("loading iNES ROM: %w", err)
		}
		cart := bus.NewNROM(rom.PRG())
		nb := bus.NewNESBus(cart)
		cp := cpu.New(nb)
		cp.SetIllegalOpcodeHook(logIllegalOpcode)
		return nb, cp, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading binary: %w", err)
	}
	ram := bus.NewRAM()
	addr := uint16(c.Uint64("addr"))
	ram.Load(addr, data)
	ram.SetResetVector(addr)
	cp := cpu.New(ram)
	cp.SetIllegalOpcodeHook(logIllegalOpcode)
	return ram, cp, nil
}

func logIllegalOpcode(pc uint16, opcode uint8) {
	log.Printf("illegal opcode %02X at %04X; executing as NOP", opcode, pc)
}

func isINES(path string) bool {
	return len(path) >= 4 && path[len(path)-4:] == ".nes"
}
