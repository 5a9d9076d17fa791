// Package intcode runs programs for the add/multiply opcode machine.
package intcode

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	opAdd  = 1
	opMul  = 2
	opExit = 99
)

const (
	// DefaultTarget is the output searched for by SolvePart2 when none is given.
	DefaultTarget = 19690720

	maxNounVerb = 99
)

// ParseProgram reads a comma separated program spread over one or more lines.
func ParseProgram(lines []string) ([]int, error) {
	text := strings.TrimSpace(strings.Join(lines, ""))
	if text == "" {
		return nil, NewErrProgram("empty program")
	}

	cells := lo.Map(strings.Split(text, ","), func(cell string, _ int) string {
		return strings.TrimSpace(cell)
	})

	program := make([]int, 0, len(cells))
	for i, cell := range cells {
		v, err := strconv.Atoi(cell)
		if err != nil {
			return nil, fmt.Errorf("parse cell #%d: %w", i, err)
		}

		program = append(program, v)
	}

	return program, nil
}

type Computer struct {
	mem []int
}

// NewComputer returns a computer running a private copy of program.
func NewComputer(program []int) *Computer {
	return &Computer{
		mem: slices.Clone(program),
	}
}

func (c *Computer) load(addr int) (int, error) {
	if addr < 0 || addr >= len(c.mem) {
		return 0, ErrAccessViolation{Address: addr}
	}

	return c.mem[addr], nil
}

func (c *Computer) store(addr, v int) error {
	if addr < 0 || addr >= len(c.mem) {
		return ErrAccessViolation{Address: addr}
	}

	c.mem[addr] = v

	return nil
}

// loadIndirect returns the value stored at the address held in addr.
func (c *Computer) loadIndirect(addr int) (int, error) {
	ptr, err := c.load(addr)
	if err != nil {
		return 0, err
	}

	return c.load(ptr)
}

func (c *Computer) step(ip int) (next int, halted bool, err error) {
	op, err := c.load(ip)
	if err != nil {
		return 0, false, err
	}

	switch op {
	case opExit:
		return ip + 1, true, nil
	case opAdd, opMul:
	default:
		return 0, false, ErrInvalidOpcode{Opcode: op, Address: ip}
	}

	x, err := c.loadIndirect(ip + 1)
	if err != nil {
		return 0, false, err
	}

	y, err := c.loadIndirect(ip + 2)
	if err != nil {
		return 0, false, err
	}

	out, err := c.load(ip + 3)
	if err != nil {
		return 0, false, err
	}

	result := x + y
	if op == opMul {
		result = x * y
	}

	if err := c.store(out, result); err != nil {
		return 0, false, err
	}

	return ip + 4, false, nil
}

// Execute runs the program until it exits or runs off the end of memory and
// returns the value left at address 0.
func (c *Computer) Execute() (int, error) {
	for ip := 0; ip < len(c.mem); {
		next, halted, err := c.step(ip)
		if err != nil {
			return 0, err
		}

		if halted {
			break
		}

		ip = next
	}

	return c.load(0)
}

// Memory returns a copy of the computer's memory.
func (c *Computer) Memory() []int {
	return slices.Clone(c.mem)
}

func run(program []int, noun, verb int) (int, error) {
	c := NewComputer(program)

	if err := c.store(1, noun); err != nil {
		return 0, err
	}

	if err := c.store(2, verb); err != nil {
		return 0, err
	}

	return c.Execute()
}

// SolvePart1 runs program with noun 12 and verb 2.
func SolvePart1(program []int) (int, error) {
	return run(program, 12, 2)
}

// SolvePart2 finds the noun and verb in 0..99 for which program outputs target
// and returns 100*noun + verb.
func SolvePart2(ctx context.Context, program []int, target int) (int, error) {
	for noun := 0; noun <= maxNounVerb; noun++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		for verb := 0; verb <= maxNounVerb; verb++ {
			out, err := run(program, noun, verb)
			if err != nil {
				return 0, fmt.Errorf("run noun %d verb %d: %w", noun, verb, err)
			}

			if out == target {
				return 100*noun + verb, nil
			}
		}
	}

	return 0, ErrNoSolution{Target: target}
}
