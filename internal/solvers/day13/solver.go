// Package day13 solves Distress Signal: ordering nested list packets.
package day13

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
	"github.com/puzzlekit/aoc-cli/internal/grids"
)

// packet is either an integer or a list of packets.
type packet struct {
	num    int
	list   []packet
	isList bool
}

// Ensure Solver implements the interface.
var _ driven.Solver = (*Solver)(nil)

// Solver solves day 13.
type Solver struct{}

// New creates the day 13 solver.
func New() *Solver { return &Solver{} }

// Day returns the day number.
func (s *Solver) Day() int { return 13 }

// Title returns the puzzle title.
func (s *Solver) Title() string { return "Distress Signal" }

// Solve sums the indices of correctly ordered pairs, then sorts every
// packet together with the [[2]] and [[6]] dividers and multiplies the
// dividers' positions.
func (s *Solver) Solve(ctx context.Context, input string) (domain.Answers, error) {
	pairs, err := parsePairs(input)
	if err != nil {
		return domain.Answers{}, err
	}

	orderedSum := 0
	var packets []packet
	for i, pair := range pairs {
		if compare(pair[0], pair[1]) < 0 {
			orderedSum += i + 1
		}
		packets = append(packets, pair[0], pair[1])
	}

	divider2 := listOf(listOf(numberOf(2)))
	divider6 := listOf(listOf(numberOf(6)))
	packets = append(packets, divider2, divider6)
	sort.Slice(packets, func(i, j int) bool {
		return compare(packets[i], packets[j]) < 0
	})

	decoderKey := 1
	for i, p := range packets {
		if compare(p, divider2) == 0 || compare(p, divider6) == 0 {
			decoderKey *= i + 1
		}
	}

	return domain.Answers{
		Part1: strconv.Itoa(orderedSum),
		Part2: strconv.Itoa(decoderKey),
	}, nil
}

func numberOf(n int) packet { return packet{num: n} }

func listOf(ps ...packet) packet { return packet{list: ps, isList: true} }

// compare returns a negative value when left sorts before right, zero
// when equal. A bare integer compared against a list is promoted to a
// one-element list.
func compare(left, right packet) int {
	switch {
	case !left.isList && !right.isList:
		return left.num - right.num
	case !left.isList:
		return compare(listOf(left), right)
	case !right.isList:
		return compare(left, listOf(right))
	}

	for i := 0; i < len(left.list) && i < len(right.list); i++ {
		if c := compare(left.list[i], right.list[i]); c != 0 {
			return c
		}
	}
	return len(left.list) - len(right.list)
}

// parsePairs reads the blank-line separated packet pairs.
func parsePairs(input string) ([][2]packet, error) {
	var pairs [][2]packet
	for i, block := range grids.Blocks(input) {
		if len(block) != 2 {
			return nil, fmt.Errorf("%w: pair %d has %d lines", domain.ErrInvalidInput, i+1, len(block))
		}
		left, err := parsePacket(block[0])
		if err != nil {
			return nil, err
		}
		right, err := parsePacket(block[1])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, [2]packet{left, right})
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: no packet pairs", domain.ErrInvalidInput)
	}
	return pairs, nil
}

// parsePacket parses a single packet line such as "[1,[2,[3]],4]".
func parsePacket(line string) (packet, error) {
	p := &parser{input: line}
	result, err := p.value()
	if err != nil {
		return packet{}, err
	}
	if p.pos != len(p.input) {
		return packet{}, p.errorf("trailing data at offset %d", p.pos)
	}
	return result, nil
}

// parser is a recursive descent parser over a packet line.
type parser struct {
	input string
	pos   int
}

func (p *parser) errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: packet %q: %s", domain.ErrInvalidInput, p.input, msg)
}

func (p *parser) value() (packet, error) {
	if p.pos >= len(p.input) {
		return packet{}, p.errorf("unexpected end of packet")
	}
	if p.input[p.pos] == '[' {
		return p.listValue()
	}
	return p.numberValue()
}

func (p *parser) listValue() (packet, error) {
	p.pos++ // consume '['
	result := packet{isList: true}

	for {
		if p.pos >= len(p.input) {
			return packet{}, p.errorf("unterminated list")
		}
		if p.input[p.pos] == ']' {
			p.pos++
			return result, nil
		}
		if len(result.list) > 0 {
			if p.input[p.pos] != ',' {
				return packet{}, p.errorf("expected ',' at offset %d", p.pos)
			}
			p.pos++
		}
		element, err := p.value()
		if err != nil {
			return packet{}, err
		}
		result.list = append(result.list, element)
	}
}

func (p *parser) numberValue() (packet, error) {
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return packet{}, p.errorf("expected digit at offset %d", start)
	}
	n, err := strconv.Atoi(p.input[start:p.pos])
	if err != nil {
		return packet{}, p.errorf("number %q", p.input[start:p.pos])
	}
	return numberOf(n), nil
}
