// Package aoc is the shared driver for the puzzle binaries in this
// repository, plus the handful of utilities the solutions lean on.
//
// A puzzle binary declares a struct embedding *Puzzle with methods named
// D{day}p{part} and hands it to Run:
//
//	func main() {
//		aoc.Run(2020, source, &solver{})
//	}
//
//	//go:embed main.go
//	var source []byte
//
//	type solver struct {
//		*aoc.Puzzle
//	}
//
//	func (s solver) D7p1() (any, error) { ... }
package aoc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
)

// Part selects which of the two sub-problems of a puzzle runs.
type Part int

const (
	PartOne Part = 1
	PartTwo Part = 2
)

func (p Part) String() string {
	return strconv.Itoa(int(p))
}

// ParsePart selects the part from the command line arguments, not including
// the program name. Only "--part2" as the first argument selects part two;
// anything else, unknown flags included, runs part one.
func ParsePart(args []string) Part {
	if len(args) > 0 && args[0] == "--part2" {
		return PartTwo
	}
	return PartOne
}

// Puzzle is embedded by solvers and gives them access to their input.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	cfg     Config
	log     zerolog.Logger
	solver  partSolver
	samples map[string]sample
	input   []byte
}

func (p *Puzzle) Year() int { return p.year }
func (p *Puzzle) Day() int  { return p.day.day }

// InputPath is where the real input for this puzzle lives.
func (p *Puzzle) InputPath() string {
	return filepath.Join(p.cfg.InputDir, fmt.Sprintf("%d_%02d.txt", p.year, p.day.day))
}

// Input returns the puzzle input. In sample mode it is the sample from the
// running method's doc comment.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.samples[p.solver.Name].input)
	}
	return p.input
}

func (p *Puzzle) loadInput() error {
	b, err := os.ReadFile(p.InputPath())
	if err != nil {
		return err
	}
	p.input = b
	return nil
}

// Lines returns the input split into lines. Trailing newlines are ignored.
func (p *Puzzle) Lines() []string {
	return Lines(string(p.Input()))
}

// Records returns the input grouped into blank-line separated records.
func (p *Puzzle) Records() []Record {
	return Records(string(p.Input()))
}

// ForLinesY calls onLine for each line of input and stops at the first
// error, which is returned as a *LineError.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(y int, line string) error) error {
	for y, line := range p.Lines() {
		if err := onLine(y, line); err != nil {
			return AtLine(y+1, err)
		}
	}
	return nil
}

func (p *Puzzle) Debugf(format string, args ...any) {
	p.log.Debug().Msgf(format, args...)
}

// Lines splits s into lines. Trailing newlines are ignored.
func Lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Record is a run of consecutive non-blank lines.
type Record struct {
	Line  int // 1-based line number of Lines[0]
	Lines []string
}

// Records splits s into blank-line separated records.
func Records(s string) []Record {
	var out []Record
	inRecord := false
	for i, line := range Lines(s) {
		if strings.TrimSpace(line) == "" {
			inRecord = false
			continue
		}
		if !inRecord {
			out = append(out, Record{Line: i + 1})
			inRecord = true
		}
		r := &out[len(out)-1]
		r.Lines = append(r.Lines, line)
	}
	return out
}

// ParseLines parses every line with parse. The first failure stops parsing
// and is returned as a *LineError.
func ParseLines[T any](lines []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(lines))
	for i, line := range lines {
		v, err := parse(line)
		if err != nil {
			return nil, AtLine(i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}

type day struct {
	day   int
	parts []partSolver
}

func (d day) part(name string) (partSolver, bool) {
	for _, ps := range d.parts {
		if ps.Part == name {
			return ps, true
		}
	}
	return partSolver{}, false
}

type partSolver struct {
	fn   func() (any, error)
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+)$`)

// extractMethods finds the methods named D{day}p{part} on x, which must be a
// pointer to a struct. The methods must have the signature
// func() (any, error).
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want pointer to struct", x)
	}
	v = v.Elem()
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if matches == nil {
			continue
		}
		m, ok := v.Method(i).Interface().(func() (any, error))
		if !ok {
			return nil, fmt.Errorf("solver method %s: got %v; want func() (any, error)", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

// bind points the solver's embedded *Puzzle at p.
func bind(slvr any, p *Puzzle) error {
	f := reflect.ValueOf(slvr).Elem().FieldByName("Puzzle")
	if !f.IsValid() || f.Type() != reflect.TypeOf(p) {
		return fmt.Errorf("solver %T does not embed *aoc.Puzzle", slvr)
	}
	f.Set(reflect.ValueOf(p))
	return nil
}

// Run is the main function of a puzzle binary. It picks the part from the
// command line, solves it against input/<year>_<day>.txt and prints the
// answer. Any failure is logged on stderr and exits with status 1.
func Run(year int, src []byte, slvr any) {
	cfg, err := LoadConfig()
	logger := NewLogger(os.Stderr, cfg.Debug)
	if err != nil {
		logger.Error().Err(err).Msg("loading config")
		os.Exit(1)
	}
	os.Exit(run(cfg, logger, year, src, ParsePart(os.Args[1:]), os.Stdout, slvr))
}

func run(cfg Config, logger zerolog.Logger, year int, src []byte, part Part, stdout io.Writer, slvr any) int {
	got, err := solve(cfg, logger, year, src, part, slvr)
	if err != nil {
		logger.Error().Msg(err.Error())
		return 1
	}
	fmt.Fprintln(stdout, got)
	return 0
}

func solve(cfg Config, logger zerolog.Logger, year int, src []byte, part Part, slvr any) (any, error) {
	days, err := extractMethods(slvr)
	if err != nil {
		return nil, err
	}
	if len(days) != 1 {
		dayNums := maps.Keys(days)
		slices.Sort(dayNums)
		return nil, fmt.Errorf("solver must define exactly one day; found %v", dayNums)
	}
	var d day
	for _, v := range days {
		d = v
	}
	ps, ok := d.part(part.String())
	if !ok {
		return nil, fmt.Errorf("day %d has no part %v", d.day, part)
	}
	p := newPuzzle(cfg, logger, year, d)
	if err := bind(slvr, p); err != nil {
		return nil, err
	}
	p.solver = ps

	if cfg.CheckSamples {
		if p.samples, err = extractSamples(src); err != nil {
			return nil, err
		}
		if err := p.checkSample(); err != nil {
			return nil, err
		}
	}

	p.SampleMode = false
	if err := p.loadInput(); err != nil {
		return nil, err
	}
	t0 := time.Now()
	got, err := ps.fn()
	if err != nil {
		return nil, err
	}
	p.log.Debug().Dur("took", time.Since(t0).Round(time.Microsecond)).Msgf("answer %v", got)
	return got, nil
}

func newPuzzle(cfg Config, logger zerolog.Logger, year int, d day) *Puzzle {
	return &Puzzle{
		year: year,
		day:  d,
		cfg:  cfg,
		log:  logger.With().Int("year", year).Int("day", d.day).Logger(),
	}
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(&v).Elem().IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
