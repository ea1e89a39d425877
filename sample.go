package aoc

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// A sample is written in the doc comment of a solver method:
//
//	/*
//	want=142
//
//	1abc2
//	pqr3stu8vwx
//	*/
//
// A method whose comment only has a want= line reuses the input of the
// previous sample in the file.
type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

func extractSamples(src []byte) (map[string]sample, error) {
	samples := make(map[string]sample)
	if len(src) == 0 {
		return samples, nil
	}
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "main.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// checkSample runs the current part against its sample, if it has one.
func (p *Puzzle) checkSample() error {
	want, ok := p.samples[p.solver.Name]
	if !ok {
		p.log.Info().Str("part", p.solver.Part).Msg("no sample")
		return nil
	}
	p.SampleMode = true
	defer func() { p.SampleMode = false }()
	got, err := p.solver.fn()
	if err != nil {
		return fmt.Errorf("part %s sample: %w", p.solver.Part, err)
	}
	if fmt.Sprint(got) != want.want {
		return fmt.Errorf("part %s sample: got %v; want %v", p.solver.Part, got, want.want)
	}
	p.log.Info().Str("part", p.solver.Part).Msgf("sample %v ok", got)
	return nil
}

// VerifySamples runs every part of slvr that has a sample in src and
// reports how many were checked. All mismatches are joined into err.
func VerifySamples(src []byte, slvr any) (checked int, err error) {
	samples, err := extractSamples(src)
	if err != nil {
		return 0, err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return 0, err
	}
	var errs []error
	for _, d := range days {
		p := &Puzzle{day: d, samples: samples, SampleMode: true, log: zerolog.Nop()}
		if err := bind(slvr, p); err != nil {
			return 0, err
		}
		for _, ps := range d.parts {
			if _, ok := samples[ps.Name]; !ok {
				continue
			}
			p.solver = ps
			checked++
			if err := p.checkSample(); err != nil {
				errs = append(errs, fmt.Errorf("day %d %w", d.day, err))
			}
		}
	}
	return checked, errors.Join(errs...)
}
