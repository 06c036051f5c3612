// Package harness runs every strategy of every problem over a set of
// scenarios, cross-checks each answer against the problem's reference
// strategy, and records timings.
package harness

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	randomdata "github.com/Pallinder/go-randomdata"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/twopointers/container"
	"github.com/katalvlaran/twopointers/internal/config"
)

// ErrUnknownProblem is returned for a scenario naming an unsupported problem.
var ErrUnknownProblem = errors.New("harness: unknown problem")

// Problem names one of the supported problems.
type Problem string

const (
	Triplets   Problem = "triplets"
	PairSum    Problem = "pairsum"
	TwoSum     Problem = "twosum"
	Container  Problem = "container"
	Palindrome Problem = "palindrome"
)

// Problems lists every supported problem in a stable order.
var Problems = []Problem{Triplets, PairSum, TwoSum, Container, Palindrome}

// Scenario is one input for one problem.
//
// Values holds the integers for triplets, pairsum and twosum, and the wall
// heights for container. Target applies to pairsum and twosum; triplets
// always look for a zero sum. Text applies to palindrome.
type Scenario struct {
	Name    string  `yaml:"name"`
	Problem Problem `yaml:"problem"`
	Values  []int   `yaml:"values,omitempty"`
	Target  int     `yaml:"target,omitempty"`
	Text    string  `yaml:"text,omitempty"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios decodes a YAML document of the form
//
//	scenarios:
//	  - name: classic
//	    problem: triplets
//	    values: [-1, 0, 1, 2, -1, -4]
//
// and rejects unknown problems and container heights that fail
// container.Validate.
func LoadScenarios(r io.Reader) ([]Scenario, error) {
	var f scenarioFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("harness: decode scenarios: %w", err)
	}
	for i, s := range f.Scenarios {
		if _, ok := registry[s.Problem]; !ok {
			return nil, fmt.Errorf("%w: %q in scenario %d (%s)", ErrUnknownProblem, s.Problem, i, s.Name)
		}
		if s.Problem == Container {
			if err := container.Validate(s.Values); err != nil {
				return nil, fmt.Errorf("harness: scenario %d (%s): %w", i, s.Name, err)
			}
		}
		if s.Name == "" {
			f.Scenarios[i].Name = fmt.Sprintf("%s-%d", s.Problem, i)
		}
	}

	return f.Scenarios, nil
}

// LoadScenarioFile opens path and calls LoadScenarios.
func LoadScenarioFile(path string) ([]Scenario, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("harness: %w", err)
	}
	defer fh.Close()

	return LoadScenarios(fh)
}

// RandomScenarios generates cfg.Count scenarios cycling through Problems.
// Integers are drawn from [cfg.Min, cfg.Max); container heights use their
// absolute values and targets are drawn from twice that range. Palindrome
// texts alternate between mirrored names and random sentences.
func RandomScenarios(cfg config.RandomConfig) []Scenario {
	scenarios := make([]Scenario, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		p := Problems[i%len(Problems)]
		s := Scenario{Name: fmt.Sprintf("random-%s-%d", p, i), Problem: p}
		switch p {
		case Palindrome:
			s.Text = randomPhrase(i%2 == 0)
		default:
			s.Values = make([]int, cfg.Size)
			for k := range s.Values {
				v := randomdata.Number(cfg.Min, cfg.Max)
				if p == Container && v < 0 {
					v = -v
				}
				s.Values[k] = v
			}
			s.Target = randomdata.Number(2*cfg.Min, 2*cfg.Max)
		}
		scenarios = append(scenarios, s)
	}

	return scenarios
}

func randomPhrase(mirrored bool) string {
	if !mirrored {
		return randomdata.Paragraph()
	}
	name := randomdata.SillyName()
	r := []rune(strings.ToLower(name))
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}

	return name + ", " + string(r) + "!"
}
