// Package problem generates multiple-choice arithmetic questions for the
// Math Champions levels.
package problem

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/math-champions/internal/config"
)

// Problem is one multiple-choice question.
type Problem struct {
	Level   int
	Op      config.Operation
	Left    int
	Right   int
	Answer  int
	Choices []int
}

// Display renders the question, e.g. "7 × 8 = ?".
func (p Problem) Display() string {
	return fmt.Sprintf("%d %s %d = ?", p.Left, p.Op, p.Right)
}

// IsCorrect reports whether the choice at index i is the answer.
func (p Problem) IsCorrect(i int) bool {
	return i >= 0 && i < len(p.Choices) && p.Choices[i] == p.Answer
}

// AnswerIndex returns the position of the answer among the choices.
func (p Problem) AnswerIndex() int {
	for i, c := range p.Choices {
		if c == p.Answer {
			return i
		}
	}
	return -1
}

// maxDistractorTries bounds the random search for wrong answers before
// falling back to answer+1, answer+2, ...
const maxDistractorTries = 40

// Generator builds problems from a level table. It is not safe for
// concurrent use; each session owns one.
type Generator struct {
	math config.MathConfig
	rng  *rand.Rand
}

// NewGenerator returns a generator seeded with seed.
func NewGenerator(cfg config.MathConfig, seed int64) *Generator {
	return &Generator{math: cfg, rng: rand.New(rand.NewSource(seed))}
}

// Generate returns a fresh problem for level. Levels below 1 are treated as 1.
func (g *Generator) Generate(level int) Problem {
	level = max(level, 1)
	lc := g.math.Level(level)

	ops := lc.Ops
	if len(ops) == 0 {
		ops = []config.Operation{config.OpAdd}
	}
	op := ops[g.rng.Intn(len(ops))]
	maxNum := max(lc.MaxNum, 1)

	p := Problem{Level: level, Op: op}
	switch op {
	case config.OpSub:
		p.Left = g.between(2, maxNum+1)
		p.Right = g.between(1, p.Left-1)
		p.Answer = p.Left - p.Right
	case config.OpMul:
		p.Left = g.between(1, maxNum)
		p.Right = g.between(1, maxNum)
		p.Answer = p.Left * p.Right
	case config.OpDiv:
		divMax := lc.DivisionMax()
		p.Right = g.between(1, divMax)
		p.Answer = g.between(1, divMax)
		p.Left = p.Right * p.Answer
	default:
		p.Op = config.OpAdd
		p.Left = g.between(1, maxNum)
		p.Right = g.between(1, maxNum)
		p.Answer = p.Left + p.Right
	}

	p.Choices = g.choices(p.Answer)
	return p
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// choices returns the answer plus distinct positive distractors near it, shuffled.
func (g *Generator) choices(answer int) []int {
	n := g.math.Choices
	if n < 3 {
		n = 4
	}

	seen := map[int]bool{answer: true}
	out := []int{answer}
	for try := 0; len(out) < n && try < maxDistractorTries; try++ {
		offset := g.rng.Intn(10) - 5
		if offset == 0 {
			offset = 1
		}
		c := answer + offset
		if c <= 0 || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	for k := 1; len(out) < n; k++ {
		if c := answer + k; !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	g.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
