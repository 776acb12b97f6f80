package draw

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var ErrNoWinningNumber = errors.New("no valid winning number")

// MaxAutoDrawnNumbers bounds the numbers drawn for a single ticket.
const MaxAutoDrawnNumbers = 100

// RNG returns a uniform random value in [0, n).
type RNG interface {
	Intn(n int) int
}

type Config struct {
	MaxNumber          int
	WinningNumbers     []int
	AutoDrawnNumbers   int
	WinningProbability int
}

func (c Config) Validate() error {
	if c.MaxNumber < 1 {
		return fmt.Errorf("max number must be at least 1, got %d", c.MaxNumber)
	}

	if c.AutoDrawnNumbers < 1 || c.AutoDrawnNumbers > MaxAutoDrawnNumbers {
		return fmt.Errorf("auto drawn numbers must be between 1 and %d, got %d",
			MaxAutoDrawnNumbers, c.AutoDrawnNumbers)
	}

	if c.WinningProbability < 0 || c.WinningProbability > 100 {
		return fmt.Errorf("winning probability must be between 0 and 100, got %d", c.WinningProbability)
	}

	return nil
}

type Result struct {
	DrawnNumbers      []int
	ProbabilityRoll   int
	PassesProbability bool
	HasWinningNumber  bool
	IsWinner          bool
}

// Draw draws the numbers of one ticket. The config must be valid.
func Draw(cfg Config, rng RNG) Result {
	result := Result{DrawnNumbers: make([]int, 0, cfg.AutoDrawnNumbers)}
	for i := 0; i < cfg.AutoDrawnNumbers; i++ {
		result.DrawnNumbers = append(result.DrawnNumbers, rng.Intn(cfg.MaxNumber)+1)
	}

	winning := make(map[int]struct{}, len(cfg.WinningNumbers))
	for _, n := range cfg.WinningNumbers {
		winning[n] = struct{}{}
	}

	for _, n := range result.DrawnNumbers {
		if _, ok := winning[n]; ok {
			result.HasWinningNumber = true
			break
		}
	}

	// A probability of 0 never wins, whatever the roll.
	if cfg.WinningProbability == 0 {
		return result
	}

	result.ProbabilityRoll = rng.Intn(100) + 1
	result.PassesProbability = result.ProbabilityRoll <= cfg.WinningProbability
	result.IsWinner = result.PassesProbability && result.HasWinningNumber
	return result
}

// SelectPrize picks one of prizes uniformly. It returns false if prizes is
// empty.
func SelectPrize[T any](rng RNG, prizes []T) (T, bool) {
	var zero T
	if len(prizes) == 0 {
		return zero, false
	}

	return prizes[rng.Intn(len(prizes))], true
}

// ParseWinningNumbers parses a comma separated list. Entries which are not
// integers in [1, max] are dropped and duplicates collapse. The result is
// sorted.
func ParseWinningNumbers(s string, max int) ([]int, error) {
	seen := map[int]struct{}{}
	result := []int{}
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 || n > max {
			continue
		}

		if _, ok := seen[n]; ok {
			continue
		}

		seen[n] = struct{}{}
		result = append(result, n)
	}

	if len(result) == 0 {
		return nil, ErrNoWinningNumber
	}

	sort.Ints(result)
	return result, nil
}

func FormatNumbers(numbers []int) string {
	parts := make([]string, 0, len(numbers))
	for _, n := range numbers {
		parts = append(parts, strconv.Itoa(n))
	}

	return strings.Join(parts, ",")
}

func ClampProbability(p int) int {
	if p < 0 {
		return 0
	}

	if p > 100 {
		return 100
	}

	return p
}
