package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/tictactoe"
)

var ErrInvalidRounds = errors.New("arena rounds must be positive")

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Match    Match  `yaml:"match"`
	Arena    Arena  `yaml:"arena"`
}

type Match struct {
	HumanMark  string `yaml:"human-mark" env:"MATCH_HUMAN_MARK" env-default:"X"`
	First      string `yaml:"first" env:"MATCH_FIRST" env-default:"human"`
	Difficulty string `yaml:"difficulty" env:"MATCH_DIFFICULTY" env-default:"med"`
}

type Arena struct {
	Rounds         int    `yaml:"rounds" env:"ARENA_ROUNDS" env-default:"100"`
	SeatDifficulty string `yaml:"seat-difficulty" env:"ARENA_SEAT_DIFFICULTY" env-default:"hard"`
	FixedFirst     bool   `yaml:"fixed-first" env:"ARENA_FIXED_FIRST"`
	Seed           uint64 `yaml:"seed" env:"ARENA_SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// Validate reports every invalid setting at once.
func (that *Config) Validate() error {
	var errs []error

	if _, err := that.Match.GetHumanMark(); err != nil {
		errs = append(errs, fmt.Errorf("match.human-mark: %w", err))
	}

	if _, err := that.Match.GetStarter(); err != nil {
		errs = append(errs, fmt.Errorf("match.first: %w", err))
	}

	if _, err := that.Match.GetDifficulty(); err != nil {
		errs = append(errs, fmt.Errorf("match.difficulty: %w", err))
	}

	if _, err := that.Arena.GetSeatDifficulty(); err != nil {
		errs = append(errs, fmt.Errorf("arena.seat-difficulty: %w", err))
	}

	if that.Arena.Rounds <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidRounds, that.Arena.Rounds))
	}

	return errors.Join(errs...)
}

func (that *Match) GetHumanMark() (entity.Mark, error) {
	return entity.ParseMark(that.HumanMark)
}

// GetStarter accepts "human" or "computer".
func (that *Match) GetStarter() (tictactoe.Starter, error) {
	switch strings.ToLower(strings.TrimSpace(that.First)) {
	case "human":
		return tictactoe.HumanFirst, nil
	case "computer", "cpu":
		return tictactoe.ComputerFirst, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidStarter, that.First)
	}
}

func (that *Match) GetDifficulty() (entity.Difficulty, error) {
	return entity.ParseDifficulty(that.Difficulty)
}

func (that *Arena) GetSeatDifficulty() (entity.Difficulty, error) {
	return entity.ParseDifficulty(that.SeatDifficulty)
}
