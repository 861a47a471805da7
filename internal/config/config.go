package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type Config struct {
	LogLevel   string        `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile    string        `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:"tictactoe.log"`
	Mode       string        `yaml:"mode" env:"TICTACTOE_MODE" env-default:"bot"`
	Difficulty string        `yaml:"difficulty" env:"TICTACTOE_DIFFICULTY" env-default:"optimal"`
	PlayerMark string        `yaml:"player-mark" env:"TICTACTOE_PLAYER_MARK"`
	ThinkDelay time.Duration `yaml:"think-delay" env:"TICTACTOE_THINK_DELAY" env-default:"600ms"`
	Seed       uint64        `yaml:"seed" env:"TICTACTOE_SEED"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads path when it exists and falls back to the environment otherwise.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Mode {
	case entity.ModeBot, entity.ModeLocal:
	default:
		return fmt.Errorf("%w: mode %q", apperror.ErrInvalidConfig, that.Mode)
	}

	if !that.GetDifficulty().IsValid() {
		return fmt.Errorf("%w: difficulty %q", apperror.ErrInvalidConfig, that.Difficulty)
	}

	if _, err := that.GetPlayerMark(); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidConfig, err)
	}

	if that.ThinkDelay < 0 {
		return fmt.Errorf("%w: negative think-delay %s", apperror.ErrInvalidConfig, that.ThinkDelay)
	}

	return nil
}

func (that *Config) GetDifficulty() entity.Difficulty {
	return entity.Difficulty(that.Difficulty)
}

// GetPlayerMark returns EmptyCell when the mark should be picked at random.
func (that *Config) GetPlayerMark() (entity.Mark, error) {
	if that.PlayerMark == "" {
		return entity.EmptyCell, nil
	}

	mark, err := entity.ParseMark(that.PlayerMark)
	if err != nil {
		return entity.EmptyCell, fmt.Errorf("player-mark: %w", err)
	}

	return mark, nil
}
