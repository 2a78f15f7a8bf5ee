package internal

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config carries everything the process reads from the environment.
// Countdown and period values are per-variant because the reference
// arenas stage at different tempos.
type Config struct {
	BufferSize        int           `env:"BUFFER_SIZE,required=true" validate:"gt=0"`
	GatewayBufferSize int           `env:"GATEWAY_BUFFER_SIZE,required=true" validate:"gt=0"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,required=true" validate:"gt=0"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	LogLevel          string        `env:"LOG_LEVEL,required=true" validate:"oneof=debug info warn error"`

	JuggerCountdown    time.Duration `env:"JUGGER_COUNTDOWN,default=20s" validate:"gt=0"`
	PaintballCountdown time.Duration `env:"PAINTBALL_COUNTDOWN,default=10s" validate:"gt=0"`
	RaceCountdown      time.Duration `env:"RACE_COUNTDOWN,default=20s" validate:"gt=0"`
	RocketPeriod       time.Duration `env:"ROCKET_PERIOD,default=2s" validate:"gt=0"`

	// Arenas is a comma-separated list of arena names to run engines
	// for, e.g. "jugger,smallpb,pirates".
	Arenas string `env:"ARENAS,required=true" validate:"required"`
}

func (c Config) Validate() error {
	return validator.New().Struct(c)
}

// ArenaList splits the configured arena names, dropping empties.
func (c Config) ArenaList() []string {
	var arenas []string
	for _, name := range strings.Split(c.Arenas, ",") {
		if name = strings.TrimSpace(name); name != "" {
			arenas = append(arenas, name)
		}
	}
	return arenas
}
