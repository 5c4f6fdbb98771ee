// Package statsd is a helper package that wraps some common statsd methods.
// It hides the datadog dependency so if we decide to migrate away from datadog
// in the future, we only need to edit this single file.
package statsd

import (
	"time"

	ddstatsd "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
)

var client ddstatsd.ClientInterface = &ddstatsd.NoOpClient{}

func Client() ddstatsd.ClientInterface {
	return client
}

// EmitCommandStat reports how long an undo-stack operation took.
func EmitCommandStat(start time.Time, op string) {
	duration := time.Since(start)
	err := Client().Timing("command", duration, []string{op}, 1)
	if err != nil {
		log.Logger.Warn().Msgf("failed to emit command stat: %v", err)
	}
}

// EmitGenerationStat reports the duration and size of a generation pass.
func EmitGenerationStat(start time.Time, tiles int) {
	duration := time.Since(start)
	if err := Client().Timing("generation", duration, nil, 1); err != nil {
		log.Logger.Warn().Msgf("failed to emit generation stat: %v", err)
	}
	if err := Client().Gauge("generation.tiles", float64(tiles), nil, 1); err != nil {
		log.Logger.Warn().Msgf("failed to emit generation stat: %v", err)
	}
}

func Init(address string, tags []string) error {
	if address == "" {
		return eris.New("address must not be empty")
	}
	opts := []ddstatsd.Option{
		// The statsd namespace is the prefix of all metrics
		ddstatsd.WithNamespace("hexforge"),
	}
	if len(tags) > 0 {
		opts = append(opts, ddstatsd.WithTags(tags))
	}

	newClient, err := ddstatsd.New(address, opts...)
	if err != nil {
		return err
	}
	// Success! replace the global client
	client = newClient
	return nil
}
