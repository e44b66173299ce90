package debhelper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"sync"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/debbrush/internal/domain/entities"
)

const dhAssistantCommand = "dh_assistant"

// ErrIncompleteCompatLevels is returned when dh_assistant omits a level.
var ErrIncompleteCompatLevels = errors.New("dh_assistant output is missing a compat level")

// CommandRunner runs an external command and returns its standard output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// DhAssistant queries "dh_assistant supported-compat-levels" once per
// process and serves every later call from the first answer.
type DhAssistant struct {
	run    CommandRunner
	once   sync.Once
	levels entities.CompatLevels
	err    error
}

// NewDhAssistant runs the real dh_assistant.
func NewDhAssistant() *DhAssistant {
	return NewDhAssistantWithRunner(runCommand)
}

// NewDhAssistantWithRunner uses run in place of process execution.
func NewDhAssistantWithRunner(run CommandRunner) *DhAssistant {
	return &DhAssistant{run: run}
}

// SupportedCompatLevels returns the memoized compat levels.
func (it *DhAssistant) SupportedCompatLevels(ctx context.Context) (entities.CompatLevels, error) {
	it.once.Do(func() {
		it.levels, it.err = it.query(ctx)
	})
	return it.levels, it.err
}

type compatLevelsOutput struct {
	HighestStable             *int `json:"HIGHEST_STABLE_COMPAT_LEVEL"`
	LowestNonDeprecated       *int `json:"LOWEST_NON_DEPRECATED_COMPAT_LEVEL"`
	LowestVirtualDebhelper    *int `json:"LOWEST_VIRTUAL_DEBHELPER_COMPAT_LEVEL"`
	Max                       *int `json:"MAX_COMPAT_LEVEL"`
	Min                       *int `json:"MIN_COMPAT_LEVEL"`
	MinNotScheduledForRemoval *int `json:"MIN_COMPAT_LEVEL_NOT_SCHEDULED_FOR_REMOVAL"`
}

func (it *DhAssistant) query(ctx context.Context) (entities.CompatLevels, error) {
	logger.Debugf("[debhelper] Running %s supported-compat-levels", dhAssistantCommand)
	output, err := it.run(ctx, dhAssistantCommand, "supported-compat-levels")
	if err != nil {
		return entities.CompatLevels{}, fmt.Errorf("failed to run %s: %w", dhAssistantCommand, err)
	}

	var parsed compatLevelsOutput
	if unmarshalErr := json.Unmarshal(output, &parsed); unmarshalErr != nil {
		return entities.CompatLevels{}, fmt.Errorf("failed to parse %s output: %w", dhAssistantCommand, unmarshalErr)
	}
	fields := []*int{
		parsed.HighestStable, parsed.LowestNonDeprecated, parsed.LowestVirtualDebhelper,
		parsed.Max, parsed.Min, parsed.MinNotScheduledForRemoval,
	}
	for _, field := range fields {
		if field == nil {
			return entities.CompatLevels{}, ErrIncompleteCompatLevels
		}
	}

	return entities.CompatLevels{
		HighestStable:             *parsed.HighestStable,
		LowestNonDeprecated:       *parsed.LowestNonDeprecated,
		LowestVirtualDebhelper:    *parsed.LowestVirtualDebhelper,
		Max:                       *parsed.Max,
		Min:                       *parsed.Min,
		MinNotScheduledForRemoval: *parsed.MinNotScheduledForRemoval,
	}, nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}
