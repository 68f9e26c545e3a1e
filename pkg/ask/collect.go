package ask

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/pseudomuto/nodeseed/pkg/config"
	"github.com/pseudomuto/nodeseed/pkg/scaffold"
)

// Presets are answers supplied up front, typically from command line flags.
// A nil field is asked for.
type Presets struct {
	ProjectName *string
	DBName      *string
	DBUser      *string
	DBPassword  *string
	DBHost      *string
	DBPort      *int
}

// Collector gathers ProjectAnswers from presets, prompts and defaults.
type Collector struct {
	prompter Prompter
	defaults config.PromptDefaults
	out      io.Writer
}

// NewCollector returns a Collector. With a nil prompter nothing is asked:
// presets are used where given and defaults everywhere else, and an invalid
// answer is an error instead of a re-prompt.
func NewCollector(p Prompter, defaults config.PromptDefaults, out io.Writer) *Collector {
	if out == nil {
		out = io.Discard
	}

	return &Collector{prompter: p, defaults: defaults, out: out}
}

// Collect returns validated answers. Invalid project names and ports are
// asked again until a valid value is given or the prompter fails.
//
// Example:
//
//	c := ask.NewCollector(ask.NewPrompter(os.Stdin, os.Stdout), cfg.Defaults, os.Stdout)
//	answers, err := c.Collect(ask.Presets{ProjectName: utils.Ptr("my-shop")})
func (c *Collector) Collect(presets Presets) (scaffold.ProjectAnswers, error) {
	var (
		a   scaffold.ProjectAnswers
		err error
	)

	if a.ProjectName, err = c.askValid(
		Question{Label: "Project name", Default: c.defaults.ProjectName},
		presets.ProjectName,
		func(v string) (string, error) { return v, scaffold.ValidateProjectName(v) },
	); err != nil {
		return a, err
	}

	if a.DBName, err = c.askEnv("database name", Question{Label: "Database name", Default: scaffold.DefaultDBName(a.ProjectName)}, presets.DBName); err != nil {
		return a, err
	}

	if a.DBUser, err = c.askEnv("database user", Question{Label: "DB user", Default: c.defaults.DBUser}, presets.DBUser); err != nil {
		return a, err
	}

	if a.DBPassword, err = c.askEnv("database password", Question{Label: "DB password", Secret: true}, presets.DBPassword); err != nil {
		return a, err
	}

	if a.DBHost, err = c.askEnv("database host", Question{Label: "DB host", Default: c.defaults.DBHost}, presets.DBHost); err != nil {
		return a, err
	}

	var portPreset *string
	if presets.DBPort != nil {
		p := strconv.Itoa(*presets.DBPort)
		portPreset = &p
	}

	port, err := c.askValid(
		Question{Label: "DB port", Default: strconv.Itoa(c.defaults.DBPort)},
		portPreset,
		validatePort,
	)
	if err != nil {
		return a, err
	}
	a.DBPort, _ = strconv.Atoi(port)

	return scaffold.NewAnswers(a)
}

// askEnv resolves an answer that is written to the generated .env file.
func (c *Collector) askEnv(field string, q Question, preset *string) (string, error) {
	return c.askValid(q, preset, func(v string) (string, error) {
		return v, scaffold.ValidateEnvValue(field, v)
	})
}

// askValid resolves one answer. Presets are validated like typed answers; an
// invalid preset is reported and then asked for interactively.
func (c *Collector) askValid(q Question, preset *string, validate func(string) (string, error)) (string, error) {
	if preset != nil {
		v, err := validate(*preset)
		if err == nil {
			return v, nil
		}

		if c.prompter == nil {
			return "", err
		}
		c.reject(err)
	}

	if c.prompter == nil {
		return validate(q.Default)
	}

	for {
		answer, err := c.prompter.Ask(q)
		if err != nil {
			return "", err
		}

		if answer == "" {
			answer = q.Default
		}

		v, err := validate(answer)
		if err == nil {
			return v, nil
		}

		var ve *scaffold.ValidationError
		if !errors.As(err, &ve) {
			return "", err
		}
		c.reject(err)
	}
}

func (c *Collector) reject(err error) {
	_, _ = fmt.Fprintln(c.out, color.RedString("✗ %v", err))
}

func validatePort(v string) (string, error) {
	port, err := strconv.Atoi(v)
	if err != nil || port < 1 || port > 65535 {
		return "", &scaffold.ValidationError{
			Field:  "port",
			Value:  v,
			Reason: "must be a number between 1 and 65535",
		}
	}

	return strconv.Itoa(port), nil
}
