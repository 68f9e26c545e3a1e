package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/nodeseed/pkg/ask"
	"github.com/pseudomuto/nodeseed/pkg/config"
	"github.com/pseudomuto/nodeseed/pkg/project"
	"github.com/pseudomuto/nodeseed/pkg/scaffold"
	"github.com/pseudomuto/nodeseed/pkg/utils"
	"github.com/urfave/cli/v3"
)

// newCmd returns a CLI command that scaffolds a new project.
//
// The command:
//  1. Collects the project name and database settings from flags, prompts or defaults
//  2. Plans package.json, tsconfig.json and .env from the answers
//  3. Copies the template into ./<name> and writes the planned documents over it
//  4. Installs production and development packages with the configured package manager
//
// Example usage:
//
//	# Answer every question interactively
//	nodeseed new
//
//	# Accept defaults for anything not given
//	nodeseed new my-shop --db-password secret --yes
//
//	# Preview the generated files without writing anything
//	nodeseed new my-shop --yes --dry-run
func newCmd(cfg *config.Config, runner project.Runner) *cli.Command {
	return &cli.Command{
		Name:      "new",
		Usage:     "Create a new project",
		ArgsUsage: "[NAME]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db-name", Usage: "database name (defaults to the project name with - replaced by _)"},
			&cli.StringFlag{Name: "db-user", Usage: "database user"},
			&cli.StringFlag{Name: "db-password", Usage: "database password"},
			&cli.StringFlag{Name: "db-host", Usage: "database host"},
			&cli.IntFlag{Name: "db-port", Usage: "database port"},
			&cli.StringFlag{Name: "template", Usage: "template directory to copy instead of the built-in template"},
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "accept defaults instead of prompting"},
			&cli.BoolFlag{Name: "skip-install", Usage: "do not install packages"},
			&cli.BoolFlag{Name: "dry-run", Usage: "print the generated files without writing anything"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out := writer(cmd)
			heading(out, "nodeseed: new project")

			answers, err := collectAnswers(cmd, cfg)
			if err != nil {
				return err
			}

			docs := scaffold.Plan(answers)

			templateDir := cfg.Template
			if cmd.IsSet("template") {
				templateDir = cmd.String("template")
			}

			tmpl, err := project.LoadTemplate(templateDir)
			if err != nil {
				return err
			}
			proj := project.New(tmpl)

			if cmd.Bool("dry-run") {
				return printPlan(cmd, proj, answers, docs)
			}

			step(out, "Creating %s", answers.ProjectName)
			if err := proj.Materialize(answers.ProjectName, docs); err != nil {
				return err
			}
			success(out, "Template copied and configuration generated")

			if cmd.Bool("skip-install") {
				warn(out, "Skipping package installation")
			} else {
				step(out, "Installing packages with %s", cfg.Packages.Manager)
				installer := project.NewInstaller(cfg.Packages.Manager, runner)
				if err := installer.Install(ctx, answers.ProjectName, cfg.Packages.Prod, cfg.Packages.Dev); err != nil {
					return err
				}
				success(out, "Packages installed")
			}

			success(out, "Project %q created", answers.ProjectName)
			hint(out, "\nQuick start:")
			hint(out, "  cd %s", answers.ProjectName)
			hint(out, "  npm run dev   # creates the database on first start")

			return nil
		},
	}
}

func collectAnswers(cmd *cli.Command, cfg *config.Config) (scaffold.ProjectAnswers, error) {
	var presets ask.Presets

	if name := cmd.Args().First(); name != "" {
		presets.ProjectName = utils.Ptr(name)
	}

	for flag, dest := range map[string]**string{
		"db-name":     &presets.DBName,
		"db-user":     &presets.DBUser,
		"db-password": &presets.DBPassword,
		"db-host":     &presets.DBHost,
	} {
		if cmd.IsSet(flag) {
			*dest = utils.Ptr(cmd.String(flag))
		}
	}

	if cmd.IsSet("db-port") {
		presets.DBPort = utils.Ptr(int(cmd.Int("db-port")))
	}

	var prompter ask.Prompter
	if !cmd.Bool("yes") {
		prompter = newPrompter(cmd)
	}

	answers, err := ask.NewCollector(prompter, cfg.Defaults, writer(cmd)).Collect(presets)
	if err != nil {
		return answers, errors.Wrap(err, "failed to collect project settings")
	}

	return answers, nil
}

func newPrompter(cmd *cli.Command) ask.Prompter {
	r := reader(cmd)
	if f, ok := r.(*os.File); ok {
		return ask.NewPrompter(f, writer(cmd))
	}

	return ask.NewLines(r, writer(cmd))
}

func printPlan(cmd *cli.Command, proj *project.Project, answers scaffold.ProjectAnswers, docs scaffold.Documents) error {
	out := writer(cmd)

	files, err := proj.Files(docs)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Would create %s/ with:\n", answers.ProjectName)
	for _, f := range files {
		fmt.Fprintf(out, "  %s\n", f)
	}

	for _, doc := range docs {
		fmt.Fprintf(out, "\n--- %s\n%s", doc.Path, doc.Content)
		if !strings.HasSuffix(string(doc.Content), "\n") {
			fmt.Fprintln(out)
		}
	}

	return nil
}
