// Package cmd provides CLI commands for the nodeseed tool.
//
// This package implements the command-line interface for nodeseed: scaffolding
// new Express and TypeScript projects backed by MySQL, and making sure the
// database those projects need exists before they start.
//
// # Available Commands
//
//   - new: Create a project from the template, generate its configuration and install packages
//   - bootstrap: Create the project's database and tables if they do not exist
//   - dev: Run a disposable MySQL server for the project and bootstrap it
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. Commands are provided to
// the fx application in the "commands" group and mounted by Run.
//
// # Global Options
//
//   - --dir, -d: Specify project directory (defaults to current directory)
//   - --config, -c: Configuration file (defaults to nodeseed.yaml)
//   - --verbose: Enable debug logging
//
// # Example Usage
//
//	nodeseed new my-shop                  # Prompt for settings and create ./my-shop
//	nodeseed new my-shop -y --dry-run     # Print the generated files
//	nodeseed --dir my-shop bootstrap      # Ensure the database from my-shop/.env exists
//	nodeseed --dir my-shop dev            # Run MySQL in Docker for my-shop
package cmd
