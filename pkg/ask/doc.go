// Package ask collects the answers for a new project, from command line
// presets, interactive prompts or defaults.
//
// On a terminal questions are asked with go-prompt and passwords are read
// without echo. When stdin is a pipe, one answer is read per line so the CLI
// can be scripted:
//
//	printf 'my-shop\n\nroot\nsecret\n\n\n' | nodeseed new
//
// Invalid project names and ports are rejected with a message and asked
// again. Without a prompter (--yes) the first invalid value is an error.
package ask
