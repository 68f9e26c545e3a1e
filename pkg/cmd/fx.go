package cmd

import (
	"os"

	"github.com/pseudomuto/nodeseed/pkg/project"
	"go.uber.org/fx"
)

var Module = fx.Module("cli",
	fx.Provide(
		func() project.Runner {
			return &project.ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
		},
		fx.Annotate(bootstrapCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(devCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(newCmd, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
