package main

import (
	"context"
	"os"

	"github.com/rotisserie/eris"
	"github.com/sjc5/stylebuild"
	"github.com/sjc5/stylebuild/internal/cli"
)

func main() {
	logger := stylebuild.NewConsoleLogger("stylebuild", os.Stderr, false)

	config := stylebuild.DefaultConfig()
	config.Logger = logger
	builder := stylebuild.New(config)

	compileSass := func(ctx context.Context) error {
		written, err := builder.Build(ctx)
		logger.Infof("wrote %d stylesheet(s) to %s", len(written), config.DestDir)
		return err
	}

	tasks := cli.TaskList{
		"compileSass": {
			Short: "Compile, minify and write the SCSS sources",
			Run:   compileSass,
		},
		cli.DefaultTaskName: {
			Short: "Same as compileSass",
			Run:   compileSass,
		},
	}

	if err := cli.NewRootCmd(tasks).ExecuteContext(context.Background()); err != nil {
		logger.Errorf("%s", eris.ToString(err, false))
		os.Exit(1)
	}
}
