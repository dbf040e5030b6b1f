package config

import (
	"flag"
	"os"
	"time"

	"fleetsync/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   local database path (default from Config)
//	-r string   AWS region
//	-b string   image bucket
//	-e string   AWS endpoint override
//	-t int      connectivity probe timeout in milliseconds
//
// Note: the function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-r", "-b", "-e", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "local database path")
	fs.StringVar(&cfg.AWSRegion, "r", cfg.AWSRegion, "AWS region")
	fs.StringVar(&cfg.ImageBucket, "b", cfg.ImageBucket, "image bucket")
	fs.StringVar(&cfg.AWSBaseEndpoint, "e", cfg.AWSBaseEndpoint, "AWS endpoint override")
	probeTimeout := fs.Int("t", int(cfg.ProbeTimeout.Milliseconds()), "probe timeout (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ProbeTimeout = time.Duration(*probeTimeout) * time.Millisecond
}
