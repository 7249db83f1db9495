package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/gasupport/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path of the local database file (default from Config)
//	-e string   directory exports are written into (default from Config)
//
// os.Args is filtered through flagx.FilterArgs so only the flags handled
// here are parsed.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database file")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "directory exports are written into")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
