package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"strview"
	"strview/internal/config"
	"strview/internal/grep"
	"strview/pkg/json"

	"github.com/sirupsen/logrus"
)

var (
	pattern    = flag.String("e", "", "Pattern to search for (exact byte match)")
	configPath = flag.String("config", "", "Optional ini config file path")
	jsonOut    = flag.Bool("json", false, "Emit matches as JSON")
	countOnly  = flag.Bool("count", false, "Only print the total match count")
	trimSpace  = flag.Bool("trim", false, "Trim surrounding blanks before matching")
	debug      = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	// 设置日志级别
	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	applyFlags(cfg)

	if !*debug {
		if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
			logrus.SetLevel(level)
		}
	}

	if *pattern == "" || flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: svgrep -e <pattern> [flags] <file>...")
		os.Exit(2)
	}

	engine := grep.New(grep.Options{
		Pattern:   *pattern,
		TrimSpace: cfg.Search.TrimSpace,
		TrimSet:   cfg.Search.TrimSet,
		MaxLine:   cfg.Search.MaxLine,
	})

	var all []grep.Match
	for _, path := range flag.Args() {
		matches, err := engine.SearchFile(path)
		if err != nil {
			logrus.Errorf("Search failed for %s: %v", path, err)
			continue
		}
		all = append(all, matches...)
		logrus.Debugf("%s: %d matches", path, len(matches))
	}

	switch {
	case cfg.Output.CountOnly:
		fmt.Println(len(all))
	case cfg.Output.JSON:
		out, err := json.MarshalIndent(all, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode matches: %v", err)
		}
		os.Stdout.Write(out)
		fmt.Println()
	default:
		for _, m := range all {
			fmt.Printf("%s:%d:%d: %v\n", m.File, m.Line, m.Column, strview.S(m.Text))
		}
	}
}

// applyFlags 命令行开关覆盖配置文件
func applyFlags(cfg *config.Config) {
	if *trimSpace {
		cfg.Search.TrimSpace = true
	}
	if *jsonOut {
		cfg.Output.JSON = true
	}
	if *countOnly {
		cfg.Output.CountOnly = true
	}
}
