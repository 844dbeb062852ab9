package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"lintaccel/internal/adapters/cli"
	"lintaccel/internal/application"
	"lintaccel/internal/config"
	"lintaccel/internal/domain"
	"lintaccel/internal/domain/entities"
	"lintaccel/internal/infrastructure/env"
	"lintaccel/internal/infrastructure/i18n"
	"lintaccel/internal/infrastructure/po"
	"lintaccel/pkg/logger"
)

var version = "unknown"

func main() {
	cfg, err := config.Load(os.Args[1:], version)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(domain.SeverityHard.ExitCode())
	}
	if err := logger.Init(cfg.LogEnv); err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(domain.SeverityHard.ExitCode())
	}
	log := logger.Get()

	appFs := afero.NewOsFs()
	translator := i18n.NewTranslator(cfg.Locale, log)
	reporter := cli.NewReporter(os.Stdout, translator, cfg.Locale)
	policy := env.NewMissingPolicy(os.LookupEnv, reporter)
	reader := po.NewReader(appFs, entities.Watched(entities.ConflictPairs))
	checker := application.NewChecker(reader, policy, reporter, entities.ConflictPairs)
	linter := application.NewLinter(appFs, checker, reporter, log, cfg.Dir, cfg.Manifest)

	worst := linter.Run()
	_ = logger.Sync()
	os.Exit(worst.ExitCode())
}
