package usecase

import (
	"time"

	"legaldata-srv/internal/catalogue"
	"legaldata-srv/internal/catalogue/repository"
	"legaldata-srv/pkg/coverage"
	"legaldata-srv/pkg/discord"
	"legaldata-srv/pkg/log"
)

const defaultOutputPath = "README.md"

// Config holds configuration for README generation.
type Config struct {
	OutputPath  string
	SnapshotTTL time.Duration
}

type implUseCase struct {
	coverage  coverage.ICoverage
	readme    repository.ReadmeRepository
	mirrors   []repository.ReadmeRepository
	snapshots repository.SnapshotRepository
	discord   discord.IDiscord
	l         log.Logger
	config    Config
	now       func() time.Time
	newRunID  func() string
}

// New creates a new catalogue UseCase implementation.
// snapshots and notifier may be nil; mirrors may be empty.
func New(
	coverageClient coverage.ICoverage,
	readme repository.ReadmeRepository,
	mirrors []repository.ReadmeRepository,
	snapshots repository.SnapshotRepository,
	notifier discord.IDiscord,
	l log.Logger,
	cfg Config,
) catalogue.UseCase {
	if cfg.OutputPath == "" {
		cfg.OutputPath = defaultOutputPath
	}

	return &implUseCase{
		coverage:  coverageClient,
		readme:    readme,
		mirrors:   mirrors,
		snapshots: snapshots,
		discord:   notifier,
		l:         l,
		config:    cfg,
		now:       time.Now,
		newRunID:  newRunID,
	}
}
