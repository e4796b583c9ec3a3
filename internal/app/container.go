// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"os"

	"github.com/runoshun/quadrant/internal/domain"
	"github.com/runoshun/quadrant/internal/infra/config"
	"github.com/runoshun/quadrant/internal/infra/httpstore"
	"github.com/runoshun/quadrant/internal/infra/logging"
	"github.com/runoshun/quadrant/internal/usecase"
)

// Config holds the application paths and build info.
type Config struct {
	WorkDir  string // Directory searched for .quadrant.toml
	StateDir string // Directory holding logs, empty disables logging
	Version  string // Build version, sent in the User-Agent header
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store         domain.TaskStore
	Goals         domain.GoalStore
	Reports       domain.ReportSource
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Pointer fields
	AppConfig *domain.Config
	logger    *logging.Logger

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
// A config file that fails to parse is an error; missing files are not.
func New(dir, version string) (*Container, error) {
	cfg := Config{
		WorkDir:  dir,
		StateDir: logging.DefaultStateDir(),
		Version:  version,
	}

	configLoader := config.NewLoader(cfg.WorkDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg.StateDir, logging.ParseLevel(appConfig.Log.Level))

	c := &Container{
		Clock:         domain.RealClock{},
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(cfg.WorkDir),
		Logger:        logger,
		AppConfig:     appConfig,
		logger:        logger,
		Config:        cfg,
	}
	c.UseServer(appConfig.Store.BaseURL)
	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// store must also implement domain.GoalStore and domain.ReportSource to back
// the goal and report use cases; otherwise those ports stay nil.
func NewWithDeps(cfg Config, appConfig *domain.Config, store domain.TaskStore, clock domain.Clock, logger domain.Logger) *Container {
	c := &Container{
		Store:     store,
		Clock:     clock,
		Logger:    logger,
		AppConfig: appConfig,
		Config:    cfg,
	}
	if goals, ok := store.(domain.GoalStore); ok {
		c.Goals = goals
	}
	if reports, ok := store.(domain.ReportSource); ok {
		c.Reports = reports
	}
	return c
}

// UseServer points the store ports at a server.
func (c *Container) UseServer(baseURL string) {
	if baseURL == "" {
		baseURL = domain.DefaultBaseURL
	}
	c.AppConfig.Store.BaseURL = baseURL
	client := httpstore.New(baseURL, c.AppConfig.Store.RequestTimeout(),
		httpstore.WithLogger(c.Logger),
		httpstore.WithUserAgent("quadrant/"+c.Config.Version),
	)
	c.Store = client
	c.Goals = client
	c.Reports = client
	c.Logger.Debug("", "app", "store: "+baseURL)
}

// Close releases the log file.
func (c *Container) Close() error {
	if c.logger == nil {
		return nil
	}
	return c.logger.Close()
}

// WorkDir returns the working directory, falling back to the process's.
func (c *Container) WorkDir() string {
	if c.Config.WorkDir != "" {
		return c.Config.WorkDir
	}
	dir, _ := os.Getwd()
	return dir
}

// UseCase factory methods

// LoadBoardUseCase returns a new LoadBoard use case.
func (c *Container) LoadBoardUseCase() *usecase.LoadBoard {
	return usecase.NewLoadBoard(c.Store, c.Logger)
}

// DispatchActionUseCase returns a new DispatchAction use case.
func (c *Container) DispatchActionUseCase() *usecase.DispatchAction {
	return usecase.NewDispatchAction(c.Store, c.Logger)
}

// DropTaskUseCase returns a new DropTask use case.
func (c *Container) DropTaskUseCase() *usecase.DropTask {
	return usecase.NewDropTask(c.Store, c.Logger)
}

// CreateTasksUseCase returns a new CreateTasks use case.
func (c *Container) CreateTasksUseCase() *usecase.CreateTasks {
	return usecase.NewCreateTasks(c.Store, c.Logger)
}

// EditGoalUseCase returns a new EditGoal use case.
func (c *Container) EditGoalUseCase() *usecase.EditGoal {
	return usecase.NewEditGoal(c.Goals, c.Store, c.Logger)
}

// FetchReportUseCase returns a new FetchReport use case.
func (c *Container) FetchReportUseCase() *usecase.FetchReport {
	return usecase.NewFetchReport(c.Reports)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}
