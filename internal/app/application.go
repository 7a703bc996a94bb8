package app

import (
	"sync/atomic"

	"hades-save-manager/internal/config"
	"hades-save-manager/internal/controllers"
	"hades-save-manager/internal/gui"
	"hades-save-manager/internal/logger"
	"hades-save-manager/internal/models"
	"hades-save-manager/internal/paths"
	"hades-save-manager/internal/services"
	"hades-save-manager/internal/shutdown"
	"hades-save-manager/internal/watch"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName      = "Hades II Save Manager"
	AppID        = "io.github.hadessavemanager"
	AppVersion   = "1.0.0"
	WindowWidth  = 600
	WindowHeight = 400
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     logger.Logger
	guiManager *gui.Manager
	controller *controllers.MainController
	watcher    *watch.DirWatcher
	shutdown   *shutdown.Manager
	stopped    atomic.Bool
}

func NewApplication(cfg config.Config) (*Application, error) {
	appLogger := logger.New(cfg.LogLevel, cfg.JSONLogs)
	return newApplication(app.NewWithID(AppID), cfg, paths.SystemEnv(), appLogger)
}

func newApplication(fyneApp fyne.App, cfg config.Config, env paths.Env, log logger.Logger) (*Application, error) {
	fyneApp.Settings().SetTheme(gui.NewTheme())

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	location := models.NewLocations(paths.DefaultSaveDir(env, cfg.SaveDir))

	log.Info("Application", "starting application", map[string]interface{}{
		"version":    AppVersion,
		"save_dir":   location.SaveDir,
		"backup_dir": location.BackupDir,
		"log_level":  cfg.LogLevel.String(),
	})

	shutdownMgr := shutdown.NewManager(log)
	service := services.NewSaveService(log)
	controller := controllers.NewMainController(shutdownMgr.Context(), service, log, location)
	guiManager := gui.NewManager(fyneApp, window, log)

	a := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		guiManager: guiManager,
		controller: controller,
		shutdown:   shutdownMgr,
	}

	watcher, err := watch.NewDirWatcher(log, func() {
		fyne.Do(controller.RefreshSummary)
	})
	if err != nil {
		// the summary still refreshes after every action
		log.Warning("Application", "folder watcher unavailable", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		a.watcher = watcher
	}

	a.setupHandlers()
	a.registerShutdown()

	log.Info("Application", "initialization complete", nil)
	return a, nil
}

func (a *Application) setupHandlers() {
	a.guiManager.SetBrowseHandler(a.controller.SelectFolder)
	a.guiManager.SetBackupHandler(a.controller.Backup)
	a.guiManager.SetRestoreHandler(a.controller.Restore)

	a.window.SetMainMenu(gui.NewMainMenu(gui.MenuActions{
		SelectFolder:     a.controller.SelectFolder,
		Backup:           a.controller.Backup,
		Restore:          a.controller.Restore,
		OpenBackupFolder: a.controller.OpenBackupFolder,
		Quit:             a.fyneApp.Quit,
	}))

	if a.watcher != nil {
		a.controller.AddEventListener(controllers.EventFolderChanged, func(data interface{}) error {
			return a.watcher.Retarget(data.(models.Locations))
		})
		if err := a.watcher.Retarget(a.controller.Locations()); err != nil {
			a.logger.Warning("Application", "cannot watch save folder", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	a.controller.SetView(a.guiManager)
	a.window.SetContent(a.guiManager.GetMainContainer())
}

func (a *Application) registerShutdown() {
	a.shutdown.Register("fyne", shutdown.Func(func() {
		if a.stopped.Load() {
			return
		}
		fyne.Do(a.fyneApp.Quit)
	}))
	if a.watcher != nil {
		a.shutdown.Register("watcher", a.watcher)
	}
}

// Run shows the window and blocks until it is closed
func (a *Application) Run() error {
	a.shutdown.Listen()

	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.stopped.Store(true)
	a.shutdown.Shutdown()
	return nil
}

// Shutdown stops background work and quits the event loop
func (a *Application) Shutdown() {
	a.shutdown.Shutdown()
}
