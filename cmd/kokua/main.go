// Command kokua assembles court paperwork from scraped case records.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/kokua-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/kokua-cli/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/kokua-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/kokua-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/kokua-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kokua-cli/internal/core/services"
	"github.com/custodia-labs/kokua-cli/internal/logger"
	"github.com/custodia-labs/kokua-cli/internal/renderers/docx"
	"github.com/custodia-labs/kokua-cli/internal/renderers/pdfform"
)

// ephemeralEnv keeps records and run history in memory for the session.
const ephemeralEnv = "KOKUA_EPHEMERAL"

// logLevelEnv sets the log level; --verbose lowers it to debug.
const logLevelEnv = "KOKUA_LOG_LEVEL"

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

// run wires the application and returns the process exit code.
// Command errors are already printed by cobra.
func run() int {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn(".env not loaded: %v", err)
	}
	if name := os.Getenv(logLevelEnv); name != "" {
		level, err := logger.ParseLevel(name)
		if err != nil {
			logger.Warn("%s: %v", logLevelEnv, err)
		} else {
			logger.SetLevel(level)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	home, err := file.ResolveHome()
	if err != nil {
		return fail(fmt.Errorf("resolving kokua home: %w", err))
	}

	configStore, err := file.NewConfigStore(home)
	if err != nil {
		return fail(fmt.Errorf("opening config: %w", err))
	}
	settingsService := services.NewSettingsService(configStore)

	records, history, closeStore, err := openStores(home)
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	settings, err := settingsService.Get()
	if err != nil {
		return fail(fmt.Errorf("reading settings: %w", err))
	}
	templatesDir := settings.TemplatesDir
	if templatesDir == "" {
		templatesDir = filepath.Join(home, "templates")
	}
	logger.Debug("home=%s templates=%s output=%s", home, templatesDir, settings.OutputDir)

	catalog, err := services.NewDefaultCatalog()
	if err != nil {
		return fail(fmt.Errorf("building template catalog: %w", err))
	}

	templates := filesystem.NewTemplateSource(templatesDir)
	patcher := docx.New()
	forms := pdfform.New()

	recordService := services.NewRecordService(records)
	assembler := services.NewAssemblyService(catalog, templates, patcher, forms,
		filesystem.NewArtifactSink(settings.OutputDir))

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Records:   recordService,
		Settings:  settingsService,
		Generate:  services.NewGenerateService(recordService, settingsService, assembler, history),
		Templates: services.NewTemplateService(catalog, templates, patcher, forms),
		InboxDir:  filepath.Join(home, "inbox"),
	})

	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}

func fail(err error) int {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return 1
}

func openStores(home string) (driven.RecordStore, driven.RunHistory, func(), error) {
	if os.Getenv(ephemeralEnv) != "" {
		logger.Info("%s set: records and run history are not persisted", ephemeralEnv)
		return memory.NewRecordStore(), memory.NewRunHistory(), func() {}, nil
	}

	store, err := sqlite.NewStore(filepath.Join(home, "data"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening record store: %w", err)
	}
	logger.Debug("record store at %s", store.Path())
	return store.RecordStore(), store.RunHistory(), func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing record store: %v", err)
		}
	}, nil
}
