package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwantia/dumpargs"
	"github.com/mwantia/dumpargs/log"
	"github.com/mwantia/dumpargs/preset/backend"
	"github.com/mwantia/dumpargs/preset/backend/consul"
	"github.com/mwantia/dumpargs/preset/backend/ephemeral"
	"github.com/mwantia/dumpargs/preset/backend/local"
	"github.com/mwantia/dumpargs/preset/backend/postgres"
	"github.com/mwantia/dumpargs/preset/backend/s3"
	"github.com/mwantia/dumpargs/preset/backend/sqlite"
	"github.com/mwantia/dumpargs/profile"

	"github.com/mwantia/dumpargs/cli/tui"
)

type cli struct {
	Line string `arg:"" optional:"" help:"Command line to inspect; defaults to the profile built from the session flags"`

	LogFile  string `help:"Write logs to this file, the terminal is used by the inspector" default:"dumpargs.log" env:"DUMPARGS_LOG_FILE"`
	LogLevel string `help:"Log level (DEBUG, INFO, WARN, ERROR)" default:"INFO" env:"DUMPARGS_LOG_LEVEL"`

	Backend     string `help:"Preset backend" enum:"ephemeral,local,sqlite,postgres,s3,consul" default:"ephemeral" env:"DUMPARGS_BACKEND"`
	LocalPath   string `name:"local-path" help:"Directory of the local backend" default:"presets" env:"DUMPARGS_LOCAL_PATH"`
	SQLitePath  string `name:"sqlite-path" help:"Database file of the sqlite backend" default:"presets.db" env:"DUMPARGS_SQLITE_PATH"`
	PostgresDSN string `name:"postgres-dsn" help:"Connection string of the postgres backend" env:"DUMPARGS_POSTGRES_DSN"`
	S3Endpoint  string `name:"s3-endpoint" help:"Endpoint of the s3 backend" default:"localhost:9000" env:"DUMPARGS_S3_ENDPOINT"`
	S3Bucket    string `name:"s3-bucket" help:"Bucket of the s3 backend" default:"dumpargs" env:"DUMPARGS_S3_BUCKET"`
	S3AccessKey string `name:"s3-access-key" help:"Access key of the s3 backend" env:"DUMPARGS_S3_ACCESS_KEY"`
	S3SecretKey string `name:"s3-secret-key" help:"Secret key of the s3 backend" env:"DUMPARGS_S3_SECRET_KEY"`
	S3SSL       bool   `name:"s3-ssl" help:"Use TLS for the s3 backend" env:"DUMPARGS_S3_SSL"`
	ConsulAddr  string `name:"consul-address" help:"Address of the consul backend" default:"127.0.0.1:8500" env:"CONSUL_HTTP_ADDR"`
	ConsulToken string `name:"consul-token" help:"ACL token of the consul backend" env:"CONSUL_HTTP_TOKEN"`

	Drive   string `help:"Drive letter of the session" default:"D"`
	Output  string `help:"Output file of the session" default:"disc.bin"`
	Speed   *int   `help:"Drive speed of the session"`
	System  string `help:"Known system of the session" default:"ibm-pc"`
	Media   string `help:"Media type of the session" default:"cdrom"`
	Retries int    `help:"Additional read passes over bad sectors"`
	Debug   bool   `help:"Enable the global debug flag in the default profile"`
	Verbose bool   `help:"Enable the global verbose flag in the default profile"`
	Force   bool   `help:"Continue dumping on unrecoverable errors"`
	Private bool   `help:"Strip personal data from the output metadata"`
}

func main() {
	var params cli
	kctx := kong.Parse(&params,
		kong.Name("dumpargs"),
		kong.Description("Inspect, normalize and store disc imaging command lines."),
	)

	ctx := context.Background()
	if err := run(ctx, &params); err != nil {
		kctx.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, params *cli) error {
	level, err := log.ParseLevel(params.LogLevel)
	if err != nil {
		return err
	}

	logger := log.NewLogger("dumpargs", level, params.LogFile, true)

	presets, err := newPresetBackend(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to create preset backend: %w", err)
	}

	engine, err := dumpargs.New(ctx,
		dumpargs.WithLogger(logger),
		dumpargs.WithPresetBackend(presets),
	)
	if err != nil {
		return err
	}
	defer engine.Close(ctx)

	line := params.Line
	if line == "" {
		line, err = defaultLine(engine, params)
		if err != nil {
			return err
		}
	}

	model := tui.NewModel(ctx, engine, logger.Named("tui"), line)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

func newPresetBackend(ctx context.Context, params *cli) (backend.PresetBackend, error) {
	switch params.Backend {
	case "local":
		return local.NewLocalBackend(params.LocalPath), nil
	case "sqlite":
		return sqlite.NewSQLiteBackend(params.SQLitePath)
	case "postgres":
		return postgres.NewPostgresBackend(ctx, params.PostgresDSN)
	case "s3":
		return s3.NewS3Backend(&s3.S3BackendConfig{
			Endpoint:  params.S3Endpoint,
			Bucket:    params.S3Bucket,
			AccessKey: params.S3AccessKey,
			SecretKey: params.S3SecretKey,
			UseSSL:    params.S3SSL,
		})
	case "consul":
		return consul.NewConsulBackend(&consul.ConsulBackendConfig{
			Address: params.ConsulAddr,
			Token:   params.ConsulToken,
		})
	}

	return ephemeral.NewEphemeralBackend(), nil
}

// defaultLine builds the "media dump" line for the session described by the flags
func defaultLine(engine *dumpargs.Engine, params *cli) (string, error) {
	system, err := profile.ParseSystem(params.System)
	if err != nil {
		return "", err
	}

	mediaType, err := profile.ParseMediaType(params.Media)
	if err != nil {
		return "", err
	}

	drive := 'D'
	if params.Drive != "" {
		drive = rune(params.Drive[0])
	}

	options := &profile.Options{
		RereadCount:       params.Retries,
		EnableDebug:       params.Debug,
		EnableVerbose:     params.Verbose,
		ForceDumping:      params.Force,
		StripPersonalData: params.Private,
	}

	line, _, err := engine.Default(drive, params.Output, params.Speed, system, mediaType, options)
	return line, err
}
