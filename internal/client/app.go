package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/MKhiriev/go-dataset-loader/internal/config"
	"github.com/MKhiriev/go-dataset-loader/internal/logger"
	"github.com/MKhiriev/go-dataset-loader/internal/server"
	"github.com/MKhiriev/go-dataset-loader/internal/service"
)

type command func(ctx context.Context, args []string) error

type App struct {
	services *service.Services
	server   server.Server
	cfg      *config.StructuredConfig

	in  io.Reader
	out io.Writer

	logger *logger.Logger
}

// NewApp creates the command runner. srv may be nil when no metrics address
// is configured; serve then runs the flush job alone. Input "-" is read from
// in and summaries are written to out.
func NewApp(services *service.Services, srv server.Server, cfg *config.StructuredConfig, in io.Reader, out io.Writer, logger *logger.Logger) *App {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	return &App{
		services: services,
		server:   srv,
		cfg:      cfg,
		in:       in,
		out:      out,
		logger:   logger,
	}
}

// Run dispatches the first positional argument to its command.
func (a *App) Run(ctx context.Context) error {
	if len(a.cfg.Args) == 0 {
		return fmt.Errorf("%w, expected one of: %s", ErrMissingCommand, strings.Join(a.commandNames(), ", "))
	}

	name, args := a.cfg.Args[0], a.cfg.Args[1:]
	cmd, ok := a.commands()[name]
	if !ok {
		return fmt.Errorf("%w %q, expected one of: %s", ErrUnknownCommand, name, strings.Join(a.commandNames(), ", "))
	}

	a.logger.Debug().Str("command", name).Strs("args", args).Msg("running command")
	return cmd(ctx, args)
}

func (a *App) commands() map[string]command {
	return map[string]command{
		"upload":  a.upload,
		"stage":   a.stage,
		"flush":   a.flush,
		"serve":   a.serve,
		"delete":  a.delete,
		"stats":   a.stats,
		"ensure":  a.ensure,
		"requeue": a.requeue,
		"purge":   a.purge,
	}
}

func (a *App) commandNames() []string {
	names := make([]string, 0, len(a.commands()))
	for name := range a.commands() {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var _ Client = (*App)(nil)
