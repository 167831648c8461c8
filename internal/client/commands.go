package client

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-dataset-loader/internal/workers"
	"github.com/MKhiriev/go-dataset-loader/models"
)

// stdinPath makes upload and stage read from standard input.
const stdinPath = "-"

func (a *App) upload(ctx context.Context, args []string) error {
	path, err := exactlyOne(args, "file")
	if err != nil {
		return err
	}
	ref, err := a.cfg.Target.Ref()
	if err != nil {
		return err
	}
	items, err := a.readItems(path)
	if err != nil {
		return err
	}

	result, err := a.services.DatasetService.Insert(ctx, ref, items)
	a.print(renderUploadResult("upload "+ref.String(), len(items), result))
	return err
}

func (a *App) stage(ctx context.Context, args []string) error {
	path, err := exactlyOne(args, "file")
	if err != nil {
		return err
	}
	ref, err := a.cfg.Target.Ref()
	if err != nil {
		return err
	}
	items, err := a.readItems(path)
	if err != nil {
		return err
	}

	staged, err := a.services.DatasetService.Stage(ctx, ref, items)
	if err != nil {
		return err
	}

	a.print(renderPage("stage "+ref.String(), []row{
		{"read", strconv.Itoa(len(items))},
		{"staged", strconv.Itoa(staged)},
		{"skipped", strconv.Itoa(len(items) - staged)},
	}))
	return nil
}

func (a *App) flush(ctx context.Context, args []string) error {
	if err := noArgs(args); err != nil {
		return err
	}

	result, err := a.services.DatasetService.Flush(ctx)
	a.print(renderUploadResult("flush", result.Items+result.Failed, result))
	return err
}

func (a *App) serve(ctx context.Context, args []string) error {
	if err := noArgs(args); err != nil {
		return err
	}

	runners := []workers.Worker{a.services.FlushJob}
	if a.server != nil {
		runners = append(runners, a.server)
	}

	a.logger.Info().
		Dur("flush_interval", a.cfg.Workers.FlushInterval).
		Str("metrics_address", a.cfg.Server.MetricsAddress).
		Msg("serving")

	return workers.NewWorkers(runners...).Run(ctx)
}

func (a *App) delete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: item id", ErrMissingArgument)
	}

	if err := a.services.DatasetService.DeleteItems(ctx, args); err != nil {
		return err
	}

	a.print(renderPage("delete", []row{{"deleted", strconv.Itoa(len(args))}}))
	return nil
}

func (a *App) stats(ctx context.Context, args []string) error {
	if err := noArgs(args); err != nil {
		return err
	}

	counts, err := a.services.DatasetService.Stats(ctx)
	if err != nil {
		return err
	}

	a.print(renderPage("staged items", []row{
		{string(models.StagedPending), strconv.Itoa(counts[models.StagedPending])},
		{string(models.StagedUploaded), strconv.Itoa(counts[models.StagedUploaded])},
		{string(models.StagedFailed), strconv.Itoa(counts[models.StagedFailed])},
	}))
	return nil
}

// ensure takes the dataset name from the target; any operands form the
// description.
func (a *App) ensure(ctx context.Context, args []string) error {
	dataset, err := a.services.DatasetService.EnsureDataset(ctx, a.cfg.Target.DatasetName, strings.Join(args, " "))
	if err != nil {
		return err
	}

	a.print(renderPage("dataset", []row{
		{"id", valueOrDash(dataset.ID)},
		{"name", dataset.Name},
		{"description", valueOrDash(dataset.Description)},
	}))
	return nil
}

func (a *App) requeue(ctx context.Context, args []string) error {
	if err := noArgs(args); err != nil {
		return err
	}

	n, err := a.services.DatasetService.Requeue(ctx)
	if err != nil {
		return err
	}

	a.print(renderPage("requeue", []row{{"requeued", strconv.FormatInt(n, 10)}}))
	return nil
}

func (a *App) purge(ctx context.Context, args []string) error {
	raw, err := exactlyOne(args, "age")
	if err != nil {
		return err
	}
	age, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAge, err)
	}

	n, err := a.services.DatasetService.Purge(ctx, age)
	if err != nil {
		return err
	}

	a.print(renderPage("purge", []row{
		{"older than", age.String()},
		{"purged", strconv.FormatInt(n, 10)},
	}))
	return nil
}

func (a *App) readItems(path string) ([]models.DatasetItem, error) {
	if path == stdinPath {
		return ReadItems(a.in)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening items file: %w", err)
	}
	defer f.Close()

	return ReadItems(f)
}

func (a *App) print(s string) {
	fmt.Fprintln(a.out, s)
}

func exactlyOne(args []string, name string) (string, error) {
	switch {
	case len(args) == 0:
		return "", fmt.Errorf("%w: %s", ErrMissingArgument, name)
	case len(args) > 1:
		return "", fmt.Errorf("%w: expected only %s", ErrTooManyArgs, name)
	}
	return args[0], nil
}

func noArgs(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %s", ErrTooManyArgs, strings.Join(args, " "))
	}
	return nil
}
