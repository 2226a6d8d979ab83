package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jacquemi-bbp/NeuroTS/internal/adapter"
	"github.com/jacquemi-bbp/NeuroTS/internal/controller"
	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
)

const defaultNeuronName = "neuron"

// ViewFormat selects how View renders a record.
type ViewFormat string

// View formats.
const (
	FormatSummary ViewFormat = "summary"
	FormatSWC     ViewFormat = "swc"
	FormatJSON    ViewFormat = "json"
)

// GrowArgs are the inputs of a growth run. The same seed always grows the
// same neuron.
type GrowArgs struct {
	Params        m.Path
	Distributions m.Path
	Name          string
	Seed          int64
	Diametrize    bool
	Store         adapter.StoreConfig
}

// ListArgs are the inputs of List.
type ListArgs struct {
	Store adapter.StoreConfig
}

// ViewArgs are the inputs of View. Output receives the swc and json
// renditions.
type ViewArgs struct {
	Store  adapter.StoreConfig
	ID     string
	Format ViewFormat
	Output io.Writer
}

// Workflow defines the operations exposed by the command line.
type Workflow interface {
	Grow(ctx context.Context, args GrowArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	loader    adapter.InputLoader
	openStore adapter.StoreOpener
	ui        controller.UI
	logger    *slog.Logger
	now       func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(loader adapter.InputLoader, openStore adapter.StoreOpener, ui controller.UI, logger *slog.Logger) Workflow {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &workflow{
		loader:    loader,
		openStore: openStore,
		ui:        ui,
		logger:    logger,
		now:       time.Now,
	}
}

func (w *workflow) Grow(ctx context.Context, args GrowArgs) error {
	params, err := w.loader.LoadParameters(args.Params)
	if err != nil {
		return fmt.Errorf("load parameters: %w", err)
	}

	distr, err := w.loader.LoadDistributions(args.Distributions)
	if err != nil {
		return fmt.Errorf("load distributions: %w", err)
	}

	if _, err := NewNeuronGrower(params, distr); err != nil {
		return err
	}

	store, err := w.openStore(args.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer w.closeStore(store)

	name := args.Name
	if name == "" {
		name = defaultNeuronName
	}

	if err := w.ui.Start(); err != nil {
		return err
	}

	w.ui.DisplayRunInfo(name, args.Seed)
	w.logger.Info("growth started", "neuron", name, "seed", args.Seed)

	result := controller.GrowthResult{Summary: m.GrowthSummary{Name: name, Seed: args.Seed}}

	record, err := w.synthesize(ctx, name, args, params, distr, store)
	if err != nil {
		result.Err = err
		w.logger.Error("growth failed", "neuron", name, "error", err)
	} else {
		result.Record = record.Info()
		result.Summary = m.Summarize(name, args.Seed, record.Morphology)
	}

	w.ui.DisplayResult(result)
	w.ui.Close()
	w.ui.Wait()

	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return nil
}

func (w *workflow) synthesize(
	ctx context.Context,
	name string,
	args GrowArgs,
	params m.InputParameters,
	distr m.InputDistributions,
	store adapter.MorphologyStore,
) (m.MorphologyRecord, error) {
	if err := ctx.Err(); err != nil {
		return m.MorphologyRecord{}, err
	}

	logger := w.logger.With("neuron", name)

	grower, err := NewNeuronGrower(params, distr,
		WithSeed(args.Seed),
		WithLogger(logger),
		WithObserver(func(p m.GrowthProgress) {
			w.ui.DisplayProgress(name, p)
		}),
	)
	if err != nil {
		return m.MorphologyRecord{}, err
	}

	morph, err := grower.Grow()
	if err != nil {
		return m.MorphologyRecord{}, err
	}

	if args.Diametrize {
		if err := grower.Diametrize(); err != nil {
			return m.MorphologyRecord{}, err
		}
	}

	record := m.MorphologyRecord{
		Name:       name,
		Seed:       args.Seed,
		CreatedAt:  w.now().UTC(),
		Morphology: morph,
	}

	if record.ID, err = store.Save(ctx, record); err != nil {
		return m.MorphologyRecord{}, fmt.Errorf("save: %w", err)
	}

	logger.Info("morphology saved", "id", record.ID, "sections", len(morph.Sections))

	return record, nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	store, err := w.openStore(args.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer w.closeStore(store)

	records, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("list records: %w", err)
	}

	return w.ui.DisplayRecords(records)
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	store, err := w.openStore(args.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer w.closeStore(store)

	record, err := store.Load(ctx, args.ID)
	if err != nil {
		return err
	}

	switch args.Format {
	case "", FormatSummary:
		return w.ui.DisplayMorphology(record.Info(), m.Summarize(record.Name, record.Seed, record.Morphology))
	case FormatSWC:
		return adapter.EncodeSWC(args.Output, record.Name, record.Morphology)
	case FormatJSON:
		encoder := json.NewEncoder(args.Output)
		encoder.SetIndent("", "  ")

		return encoder.Encode(record)
	default:
		return fmt.Errorf("%w: unknown view format %q", ErrConfiguration, args.Format)
	}
}

func (w *workflow) closeStore(store adapter.MorphologyStore) {
	if err := store.Close(); err != nil {
		w.logger.Warn("closing store", "error", err)
	}
}
