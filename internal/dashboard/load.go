package dashboard

import (
	"bytes"
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mwiater/gapdash/internal/aggregate"
	"github.com/mwiater/gapdash/internal/dataset"
	"github.com/mwiater/gapdash/internal/logging"
)

// Dataset is one loaded view: its task records, their per-cancer projection
// and any parse warnings.
type Dataset struct {
	Tasks    []dataset.TaskRecord
	Groups   []dataset.GroupedRecord
	Warnings []dataset.ParseWarning
}

// Data holds both loaded views.
type Data struct {
	Bagging   Dataset
	NoBagging Dataset
}

// For returns the dataset of v.
func (d Data) For(v View) Dataset {
	if v == ViewNoBagging {
		return d.NoBagging
	}
	return d.Bagging
}

// Load fetches both sources concurrently, then parses and aggregates them.
// Both must succeed; the first failure is returned and the other result is
// dropped.
func Load(ctx context.Context, fetcher dataset.Fetcher, src Sources) (Data, error) {
	var data Data
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ds, err := loadView(gctx, fetcher, ViewBagging, src.For(ViewBagging))
		data.Bagging = ds
		return err
	})
	g.Go(func() error {
		ds, err := loadView(gctx, fetcher, ViewNoBagging, src.For(ViewNoBagging))
		data.NoBagging = ds
		return err
	})
	if err := g.Wait(); err != nil {
		logging.LogError("Error loading data: %v", err)
		return Data{}, err
	}

	logging.LogEvent("Loaded %d bagging records and %d features records",
		len(data.Bagging.Tasks), len(data.NoBagging.Tasks))
	return data, nil
}

func loadView(ctx context.Context, fetcher dataset.Fetcher, v View, source string) (Dataset, error) {
	name := v.datasetName()
	logging.LogDebug("fetching %s data from %s", name, source)

	raw, err := fetcher.Fetch(ctx, source)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to load %s data: %w", name, err)
	}
	res, err := dataset.Parse(bytes.NewReader(raw), dataset.TaskSchema())
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to parse %s data: %w", name, err)
	}
	for _, w := range res.Warnings {
		logging.LogParseWarning(name, w)
	}
	return Dataset{
		Tasks:    res.Records,
		Groups:   aggregate.Aggregate(res.Records),
		Warnings: res.Warnings,
	}, nil
}
