package gapdash

import (
	"context"

	"github.com/mwiater/gapdash/internal/appconfig"
	"github.com/mwiater/gapdash/internal/dashboard"
	"github.com/mwiater/gapdash/internal/dataset"
)

// newFetcher is swapped out in tests.
var newFetcher = func() dataset.Fetcher {
	return dataset.NewSourceFetcher(nil)
}

func sourcesFor(cfg appconfig.Config) dashboard.Sources {
	return dashboard.Sources{
		Bagging:   cfg.BaggingSource(),
		NoBagging: cfg.NoBaggingSource(),
	}
}

// startView resolves the view flag for one-shot commands.
func startView(cfg appconfig.Config) (dashboard.View, error) {
	return dashboard.ParseView(cfg.View())
}

// loadState loads both datasets and returns a ready state on view.
func loadState(ctx context.Context, cfg appconfig.Config) (dashboard.State, error) {
	view, err := startView(cfg)
	if err != nil {
		return dashboard.State{}, err
	}
	st := dashboard.NewState(view)
	data, err := dashboard.Load(ctx, newFetcher(), sourcesFor(cfg))
	if err != nil {
		return st.Failed(st.Generation(), err), err
	}
	return st.Loaded(st.Generation(), data), nil
}
