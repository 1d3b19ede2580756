package recommend

import "errors"

var (
	ErrLoadingContext  = errors.New("failed to load recommendation context")
	ErrLoadingCatalog  = errors.New("failed to load recommendation catalog")
	ErrNoValidRankings = errors.New("ranker returned no valid entries")
)
