package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
)

func invalidate(ctx context.Context, cache domain.AgendaCache, dates ...string) {
	if cache == nil {
		return
	}
	cache.Invalidate(ctx, dates...)
}
