package thumbnail

import (
	"context"

	"github.com/sirupsen/logrus"

	"ytthumb/internal/media"
)

// Resolver turns requests into loaded thumbnails.
type Resolver struct {
	loader Loader
	base   string
}

// NewResolver creates a resolver. An empty base selects DefaultBase.
func NewResolver(loader Loader, base string) *Resolver {
	if base == "" {
		base = DefaultBase
	}
	return &Resolver{loader: loader, base: base}
}

// Resolve loads the thumbnail for req. A time-indexed request that fails is
// retried exactly once without the sprite index. On Failed the returned
// error is a *media.LoadError; the Result is still non-nil.
func (r *Resolver) Resolve(ctx context.Context, req media.Request) (*media.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	seconds := req.Seconds()
	timed := UsesTime(req.Quality, seconds)
	log := logrus.WithFields(logrus.Fields{"id": req.ID, "quality": req.Quality})

	primary := URL(r.base, req.ID, req.Quality, seconds)
	log.WithField("url", primary).Debug("loading thumbnail")

	img, err := r.loader.Load(ctx, primary)
	if err == nil {
		used := 0
		if timed {
			used = seconds
		}
		return result(req, media.Primary, img, used), nil
	}
	if ctx.Err() != nil {
		return failed(req), ctx.Err()
	}
	log.WithError(err).Debug("primary load failed")

	if timed {
		plain := URL(r.base, req.ID, req.Quality, 0)
		log.WithField("url", plain).Debug("retrying without time offset")

		img, ferr := r.loader.Load(ctx, plain)
		if ferr == nil {
			return result(req, media.FallbackUsed, img, 0), nil
		}
		if ctx.Err() != nil {
			return failed(req), ctx.Err()
		}
		log.WithError(ferr).Debug("fallback load failed")
		err = ferr
	}

	return failed(req), &media.LoadError{Quality: req.Quality, Err: err}
}

func result(req media.Request, outcome media.Outcome, img media.Image, seconds int) *media.Result {
	return &media.Result{
		ID:      req.ID,
		Outcome: outcome,
		URL:     img.URL,
		Width:   img.Width,
		Height:  img.Height,
		Quality: req.Quality,
		Time:    seconds,
	}
}

func failed(req media.Request) *media.Result {
	return &media.Result{ID: req.ID, Outcome: media.Failed, Quality: req.Quality}
}
