package service

import (
	"bytes"
	"context"
	"errors"
	"os"
	"time"

	"github.com/spaolacci/murmur3"
	"golang.org/x/time/rate"

	"github.com/yndnr/makeboot-go/internal/core/domain"
	"github.com/yndnr/makeboot-go/internal/infra/filewatch"
)

// DefaultRebuildInterval is the minimum time between two rebuilds in watch mode.
const DefaultRebuildInterval = 200 * time.Millisecond

// BuildFunc receives the outcome of every rebuild in watch mode.
type BuildFunc func(*AssembleResult, error)

// WatchOptions configures Watch.
type WatchOptions struct {
	// Interval is the minimum time between rebuilds.
	Interval time.Duration
	// OnBuild is called after every attempted rebuild.
	OnBuild BuildFunc
}

// Watch assembles tokenFile into outputName, then reassembles it every time
// the file changes until ctx is cancelled. Rebuild failures are reported to
// OnBuild and logged; they do not stop the watch. Saves that leave the
// content unchanged are skipped.
func (a *Assembler) Watch(ctx context.Context, tokenFile, outputName string, opts WatchOptions) error {
	if opts.Interval <= 0 {
		opts.Interval = DefaultRebuildInterval
	}

	fw, err := filewatch.NewWatcher(filewatch.WithLogger(a.logger))
	if err != nil {
		return domain.ErrIO.WithDetails("watch " + tokenFile).WithCause(err)
	}
	defer fw.Stop()

	if err := fw.Watch(tokenFile); err != nil {
		return domain.ErrIO.WithDetails("watch " + tokenFile).WithCause(err)
	}

	changes := make(chan struct{}, 1)
	fw.OnChange(func(string) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	go fw.Run(ctx)

	r := &rebuilder{
		assembler:  a,
		tokenFile:  tokenFile,
		outputName: outputName,
		onBuild:    opts.OnBuild,
	}
	r.rebuild(ctx)

	limiter := rate.NewLimiter(rate.Every(opts.Interval), 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			if err := limiter.Wait(ctx); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
					return nil
				}
				return err
			}
			r.rebuild(ctx)
		}
	}
}

type rebuilder struct {
	assembler  *Assembler
	tokenFile  string
	outputName string
	onBuild    BuildFunc

	lastSum  uint64
	haveLast bool
}

func (r *rebuilder) rebuild(ctx context.Context) {
	log := r.assembler.logger.WithContext(ctx).With("file", r.tokenFile)

	data, err := os.ReadFile(r.tokenFile)
	if err != nil {
		// Editors may briefly remove the file while saving.
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("token file not present, waiting for next change")
			return
		}
		r.report(nil, domain.ErrIO.WithDetails("read "+r.tokenFile).WithCause(err))
		return
	}

	sum := murmur3.Sum64(data)
	if r.haveLast && sum == r.lastSum {
		log.Debug("token file unchanged, skipping rebuild")
		return
	}

	tokens, err := ReadTokens(bytes.NewReader(data))
	if err != nil {
		r.report(nil, err)
		return
	}

	result, err := r.assembler.Assemble(ctx, tokens, r.outputName)
	if err != nil {
		log.Warn("rebuild failed", "code", domain.GetErrorCode(err), "error", err)
	}
	// Write failures are retried on the next event even if the tokens
	// did not change.
	if !errors.Is(err, domain.ErrIO) {
		r.lastSum, r.haveLast = sum, true
	}
	r.report(result, err)
}

func (r *rebuilder) report(result *AssembleResult, err error) {
	if r.onBuild != nil {
		r.onBuild(result, err)
	}
}
