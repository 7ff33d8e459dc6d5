// Package bench runs the reset-and-reuse benchmark: many write cycles into
// one Writer, a single materialization, then many read cycles over it.
package bench

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/zeebo/blake3"

	"github.com/quickwritereader/bytebuffer/access"
	"github.com/quickwritereader/bytebuffer/compare"
	"github.com/quickwritereader/bytebuffer/config"
	"github.com/quickwritereader/bytebuffer/logging"
	"github.com/quickwritereader/bytebuffer/sample"
	"github.com/quickwritereader/bytebuffer/scheme"
)

var (
	// ErrUnstableOutput means a write cycle after Reset produced different bytes.
	ErrUnstableOutput = errors.New("bench: write cycle output differs after reset")
	// ErrMismatch means a decoded payload differs from the one written.
	ErrMismatch = errors.New("bench: decoded payload differs from input")
)

// Comparison is one codec timed on the same payload.
type Comparison struct {
	Name   string
	Size   int
	Encode time.Duration
	Decode time.Duration
}

type Report struct {
	Iterations int
	Pooled     bool
	// Size is the encoded payload length in bytes.
	Size int
	// Capacity is the writer's capacity after the last cycle.
	Capacity int
	Write    time.Duration
	Read     time.Duration
	// Digest is the blake3 hash shared by every write cycle.
	Digest  string
	Decoded sample.Payload
	Compare []Comparison
}

// PerWrite is the mean duration of one write cycle.
func (r *Report) PerWrite() time.Duration { return r.Write / time.Duration(r.Iterations) }

// PerRead is the mean duration of one read cycle.
func (r *Report) PerRead() time.Duration { return r.Read / time.Duration(r.Iterations) }

// Run executes the harness with cfg. ctx is checked between cycles.
func Run(ctx context.Context, cfg config.Config, log logging.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.Nop{}
	}
	payload := sample.Example()

	var w *access.Writer
	if cfg.Pooled {
		w = access.NewWriterFromPool(cfg.InitialCapacity)
		defer w.Release()
	} else {
		w = access.NewWriter(cfg.InitialCapacity)
	}

	rep := &Report{Iterations: cfg.Iterations, Pooled: cfg.Pooled}
	log.Info("write cycles starting", logging.Fields{
		"iterations": cfg.Iterations,
		"capacity":   w.Cap(),
		"pooled":     cfg.Pooled,
	})

	var digest [32]byte
	for i := 0; i < cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		w.Reset()
		payload.PackInto(w)
		rep.Write += time.Since(start)

		sum := blake3.Sum256(w.Bytes())
		if i == 0 {
			digest = sum
		} else if sum != digest {
			log.Error("write cycle diverged", logging.Fields{"cycle": i})
			return nil, fmt.Errorf("cycle %d: %w", i, ErrUnstableOutput)
		}
	}

	data := w.ToArray()
	rep.Size = len(data)
	rep.Capacity = w.Cap()
	rep.Digest = hex.EncodeToString(digest[:])
	log.Info("write cycles done", logging.Fields{
		"size":      rep.Size,
		"elapsed":   rep.Write.String(),
		"per_cycle": rep.PerWrite().String(),
		"digest":    rep.Digest,
	})

	if err := scheme.ValidateBuffer(data, sample.Layout().SchemeChain); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	r := access.NewReader(data)
	for i := 0; i < cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		r.Reset()
		var got sample.Payload
		err := got.UnpackFrom(r)
		rep.Read += time.Since(start)
		if err != nil {
			log.Error("read cycle failed", logging.Fields{"cycle": i, "error": err.Error()})
			return nil, fmt.Errorf("read cycle %d: %w", i, err)
		}
		if i == cfg.Iterations-1 {
			rep.Decoded = got
		}
	}
	if r.Remaining() != 0 {
		return nil, fmt.Errorf("read cycles left %d bytes unread", r.Remaining())
	}
	if !rep.Decoded.Equal(&payload) {
		return nil, ErrMismatch
	}
	log.Info("read cycles done", logging.Fields{
		"elapsed":   rep.Read.String(),
		"per_cycle": rep.PerRead().String(),
	})

	for _, name := range cfg.Compare {
		cmp, err := runCodec(ctx, name, payload, cfg.Iterations)
		if err != nil {
			return nil, err
		}
		log.Info("codec compared", logging.Fields{
			"codec":  cmp.Name,
			"size":   cmp.Size,
			"encode": cmp.Encode.String(),
			"decode": cmp.Decode.String(),
		})
		rep.Compare = append(rep.Compare, cmp)
	}
	return rep, nil
}

func runCodec(ctx context.Context, name string, payload sample.Payload, iterations int) (Comparison, error) {
	c, err := compare.New(name)
	if err != nil {
		return Comparison{}, err
	}
	cmp := Comparison{Name: name}

	var data []byte
	start := time.Now()
	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return Comparison{}, err
		}
		if data, err = c.Encode(payload); err != nil {
			return Comparison{}, fmt.Errorf("%s: encode: %w", name, err)
		}
	}
	cmp.Encode = time.Since(start)
	cmp.Size = len(data)

	var got sample.Payload
	start = time.Now()
	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return Comparison{}, err
		}
		if got, err = c.Decode(data); err != nil {
			return Comparison{}, fmt.Errorf("%s: decode: %w", name, err)
		}
	}
	cmp.Decode = time.Since(start)

	if !got.Equal(&payload) {
		return Comparison{}, fmt.Errorf("%s: %w", name, ErrMismatch)
	}
	return cmp, nil
}
