package ncd

import (
	"fmt"
	"sync"

	"github.com/SweetiePi/bioncd-hackseq/internal/compress"
	"github.com/SweetiePi/bioncd-hackseq/internal/seqio"
	"github.com/SweetiePi/bioncd-hackseq/internal/transform"
	"golang.org/x/sync/singleflight"
)

// Options are the settings for a comparison. Two distances are only
// comparable if they were computed with the same Options.
type Options struct {
	// Algorithm to compress with
	Algorithm compress.Algorithm

	// Measure for turning compressed bytes into a size
	Measure compress.Measure

	// ReverseComplement sequences before compressing them
	ReverseComplement bool

	// BWT sequences before compressing them (after the reverse complement)
	BWT bool

	// SaveDir is where compressed sequences are written. Nothing is written if empty
	SaveDir string
}

// Comparison is the distance between two sources and the compressed sizes it came from.
type Comparison struct {
	X  compress.Result `json:"x"`
	Y  compress.Result `json:"y"`
	XY compress.Result `json:"xy"`
	YX compress.Result `json:"yx"`

	// NCD is the Normalized Compression Distance between X and Y
	NCD float64 `json:"ncd"`
}

// Sizer compresses sources and remembers their sizes, so a source that's
// compared many times is only compressed once. It's safe for concurrent use:
// callers asking for the same source at once share a single compression.
type Sizer struct {
	opts Options

	flight singleflight.Group

	mu           sync.Mutex
	cache        map[seqio.Source]compress.Result
	compressions int
}

// NewSizer returns a Sizer for the options.
func NewSizer(opts Options) *Sizer {
	if opts.Measure == "" {
		opts.Measure = compress.Stream
	}
	return &Sizer{
		opts:  opts,
		cache: make(map[seqio.Source]compress.Result),
	}
}

// Options returns the options the Sizer compresses with.
func (s *Sizer) Options() Options {
	return s.opts
}

// Size loads, transforms and compresses a source. Its compressed bytes are
// saved to the SaveDir if there is one.
func (s *Sizer) Size(src seqio.Source) (compress.Result, error) {
	if result, ok := s.cached(src); ok {
		return result, nil
	}

	v, err, _ := s.flight.Do(src.String(), func() (interface{}, error) {
		// another call may have finished between the miss and Do
		if result, ok := s.cached(src); ok {
			return result, nil
		}

		result, err := s.sizeOf(src)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.cache[src] = result
		s.compressions++
		s.mu.Unlock()
		return result, nil
	})
	if err != nil {
		return compress.Result{}, err
	}
	return v.(compress.Result), nil
}

// Compressions returns how many sources the Sizer has compressed.
func (s *Sizer) Compressions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.compressions
}

func (s *Sizer) cached(src seqio.Source) (compress.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result, ok := s.cache[src]
	return result, ok
}

// sizeOf runs a source through the loader, transforms and compressor
func (s *Sizer) sizeOf(src seqio.Source) (compress.Result, error) {
	seq, err := seqio.Load(src)
	if err != nil {
		return compress.Result{}, err
	}

	transformed, err := transform.Transform(seq, s.opts.ReverseComplement, s.opts.BWT)
	if err != nil {
		return compress.Result{}, fmt.Errorf("failed to transform %s: %w", src, err)
	}

	size, compressed, err := compress.CompressedSize(transformed, s.opts.Algorithm, s.opts.Measure)
	if err != nil {
		return compress.Result{}, err
	}

	result := compress.Result{
		Source:    src,
		Name:      src.Name(),
		Algorithm: s.opts.Algorithm,
		Size:      size,
	}
	if s.opts.SaveDir != "" {
		if result.Path, err = compress.Persist(compressed, s.opts.Algorithm, src, s.opts.SaveDir); err != nil {
			return compress.Result{}, err
		}
	}
	return result, nil
}

// Compare computes the NCD between the sequences in FASTA files x and y.
func (s *Sizer) Compare(x, y string) (*Comparison, error) {
	xy := seqio.Pair(x, y)

	c := &Comparison{}
	var err error
	if c.X, err = s.Size(seqio.Single(x)); err != nil {
		return nil, err
	}
	if c.Y, err = s.Size(seqio.Single(y)); err != nil {
		return nil, err
	}
	if c.XY, err = s.Size(xy); err != nil {
		return nil, err
	}
	if c.YX, err = s.Size(xy.Swap()); err != nil {
		return nil, err
	}

	if c.NCD, err = Distance(c.X.Size, c.Y.Size, c.XY.Size, c.YX.Size); err != nil {
		return nil, fmt.Errorf("failed to compare %s and %s: %w", x, y, err)
	}
	return c, nil
}

// Compare computes the NCD between the sequences in two FASTA files.
func Compare(x, y string, opts Options) (*Comparison, error) {
	return NewSizer(opts).Compare(x, y)
}
