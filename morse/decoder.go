package morse

import (
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/strycore/dojo-20130708/matcher"
	"github.com/strycore/dojo-20130708/normalize"
	"github.com/strycore/dojo-20130708/recompose"
)

// Order selects how decoded segmentations are sorted.
type Order uint8

const (
	Lexical  Order = iota // byte order of the letters
	ByLength              // fewest letters first, then byte order
)

var orderNames = [...]string{
	Lexical:  "lexical",
	ByLength: "length",
}

func (o Order) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return fmt.Sprintf("Order(%d)", o)
}

// ParseOrder returns the Order named s ("lexical" or "length").
func ParseOrder(s string) (Order, error) {
	for i, name := range orderNames {
		if name == s {
			return Order(i), nil
		}
	}
	return Lexical, fmt.Errorf("morse: unknown order %q", s)
}

// Decoder decodes Morse streams. A Decoder is immutable after New and is
// safe for concurrent use.
type Decoder struct {
	log       *zap.Logger
	limit     int
	order     Order
	normalize bool
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger for debug events. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(d *Decoder) {
		if l != nil {
			d.log = l
		}
	}
}

// WithLimit caps the number of segmentations Decode and Prefixes may return.
// Exceeding the cap fails with recompose.ErrLimitExceeded. n <= 0 means no cap.
func WithLimit(n int) Option {
	return func(d *Decoder) { d.limit = n }
}

// WithOrder sets the order of returned segmentations.
func WithOrder(o Order) Option {
	return func(d *Decoder) { d.order = o }
}

// WithNormalize maps typographic dot and dash glyphs to '.' and '-' before
// validation.
func WithNormalize(on bool) Option {
	return func(d *Decoder) { d.normalize = on }
}

// New returns a Decoder with strict input, lexical order and no limit,
// modified by opts.
func New(opts ...Option) *Decoder {
	d := &Decoder{log: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Candidates validates s and returns its flattened candidate stream.
func (d *Decoder) Candidates(s string) (matcher.Stream, error) {
	s, err := d.prepare(s)
	if err != nil {
		return nil, err
	}
	return matcher.Match(s), nil
}

// Decode returns every segmentation that covers s exactly.
func (d *Decoder) Decode(s string) ([]recompose.Segmentation, error) {
	start := time.Now()
	s, err := d.prepare(s)
	if err != nil {
		return nil, err
	}
	c := matcher.Match(s)
	segs, err := recompose.RecomposeLimit(c, 0, d.limit)
	if err != nil {
		d.log.Debug("decode failed",
			zap.Int("symbols", len(s)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("morse: decode: %w", err)
	}
	d.sort(segs)
	d.log.Debug("decoded",
		zap.Int("symbols", len(s)),
		zap.Int("candidates", c.Letters()),
		zap.Int("segmentations", len(segs)),
		zap.Duration("took", time.Since(start)),
	)
	return segs, nil
}

// Prefixes returns every letter sequence that reads a leading part of s,
// including the complete decodings. The empty input has no prefixes.
func (d *Decoder) Prefixes(s string) ([]recompose.Segmentation, error) {
	s, err := d.prepare(s)
	if err != nil {
		return nil, err
	}
	c := matcher.Match(s)
	segs, err := recompose.PrefixesLimit(c, 0, d.limit)
	if err != nil {
		return nil, fmt.Errorf("morse: prefixes: %w", err)
	}
	d.sort(segs)
	d.log.Debug("prefixes",
		zap.Int("symbols", len(s)),
		zap.Int("segmentations", len(segs)),
	)
	return segs, nil
}

// Count returns the number of segmentations of s without enumerating them.
// The limit does not apply.
func (d *Decoder) Count(s string) (*big.Int, error) {
	s, err := d.prepare(s)
	if err != nil {
		return nil, err
	}
	n, err := recompose.Count(matcher.Match(s), 0)
	if err != nil {
		return nil, fmt.Errorf("morse: count: %w", err)
	}
	d.log.Debug("counted",
		zap.Int("symbols", len(s)),
		zap.String("segmentations", n.String()),
	)
	return n, nil
}

func (d *Decoder) prepare(s string) (string, error) {
	if d.normalize {
		s = normalize.Symbols(s)
	}
	if err := Validate(s); err != nil {
		d.log.Debug("rejected input", zap.Error(err))
		return "", err
	}
	return s, nil
}

func (d *Decoder) sort(segs []recompose.Segmentation) {
	switch d.order {
	case ByLength:
		recompose.SortByLength(segs)
	default:
		recompose.SortLexical(segs)
	}
}
