package boxid

import "go.uber.org/zap"

// Finder validates an identifier set and scans it for the near-duplicate pair.
type Finder struct {
	l *zap.Logger
}

// NewFinder returns a finder that logs each scanned position at debug level.
// A nil logger disables logging.
func NewFinder(l *zap.Logger) *Finder {
	if l == nil {
		l = zap.NewNop()
	}
	return &Finder{l: l}
}

// Find returns ErrEmptyInput or an error matching ErrInconsistentLength when
// ids fail validation, in which case no scan is performed. ErrNotFound is
// returned when no two identifiers differ in exactly one position.
func (f *Finder) Find(ids []string) (Result, error) {
	if err := Validate(ids); err != nil {
		return Result{}, err
	}

	f.l.Debug("scanning identifiers",
		zap.Int("count", len(ids)),
		zap.Int("length", Length(ids[0])))

	res, ok := findCommon(ids, func(pos int) {
		f.l.Debug("masking position", zap.Int("position", pos))
	})
	if !ok {
		return Result{}, ErrNotFound
	}

	f.l.Debug("found matching pair",
		zap.String("common", res.Common),
		zap.Int("position", res.Position),
		zap.String("first", ids[res.Pair[0]]),
		zap.String("second", ids[res.Pair[1]]))
	return res, nil
}
