package toon

// EncodeOptions is the immutable snapshot of encode settings built from
// EncodeOption values. It is safe to share across goroutines.
type EncodeOptions struct {
	Indent       int
	Delimiter    byte
	KeyFolding   KeyFolding
	FlattenDepth int
	Canonical    bool
	Parallel     bool
}

// DefaultEncodeOptions returns the option set used when no EncodeOption is
// supplied: 2-space indent, comma delimiter, key folding off.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{
		Indent:       defaultIndent,
		Delimiter:    defaultDelimiter,
		KeyFolding:   KeyFoldingOff,
		FlattenDepth: 1<<31 - 1,
		Canonical:    false,
	}
}

// EncodeOption configures Marshal and its variants.
type EncodeOption func(*EncodeOptions)

// WithIndent sets the number of spaces per indentation level.
func WithIndent(n int) EncodeOption {
	return func(o *EncodeOptions) { o.Indent = n }
}

// WithDelimiter sets the default active delimiter (',', '\t', or '|').
func WithDelimiter(d byte) EncodeOption {
	return func(o *EncodeOptions) { o.Delimiter = d }
}

// WithKeyFolding enables or disables dotted-key collapsing, optionally
// bounding how many chained single-key segments may fold via depth.
func WithKeyFolding(mode KeyFolding, depth int) EncodeOption {
	return func(o *EncodeOptions) {
		o.KeyFolding = mode
		if depth > 0 {
			o.FlattenDepth = depth
		}
	}
}

// WithCanonical forces bytewise-sorted object keys at emit time, trading
// the spec's default encounter-order for a reproducible, diff-friendly
// ordering.
func WithCanonical(canonical bool) EncodeOption {
	return func(o *EncodeOptions) { o.Canonical = canonical }
}

// WithParallelEncode allows the emitter to farm out the rows of large
// tabular arrays to worker goroutines. Objects are always emitted on the
// calling goroutine. Output is byte-identical to the serial path.
func WithParallelEncode(enabled bool) EncodeOption {
	return func(o *EncodeOptions) { o.Parallel = enabled }
}

func buildEncodeOptions(opts []EncodeOption) EncodeOptions {
	o := DefaultEncodeOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// DecodeOptions is the immutable snapshot of decode settings built from
// DecodeOption values.
type DecodeOptions struct {
	Indent      int
	Strict      bool
	ExpandPaths ExpandPaths
	CoerceTypes bool
	Delimiter   byte
	Parallel    bool
	MaxDepth    int
}

// DefaultDecodeOptions returns the option set used when no DecodeOption is
// supplied: 2-space indent, strict mode on, path expansion off.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{
		Indent:      defaultIndent,
		Strict:      true,
		ExpandPaths: ExpandPathsOff,
		CoerceTypes: true,
		Delimiter:   defaultDelimiter,
		MaxDepth:    2000,
	}
}

// DecodeOption configures Unmarshal and its variants.
type DecodeOption func(*DecodeOptions)

// WithDecoderIndent sets the expected indent width.
func WithDecoderIndent(n int) DecodeOption {
	return func(o *DecodeOptions) { o.Indent = n }
}

// WithStrict toggles the strict-mode rejection filter (see §4.7 rules).
func WithStrict(strict bool) DecodeOption {
	return func(o *DecodeOptions) { o.Strict = strict }
}

// WithExpandPaths enables dotted-key path expansion during decode.
func WithExpandPaths(mode ExpandPaths) DecodeOption {
	return func(o *DecodeOptions) { o.ExpandPaths = mode }
}

// WithCoerceTypes records the CoerceTypes flag in DecodeOptions. The
// decoder does not read it: exponent-form numbers are accepted either way.
func WithCoerceTypes(coerce bool) DecodeOption {
	return func(o *DecodeOptions) { o.CoerceTypes = coerce }
}

// WithDecoderDelimiter records the expected default delimiter in
// DecodeOptions. It does not change how arrays are read: an array header
// with no delimiter marker inside its brackets is always read with ','.
func WithDecoderDelimiter(d byte) DecodeOption {
	return func(o *DecodeOptions) { o.Delimiter = d }
}

// WithParallelDecode records the Parallel flag in DecodeOptions. The
// decoder does not read it: parsing always runs on the calling goroutine.
func WithParallelDecode(enabled bool) DecodeOption {
	return func(o *DecodeOptions) { o.Parallel = enabled }
}

// WithMaxDepth bounds container nesting; exceeding it is a Structure error.
func WithMaxDepth(n int) DecodeOption {
	return func(o *DecodeOptions) { o.MaxDepth = n }
}

func buildDecodeOptions(opts []DecodeOption) DecodeOptions {
	o := DefaultDecodeOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
