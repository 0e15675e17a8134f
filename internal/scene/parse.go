package scene

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

type options struct {
	extractor Extractor
	logger    *zap.Logger
}

// Option configures Parse and Resolve.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{extractor: LineExtractor{}, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithExtractor sets the field extraction strategy. The default is
// LineExtractor.
func WithExtractor(e Extractor) Option {
	return func(o *options) {
		if e != nil {
			o.extractor = e
		}
	}
}

// WithLogger sets the logger used for debug diagnostics about skipped
// records and references.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Parse runs the full pipeline over the contents of a scene file. Malformed
// input never fails; it only yields fewer objects.
func Parse(content string, opts ...Option) *Hierarchy {
	o := newOptions(opts)

	s := NewScene()
	for _, block := range SplitDocuments(content) {
		rec := o.extractor.Extract(block)
		switch {
		case rec.Object != nil:
			s.AddObject(rec.Object)
		case rec.Transform != nil:
			s.AddTransform(rec.Transform)
		case rec.Kind != KindUnknown:
			o.logger.Debug("dropping incomplete record",
				zap.Stringer("kind", rec.Kind),
				zap.String("header", headerLine(block)))
		}
	}

	h := Resolve(s, opts...)
	o.logger.Debug("scene resolved",
		zap.Int("objects", len(s.Objects)),
		zap.Int("transforms", len(s.Transforms)),
		zap.Int("roots", len(h.roots)))
	return h
}

// ParseFile reads and parses a scene file. The only error is a read failure.
func ParseFile(path string, opts ...Option) (*Hierarchy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data), opts...), nil
}

func headerLine(block string) string {
	header, _, _ := strings.Cut(block, "\n")
	return strings.TrimSpace(header)
}

// Stats counts the objects of the scene and measures its forest.
func (h *Hierarchy) Stats() Stats {
	st := Stats{
		Objects:    len(h.scene.Objects),
		Transforms: len(h.scene.Transforms),
		Roots:      len(h.roots),
	}
	for _, id := range h.scene.ObjectOrder {
		if h.scene.Objects[id].Active {
			st.Active++
		} else {
			st.Inactive++
		}
		if _, ok := h.objectToTransform[id]; !ok {
			st.Orphans++
		}
	}
	forest := h.Forest()
	for _, root := range forest {
		if d := root.Depth(); d > st.MaxDepth {
			st.MaxDepth = d
		}
	}
	st.Reachable = len(FlattenTree(forest))
	st.Leaves = len(GetLeafNodes(forest))
	return st
}
