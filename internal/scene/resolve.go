package scene

import (
	"go.uber.org/zap"
)

// Scene holds the two record tables of a scene file, keyed by file id, along
// with the order in which records were discovered.
type Scene struct {
	Objects        map[string]*GameObject
	ObjectOrder    []string
	Transforms     map[string]*Transform
	TransformOrder []string
}

// NewScene returns an empty Scene.
func NewScene() *Scene {
	return &Scene{
		Objects:    make(map[string]*GameObject),
		Transforms: make(map[string]*Transform),
	}
}

// AddObject stores o. A repeated id replaces the earlier record but keeps its
// original discovery position.
func (s *Scene) AddObject(o *GameObject) {
	if _, ok := s.Objects[o.ID]; !ok {
		s.ObjectOrder = append(s.ObjectOrder, o.ID)
	}
	s.Objects[o.ID] = o
}

// AddTransform stores t with the same replacement rule as AddObject.
func (s *Scene) AddTransform(t *Transform) {
	if _, ok := s.Transforms[t.ID]; !ok {
		s.TransformOrder = append(s.TransformOrder, t.ID)
	}
	s.Transforms[t.ID] = t
}

// Hierarchy is a Scene with its object-to-transform index and root list
// resolved. It is read-only once built.
type Hierarchy struct {
	scene             *Scene
	objectToTransform map[string]string
	roots             []string
	logger            *zap.Logger
}

// Resolve correlates the object and transform tables of s. Only WithLogger
// affects resolution; other options are ignored.
func Resolve(s *Scene, opts ...Option) *Hierarchy {
	return resolve(s, newOptions(opts).logger)
}

func resolve(s *Scene, logger *zap.Logger) *Hierarchy {
	h := &Hierarchy{
		scene:             s,
		objectToTransform: make(map[string]string, len(s.Transforms)),
		logger:            logger,
	}

	// Last transform wins when two claim the same object.
	for _, tid := range s.TransformOrder {
		t := s.Transforms[tid]
		if prev, ok := h.objectToTransform[t.GameObject]; ok && prev != tid {
			logger.Debug("duplicate object reference",
				zap.String("object", t.GameObject),
				zap.String("previous", prev),
				zap.String("transform", tid))
		}
		h.objectToTransform[t.GameObject] = tid
	}

	for _, oid := range s.ObjectOrder {
		tid, ok := h.objectToTransform[oid]
		if !ok {
			continue
		}
		if s.Transforms[tid].IsRoot() {
			h.roots = append(h.roots, oid)
		}
	}

	return h
}

// Scene returns the underlying record tables.
func (h *Hierarchy) Scene() *Scene {
	return h.scene
}

// Roots returns the ids of root objects in discovery order.
func (h *Hierarchy) Roots() []string {
	return h.roots
}

// Object returns the object with the given id.
func (h *Hierarchy) Object(id string) (*GameObject, bool) {
	o, ok := h.scene.Objects[id]
	return o, ok
}

// TransformOf returns the transform positioning the given object.
func (h *Hierarchy) TransformOf(objectID string) (*Transform, bool) {
	tid, ok := h.objectToTransform[objectID]
	if !ok {
		return nil, false
	}
	t, ok := h.scene.Transforms[tid]
	return t, ok
}
