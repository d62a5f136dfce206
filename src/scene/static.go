package scene

import "errors"

// StaticObject is an in-memory Object for tests and demos.
type StaticObject struct {
	ObjName  string
	ObjKind  string
	Loc      Vec3
	Rot      Rotation
	Size     Vec3
	Material string
	// Broken simulates a host-side property access failure.
	Broken bool
}

func (o StaticObject) Name() string { return o.ObjName }
func (o StaticObject) Kind() string { return o.ObjKind }

func (o StaticObject) Transform() (Transform, error) {
	if o.Broken {
		return Transform{}, errors.New("object properties unavailable")
	}
	return Transform{Location: o.Loc, Rotation: o.Rot, Scale: o.Size}, nil
}

func (o StaticObject) ActiveMaterial() string { return o.Material }

// Static is an in-memory Scene.
type Static struct {
	Items []Object
}

func (s *Static) Objects() []Object { return s.Items }

// Add appends an object and returns the scene for chaining.
func (s *Static) Add(obj Object) *Static {
	s.Items = append(s.Items, obj)
	return s
}

var (
	_ Scene  = (*Static)(nil)
	_ Object = StaticObject{}
)
