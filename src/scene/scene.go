// Package scene reads a live scene through a narrow query interface and
// renders the bounded textual snapshot fed into model prompts.
package scene

// Vec3 is a three-component vector (location, scale, Euler rotation).
type Vec3 [3]float64

// Rotation carries either three Euler angles or, when the host stores the
// rotation in a representation that has no Euler form, just a marker.
type Rotation struct {
	Euler    Vec3
	NonEuler bool
}

// Transform is an object's placement at snapshot time.
type Transform struct {
	Location Vec3
	Rotation Rotation
	Scale    Vec3
}

// Object is one entry of the host's object collection. Transform may fail:
// host-side property access is allowed to error, and the snapshot reader
// skips such objects rather than aborting the whole summary.
type Object interface {
	Name() string
	Kind() string
	Transform() (Transform, error)
	// ActiveMaterial returns the active material name, or "" when the
	// object has none.
	ActiveMaterial() string
}

// Scene is read-only access to an ordered object collection. Implementations
// are only safe to call from the host's safe-mutation thread.
type Scene interface {
	Objects() []Object
}

// Object type tags used for statistics. Hosts may report further kinds;
// those count toward the total only.
const (
	KindMesh   = "MESH"
	KindLight  = "LIGHT"
	KindCamera = "CAMERA"
	KindEmpty  = "EMPTY"
)
