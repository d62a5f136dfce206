package scene

import (
	"fmt"
	"strings"
)

// maxDescribedObjects bounds the snapshot so prompts stay small on large
// scenes.
const maxDescribedObjects = 50

// EmptyDescription is returned when the scene holds no describable objects.
const EmptyDescription = "Scene is empty."

// Describe renders one line per object, at most maxDescribedObjects lines.
// Objects whose transform cannot be read are skipped; the summary is
// best-effort, not all-or-nothing.
func Describe(s Scene) string {
	objects := s.Objects()
	if len(objects) > maxDescribedObjects {
		objects = objects[:maxDescribedObjects]
	}

	var lines []string
	for _, obj := range objects {
		tf, err := obj.Transform()
		if err != nil {
			continue
		}

		rot := "Quaternion"
		if !tf.Rotation.NonEuler {
			rot = formatVec(tf.Rotation.Euler)
		}

		mat := obj.ActiveMaterial()
		if mat == "" {
			mat = "None"
		}

		lines = append(lines, fmt.Sprintf("- Name: %s | Type: %s | Loc: %s | Rot: %s | Scale: %s | Mat: %s",
			obj.Name(), obj.Kind(), formatVec(tf.Location), rot, formatVec(tf.Scale), mat))
	}

	if len(lines) == 0 {
		return EmptyDescription
	}
	return strings.Join(lines, "\n")
}

func formatVec(v Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v[0], v[1], v[2])
}

// Stats counts the scene's objects by type.
type Stats struct {
	Total   int
	Meshes  int
	Lights  int
	Cameras int
	Empties int
}

// Statistics counts every object in the scene, not just the described ones.
func Statistics(s Scene) Stats {
	var st Stats
	for _, obj := range s.Objects() {
		st.Total++
		switch obj.Kind() {
		case KindMesh:
			st.Meshes++
		case KindLight:
			st.Lights++
		case KindCamera:
			st.Cameras++
		case KindEmpty:
			st.Empties++
		}
	}
	return st
}

// Summary is the one-line form embedded in Q&A prompts.
func (st Stats) Summary() string {
	return fmt.Sprintf("Scene Statistics: %d total objects (%d meshes, %d lights, %d cameras)",
		st.Total, st.Meshes, st.Lights, st.Cameras)
}

// Report is the multi-line form shown by the scene-info action.
func (st Stats) Report() string {
	return fmt.Sprintf("Scene Statistics:\nTotal Objects: %d\nMeshes: %d\nLights: %d\nCameras: %d\nEmpties: %d",
		st.Total, st.Meshes, st.Lights, st.Cameras, st.Empties)
}
