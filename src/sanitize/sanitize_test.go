package sanitize

import "testing"

const guardedSnippet = `obj = bpy.context.active_object
if obj and obj.type == 'MESH':
    if not obj.data.materials:
        mat = bpy.data.materials.new("Material")
        obj.data.materials.append(mat)
    else:
        mat = obj.data.materials[0]
    mat.use_nodes = True
    nodes = mat.node_tree.nodes
    bsdf = nodes.get("Principled BSDF")
    if not bsdf:
        bsdf = nodes.new("ShaderNodeBsdfPrincipled")
    if "Base Color" in bsdf.inputs:
        bsdf.inputs["Base Color"].default_value = (1, 0, 0, 1)`

func TestExtractFenceStylesYieldIdenticalCode(t *testing.T) {
	wrappers := []struct {
		name string
		open string
	}{
		{"python", "```python\n"},
		{"py", "```py\n"},
		{"bare", "```\n"},
	}

	want := ExtractAndValidate("```python\n" + guardedSnippet + "\n```")
	if want == "" {
		t.Fatalf("baseline snippet rejected")
	}

	for _, w := range wrappers {
		t.Run(w.name, func(t *testing.T) {
			raw := "Here you go:\n" + w.open + guardedSnippet + "\n```\nLet me know!"
			got := ExtractAndValidate(raw)
			if got != want {
				t.Fatalf("fence %s produced %q, want %q", w.name, got, want)
			}
		})
	}
}

func TestExtractUnfencedUsesAPIMarker(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"import marker", "import bpy\nbpy.ops.mesh.primitive_cube_add()", true},
		{"attribute marker", "bpy.context.scene.render.engine = 'CYCLES'", true},
		{"plain prose", "I cannot modify the scene for you.", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := Extract(tc.raw)
			if ok != tc.ok {
				t.Fatalf("Extract(%q) ok = %v, want %v", tc.raw, ok, tc.ok)
			}
		})
	}
}

func TestExtractAndValidateIdempotent(t *testing.T) {
	raw := "```python\n\timport bpy\n\tbpy.ops.object.select_all(action='DESELECT')\n```"
	first := ExtractAndValidate(raw)
	if first == "" {
		t.Fatalf("snippet rejected")
	}
	second := ExtractAndValidate(first)
	if second != first {
		t.Fatalf("not idempotent:\nfirst:  %q\nsecond: %q", first, second)
	}
}

func TestExtractAndValidateUniformlyIndentedBlock(t *testing.T) {
	// Every line carries the same margin, first line included. The margin
	// must come off all lines together or the block keeps a top-level
	// indent and fails the syntax check.
	raw := "```python\n\timport bpy\n\tif True:\n\t\tbpy.ops.mesh.primitive_cube_add()\n```"
	got := ExtractAndValidate(raw)
	if got == "" {
		t.Fatalf("uniformly indented block rejected")
	}
	want := "import bpy\nif True:\n    bpy.ops.mesh.primitive_cube_add()"
	if got != want {
		t.Fatalf("ExtractAndValidate = %q, want %q", got, want)
	}
}

func TestNormalizeDedentsAndConvertsTabs(t *testing.T) {
	got := Normalize("\tx = 1\n\tif x:\n\t    y = 2")
	want := "x = 1\nif x:\n    y = 2"
	if got != want {
		t.Fatalf("Normalize = %q, want %q", got, want)
	}
}

func TestRejectsUnsafeImports(t *testing.T) {
	cases := []struct {
		name string
		code string
	}{
		{"import shutil", "import bpy\nimport shutil\nshutil.rmtree('/')"},
		{"from subprocess", "from subprocess import run\nimport bpy"},
		{"import ctypes", "import ctypes\nbpy.ops.wm.quit_blender()"},
		{"import socket", "import socket\ns = socket.socket()\nbpy.data"},
		{"inside fence", "```python\nimport bpy\nimport socket\n```"},
		{"indented", "```python\nif True:\n    import subprocess\n```"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractAndValidate(tc.code); got != "" {
				t.Fatalf("unsafe input accepted: %q", got)
			}
		})
	}
}

func TestAllowsSafeNameContainingUnsafePrefix(t *testing.T) {
	// "socketry" contains "socket" but is a different module.
	code := "```python\nimport bpy\nimport socketry\n```"
	if got := ExtractAndValidate(code); got == "" {
		t.Fatalf("module name sharing a prefix with a denylisted one was rejected")
	}
}

func TestRejectsInvalidSyntax(t *testing.T) {
	raw := "```python\nimport bpy\nif True\n    pass\n```"
	if got := ExtractAndValidate(raw); got != "" {
		t.Fatalf("syntactically invalid snippet accepted: %q", got)
	}
}

func TestAcceptsGuardedMaterialSnippet(t *testing.T) {
	got := ExtractAndValidate("```python\n" + guardedSnippet + "\n```")
	if got == "" {
		t.Fatalf("guarded material snippet rejected")
	}
}
