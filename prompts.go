package assistant

import "fmt"

// defensiveRules is the fixed policy text embedded in every CODE-mode system
// prompt. Generated code is executed against a live scene, so the model is
// steered hard toward code that cannot crash the host.
const defensiveRules = `
CRITICAL RULES - BLENDER PYTHON CODE GENERATION:

1. EXISTENCE CHECKS - MANDATORY:
   - NEVER assume properties, nodes, sockets, modifiers exist
   - ALWAYS use .get() or 'in' checks before accessing
   - Example: node.inputs.get("Roughness") or "Roughness" in node.inputs

2. OBJECT & CONTEXT VALIDATION:
   - Check bpy.context.active_object is not None
   - Check object has .data attribute when needed
   - Verify material exists before accessing

3. MATERIAL & NODE SAFETY:
   - Set material.use_nodes = True before node operations
   - Create Principled BSDF if missing: nodes.get("Principled BSDF") or nodes.new("ShaderNodeBsdfPrincipled")
   - Check socket exists before setting: if "Base Color" in bsdf.inputs: bsdf.inputs["Base Color"].default_value = ...

4. RENDER ENGINE COMPATIBILITY:
   - Set bpy.context.scene.render.engine = 'CYCLES' or 'BLENDER_EEVEE' before material operations
   - Some features need specific engines

5. MODIFIER SAFETY:
   - Check if modifier exists: obj.modifiers.get("ModifierName")
   - Create if missing: mod = obj.modifiers.new("Name", 'TYPE')

6. NO CRASHES ALLOWED:
   - Wrap risky operations in try/except if necessary
   - Use defensive checks to prevent KeyError, AttributeError, TypeError
   - Fail gracefully - skip unsupported features silently

7. CODE STRUCTURE:
   - Start with validation checks
   - Then create missing components
   - Finally apply modifications
   - Use clear variable names

8. EXAMPLE PATTERN:
` + "```python" + `
obj = bpy.context.active_object
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
        bsdf.inputs["Base Color"].default_value = (1, 0, 0, 1)
` + "```" + `

OUTPUT REQUIREMENTS:
- Return ONLY executable Python code
- No markdown formatting, no explanations
- Wrap in ` + "```python" + ` if requested, otherwise raw code
- Every line must be crash-proof
`

// codeSystemPrompt embeds the defensive policy and the scene snapshot
// captured at submission time.
func codeSystemPrompt(sceneContext string) string {
	return fmt.Sprintf(`You are an expert Blender Python (bpy) code generator.

%s

Current Scene State:
%s

RESPONSE FORMAT:
- Output ONLY valid, executable Python code
- Wrap code in `+"```python"+` blocks
- No explanations outside code blocks
- Every operation must be crash-proof
`, defensiveRules, sceneContext)
}

// codeUserMessage wraps the user's task in the fixed generation checklist.
func codeUserMessage(task string) string {
	return fmt.Sprintf(`Task: %s

Requirements:
1. Validate all objects, materials, nodes before use
2. Create missing components safely
3. Use defensive checks (.get(), 'in' operator)
4. Never crash - handle all edge cases
5. Set render engine if modifying materials

Generate crash-proof Blender Python code:`, task)
}

const qaSystemPrompt = `You are a helpful Blender scene analysis assistant.
Provide clear, concise answers about the Blender scene.
Use the scene context to give accurate information.
If asked about specific objects, reference them by name.
Be conversational and helpful.`

// qaUserMessage embeds the snapshot, the statistics summary, and the
// question.
func qaUserMessage(sceneContext, statsSummary, question string) string {
	return fmt.Sprintf("SCENE CONTEXT:\n%s\n\n%s\n\nUSER QUESTION: %s",
		sceneContext, statsSummary, question)
}
