package resp

import (
	"github.com/ncobase/taskbridge/ecode"
	"github.com/ncobase/taskbridge/types"
)

// Shape names the payload expected in a script result.
type Shape string

const (
	ShapeTasks    Shape = "tasks"
	ShapeProjects Shape = "projects"
	ShapeTags     Shape = "tags"
	ShapeFolders  Shape = "folders"
	ShapeTask     Shape = "task"
	ShapeProject  Shape = "project"
)

// Single reports whether s names a single item rather than a list.
func (s Shape) Single() bool {
	return s == ShapeTask || s == ShapeProject
}

// UnwrapValue locates the payload for shape in a raw script result. raw may
// be JSON text or an already decoded value. The payload is looked up at the
// top level, then under "data", then under "data.data". A result marked
// {"error": true}, unparseable text, or a missing payload yields false.
//
// For single-item shapes, a result that itself has an id and a name is taken
// as the item.
func UnwrapValue(raw any, shape Shape) (any, bool) {
	parsed, err := types.ParseJSON(raw)
	if err != nil {
		return nil, false
	}
	obj, ok := types.AsJSON(parsed)
	if !ok {
		return nil, false
	}
	if types.IsTrue(obj["error"]) {
		return nil, false
	}

	key := string(shape)
	if v, found := obj[key]; found {
		return v, v != nil
	}
	if data, ok := types.AsJSON(obj["data"]); ok {
		if v, found := data[key]; found {
			return v, v != nil
		}
		if inner, ok := types.AsJSON(data["data"]); ok {
			if v, found := inner[key]; found {
				return v, v != nil
			}
		}
	}

	if shape.Single() && hasIDAndName(obj) {
		return obj, true
	}
	return nil, false
}

func hasIDAndName(obj types.JSON) bool {
	id, ok := types.AsString(obj["id"])
	if !ok || id == "" {
		return false
	}
	name, ok := types.AsString(obj["name"])
	return ok && name != ""
}

// Unwrap is UnwrapValue converted into T through its JSON field names.
func Unwrap[T any](raw any, shape Shape) (T, bool) {
	var out T
	v, ok := UnwrapValue(raw, shape)
	if !ok {
		return out, false
	}
	if t, ok := v.(T); ok {
		return t, true
	}
	if err := types.Convert(v, &out); err != nil {
		var zero T
		return zero, false
	}
	return out, true
}

// FromRaw turns a raw script result into an envelope. Error results become
// SCRIPT_ERROR envelopes carrying the script's message and stack; results
// without the expected payload become UNEXPECTED_SHAPE envelopes.
func FromRaw[T any](operation string, raw any, shape Shape, opts ...Option) Envelope[T] {
	parsed, err := types.ParseJSON(raw)
	if err != nil {
		return BuildError[T](operation, ecode.UnexpectedShape, "", map[string]any{
			"shape": shape,
			"cause": err.Error(),
		}, opts...)
	}

	if IsErrorBlob(parsed) {
		obj, _ := types.AsJSON(parsed)
		message, _ := types.AsString(obj["message"])
		var details any
		if stack, ok := types.AsString(obj["stack"]); ok && stack != "" {
			details = map[string]any{"stack": stack}
		}
		return BuildError[T](operation, ecode.ScriptErr, message, details, opts...)
	}

	v, ok := Unwrap[T](parsed, shape)
	if !ok {
		return BuildError[T](operation, ecode.UnexpectedShape, "", map[string]any{"shape": shape}, opts...)
	}
	return BuildSuccess(operation, v, opts...)
}
