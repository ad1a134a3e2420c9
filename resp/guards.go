package resp

import "github.com/ncobase/taskbridge/types"

func topLevel(raw any) (types.JSON, bool) {
	parsed, err := types.ParseJSON(raw)
	if err != nil {
		return nil, false
	}
	return types.AsJSON(parsed)
}

// IsErrorBlob reports whether raw is a script error result ({"error": true}).
func IsErrorBlob(raw any) bool {
	obj, ok := topLevel(raw)
	return ok && types.IsTrue(obj["error"])
}

// IsTaskList reports whether raw carries a "tasks" array at the top level.
func IsTaskList(raw any) bool {
	obj, ok := topLevel(raw)
	return ok && types.IsArray(obj[string(ShapeTasks)])
}

// IsProjectList reports whether raw carries a "projects" array at the top level.
func IsProjectList(raw any) bool {
	obj, ok := topLevel(raw)
	return ok && types.IsArray(obj[string(ShapeProjects)])
}
