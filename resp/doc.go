// Package resp builds caller-facing envelopes and extracts payloads from raw
// script results.
//
// Raw results have historically been returned flat, wrapped once under
// "data", or wrapped twice under "data.data". Unwrap absorbs that so callers
// only ever see the envelope shape:
//
//	tasks, ok := resp.Unwrap[[]script.TaskRecord](raw, resp.ShapeTasks)
//	if !ok {
//		return resp.BuildError[[]script.TaskRecord]("list_tasks", ecode.UnexpectedShape, "", nil)
//	}
//	return resp.BuildSuccess("list_tasks", tasks)
//
// Unwrapping always happens before an envelope is built; the builders never
// inspect raw results.
package resp
