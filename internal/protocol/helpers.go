package protocol

import "github.com/google/uuid"

// OK builds a successful Response correlated to the given request ID.
func OK(requestID string, result any) Response {
	return Response{RequestID: requestID, Success: true, Result: result}
}

// Fail builds a failed Response correlated to the given request ID.
// Result is left empty so that Result and Error stay mutually exclusive.
func Fail(requestID, errMsg string) Response {
	return Response{RequestID: requestID, Success: false, Error: errMsg}
}

// TaskOK builds a successful TaskResult.
func TaskOK(taskID string, result any) TaskResult {
	return TaskResult{TaskID: taskID, Success: true, Result: result}
}

// TaskFail builds a failed TaskResult.
func TaskFail(taskID, errMsg string) TaskResult {
	return TaskResult{TaskID: taskID, Success: false, Error: errMsg}
}

// NewRequest builds a Request with a generated ID.
func NewRequest(action string, data map[string]any) Request {
	return Request{ID: uuid.NewString(), Action: action, Data: data}
}

// NewTask builds a Task with a generated ID.
func NewTask(name string, params map[string]any) Task {
	return Task{ID: uuid.NewString(), Name: name, Params: params}
}

// StringParam reads a string value from a params map, returning def when the
// key is absent or not a string.
func StringParam(params map[string]any, key, def string) string {
	if v, ok := params[key].(string); ok && v != "" {
		return v
	}
	return def
}

// BoolParam reads a bool value from a params map, returning def when the key
// is absent or not a bool.
func BoolParam(params map[string]any, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}

// MapParam reads a nested map from a params map, returning nil when absent.
func MapParam(params map[string]any, key string) map[string]any {
	if v, ok := params[key].(map[string]any); ok {
		return v
	}
	return nil
}
