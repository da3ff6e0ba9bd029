package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseConstructors(t *testing.T) {
	ok := OK("req-1", map[string]any{"code": "x"})
	assert.Equal(t, "req-1", ok.RequestID)
	assert.True(t, ok.Success)
	assert.NotNil(t, ok.Result)
	assert.Empty(t, ok.Error)

	fail := Fail("req-2", "boom")
	assert.Equal(t, "req-2", fail.RequestID)
	assert.False(t, fail.Success)
	assert.Nil(t, fail.Result)
	assert.Equal(t, "boom", fail.Error)
}

func TestTaskResultConstructors(t *testing.T) {
	ok := TaskOK("t-1", 42)
	assert.True(t, ok.Success)
	assert.Equal(t, "t-1", ok.TaskID)
	assert.Equal(t, 42, ok.Result)

	fail := TaskFail("t-2", "bad params")
	assert.False(t, fail.Success)
	assert.Equal(t, "bad params", fail.Error)
	assert.Nil(t, fail.Result)
}

func TestNewRequestGeneratesUniqueIDs(t *testing.T) {
	a := NewRequest("generate_component", nil)
	b := NewRequest("generate_component", nil)
	require.NotEmpty(t, a.ID)
	require.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "generate_component", a.Action)
}

func TestNewTask(t *testing.T) {
	task := NewTask("generate_page", map[string]any{"output_path": "/tmp"})
	require.NotEmpty(t, task.ID)
	assert.Equal(t, "generate_page", task.Name)
	assert.Equal(t, "/tmp", task.Params["output_path"])
}

func TestStringParam(t *testing.T) {
	params := map[string]any{
		"framework": "react",
		"empty":     "",
		"number":    7,
	}
	assert.Equal(t, "react", StringParam(params, "framework", "x"))
	assert.Equal(t, "x", StringParam(params, "missing", "x"))
	assert.Equal(t, "x", StringParam(params, "empty", "x"))
	assert.Equal(t, "x", StringParam(params, "number", "x"))
	assert.Equal(t, "x", StringParam(nil, "framework", "x"))
}

func TestBoolParam(t *testing.T) {
	params := map[string]any{
		"typescript": false,
		"name":       "yes",
	}
	assert.False(t, BoolParam(params, "typescript", true))
	assert.True(t, BoolParam(params, "missing", true))
	assert.True(t, BoolParam(params, "name", true))
}

func TestMapParam(t *testing.T) {
	params := map[string]any{
		"options": map[string]any{"dark_mode": true},
		"name":    "x",
	}
	m := MapParam(params, "options")
	assert.Equal(t, true, m["dark_mode"])
	assert.Nil(t, MapParam(params, "name"))
	assert.Nil(t, MapParam(params, "missing"))
}
