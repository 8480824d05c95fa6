package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalNumberAndString(t *testing.T) {
	var u struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 42, "b": "7f3c", "c": null}`), &u))
	assert.Equal(t, ID("42"), u.A)
	assert.Equal(t, ID("7f3c"), u.B)
	assert.Equal(t, ID(""), u.C)
}

func TestID_UnmarshalRejectsObjects(t *testing.T) {
	var id ID
	require.Error(t, json.Unmarshal([]byte(`{"x":1}`), &id))
}

func TestHistoryEntry_MarshalsExerciseIDAsString(t *testing.T) {
	b, err := json.Marshal(HistoryEntry{ExerciseID: "12"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"exercise_id":"12"}`, string(b))
}

func TestExercise_DecodesBackendPayload(t *testing.T) {
	payload := `{"id":3,"name":"Puxada frontal","series":3,"repetitions":"12","group":"costas","demo":"puxada.gif","thumb":"puxada.png"}`

	var e Exercise
	require.NoError(t, json.Unmarshal([]byte(payload), &e))
	assert.Equal(t, ID("3"), e.ID)
	assert.Equal(t, "3", e.Series.String())
	assert.Equal(t, "12", e.Repetitions.String())
	assert.Equal(t, "costas", e.Group)
}

func TestSession_Complete(t *testing.T) {
	assert.False(t, (*Session)(nil).Complete())
	assert.False(t, (&Session{Token: "t"}).Complete())
	assert.False(t, (&Session{User: &User{ID: "1"}}).Complete())
	assert.True(t, (&Session{User: &User{ID: "1"}, Token: "t"}).Complete())
}

func TestProfileUpdate_OmitsEmptyPasswords(t *testing.T) {
	b, err := json.Marshal(ProfileUpdate{Name: "Ana"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ana"}`, string(b))
}
