package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_AcceptsNumberAndNumericString(t *testing.T) {
	var req CreateQuestionRequest
	err := json.Unmarshal([]byte(`{"question":"q","answer":"a","category":"6","difficulty":3}`), &req)
	require.NoError(t, err)

	nq := req.ToNewQuestion()
	require.NotNil(t, nq.CategoryID)
	require.NotNil(t, nq.Difficulty)
	assert.Equal(t, 6, *nq.CategoryID)
	assert.Equal(t, 3, *nq.Difficulty)
}

func TestFlexInt_RejectsNonNumericString(t *testing.T) {
	var f FlexInt
	err := json.Unmarshal([]byte(`"sports"`), &f)
	assert.Error(t, err)
}

func TestFlexInt_NullLeavesPointerNil(t *testing.T) {
	var req CreateQuestionRequest
	err := json.Unmarshal([]byte(`{"category":null}`), &req)
	require.NoError(t, err)
	assert.Nil(t, req.Category)
	assert.Nil(t, req.ToNewQuestion().CategoryID)
}
