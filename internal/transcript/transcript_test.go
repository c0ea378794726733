package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend_OrderAndIDs(t *testing.T) {
	s := New()

	id1 := s.Append(RoleUser, "question")
	id2 := s.Append(RoleBot, "answer")
	id3 := s.Append(RoleUser, "follow-up")

	assert.Less(t, id1, id2)
	assert.Less(t, id2, id3)

	msgs := s.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "question", msgs[0].Content)
	assert.Equal(t, RoleUser, msgs[0].Role)
	assert.Equal(t, "answer", msgs[1].Content)
	assert.Equal(t, RoleBot, msgs[1].Role)
	assert.Equal(t, "follow-up", msgs[2].Content)

	seen := map[int64]bool{}
	for _, m := range msgs {
		assert.False(t, seen[m.ID], "id %d reused", m.ID)
		seen[m.ID] = true
	}
}

func TestMessages_ReturnsCopy(t *testing.T) {
	s := New()
	s.Append(RoleUser, "original")

	msgs := s.Messages()
	msgs[0].Content = "tampered"

	assert.Equal(t, "original", s.Messages()[0].Content)
}

func TestDraft(t *testing.T) {
	s := New()
	assert.Empty(t, s.Draft())

	s.SetDraft("half-typed thou")
	assert.Equal(t, "half-typed thou", s.Draft())

	s.SetDraft("")
	assert.Empty(t, s.Draft())
}

func TestLoading(t *testing.T) {
	s := New()
	assert.False(t, s.Loading())

	s.SetLoading(true)
	assert.True(t, s.Loading())

	s.SetLoading(false)
	assert.False(t, s.Loading())
}

func TestLastError(t *testing.T) {
	s := New()
	assert.Empty(t, s.LastError())

	s.SetError("File not found")
	assert.Equal(t, "File not found", s.LastError())

	s.ClearError()
	assert.Empty(t, s.LastError())
}

func TestLen(t *testing.T) {
	s := New()
	assert.Equal(t, 0, s.Len())

	s.Append(RoleUser, "one")
	s.Append(RoleBot, "two")
	assert.Equal(t, 2, s.Len())
}
