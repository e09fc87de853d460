package model_test

import (
	"fmt"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/startupsole/solechat/pkg/domain/model"
	"github.com/startupsole/solechat/pkg/domain/types"
)

func TestNewSessionID(t *testing.T) {
	id1 := model.NewSessionID()
	id2 := model.NewSessionID()

	gt.Value(t, id1 == "").Equal(false)
	gt.Value(t, id1 == id2).Equal(false)
}

func TestSessionTail(t *testing.T) {
	s := &model.Session{ID: "s1"}
	for i := 0; i < 15; i++ {
		s.Messages = append(s.Messages, model.Message{
			Role:    types.RoleUser,
			Content: fmt.Sprintf("message %d", i),
		})
	}

	t.Run("returns last n messages", func(t *testing.T) {
		tail := s.Tail(10)
		gt.Array(t, tail).Length(10)
		gt.Value(t, tail[0].Content).Equal("message 5")
		gt.Value(t, tail[9].Content).Equal("message 14")
	})

	t.Run("returns all messages when fewer than n", func(t *testing.T) {
		short := &model.Session{Messages: s.Messages[:3]}
		tail := short.Tail(10)
		gt.Array(t, tail).Length(3)
	})

	t.Run("returned slice does not alias the session", func(t *testing.T) {
		tail := s.Tail(10)
		tail[0].Content = "mutated"
		gt.Value(t, s.Messages[5].Content).Equal("message 5")
	})

	t.Run("zero or negative n yields nil", func(t *testing.T) {
		gt.Array(t, s.Tail(0)).Length(0)
		gt.Array(t, s.Tail(-1)).Length(0)
	})
}
