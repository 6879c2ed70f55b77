package csvviewer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignal_EmitInConnectionOrder(t *testing.T) {
	var (
		s     Signal[int]
		calls []string
	)
	s.Connect(func(v int) { calls = append(calls, "first") })
	s.Connect(func(v int) { calls = append(calls, "second") })
	s.Emit(1)
	require.Equal(t, []string{"first", "second"}, calls)
	require.Equal(t, 2, s.NumConnections())
}

func TestSignal_Disconnect(t *testing.T) {
	var (
		s   Signal[int]
		got []int
	)
	conn := s.Connect(func(v int) { got = append(got, v) })
	require.True(t, conn.Connected())

	s.Emit(1)
	conn.Disconnect()
	conn.Disconnect() // no-op
	s.Emit(2)

	require.Equal(t, []int{1}, got)
	require.False(t, conn.Connected())
	require.Zero(t, s.NumConnections())

	var nilConn *Connection
	nilConn.Disconnect()
}

func TestSignal_DisconnectDuringEmit(t *testing.T) {
	var (
		s     Signal[struct{}]
		calls int
		conn  *Connection
	)
	conn = s.Connect(func(struct{}) {
		calls++
		conn.Disconnect()
	})
	s.Emit(struct{}{})
	s.Emit(struct{}{})
	require.Equal(t, 1, calls)
}

func TestSignal_Close(t *testing.T) {
	var (
		s     Signal[int]
		calls int
	)
	conn := s.Connect(func(int) { calls++ })
	s.Close()
	s.Close() // idempotent

	require.True(t, s.IsClosed())
	require.False(t, conn.Connected())
	require.Zero(t, s.NumConnections())

	late := s.Connect(func(int) { calls++ })
	require.False(t, late.Connected())

	s.Emit(1)
	require.Zero(t, calls)

	// Disconnecting after Close must not panic
	conn.Disconnect()
	late.Disconnect()
}

func TestSignal_NilCallback(t *testing.T) {
	var s Signal[int]
	conn := s.Connect(nil)
	require.False(t, conn.Connected())
	require.Zero(t, s.NumConnections())
	s.Emit(1)
}
