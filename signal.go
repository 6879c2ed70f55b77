package csvviewer

// Signal delivers values of type T to connected callbacks.
//
// Emit calls the callbacks synchronously on the calling goroutine
// in the order they were connected. Callbacks connected or disconnected
// during an Emit take effect with the next Emit.
//
// A Signal is not safe for concurrent use.
// The zero value is ready to use.
type Signal[T any] struct {
	connections []*Connection
	callbacks   map[*Connection]func(T)
	closed      bool
}

// Connection is the handle returned by Signal.Connect
// to cancel the delivery to its callback.
type Connection struct {
	disconnect func()
}

// Disconnect removes the callback from its Signal.
// Calling Disconnect more than once or on a nil Connection is a no-op.
func (c *Connection) Disconnect() {
	if c == nil || c.disconnect == nil {
		return
	}
	c.disconnect()
	c.disconnect = nil
}

// Connected returns true if the callback of the Connection
// is still connected to its Signal.
func (c *Connection) Connected() bool {
	return c != nil && c.disconnect != nil
}

// Connect registers callback to be called by Emit.
// Connecting to a closed Signal returns an already
// disconnected Connection and callback will never be called.
func (s *Signal[T]) Connect(callback func(T)) *Connection {
	if s.closed || callback == nil {
		return &Connection{}
	}
	if s.callbacks == nil {
		s.callbacks = make(map[*Connection]func(T))
	}
	conn := new(Connection)
	conn.disconnect = func() { s.remove(conn) }
	s.connections = append(s.connections, conn)
	s.callbacks[conn] = callback
	return conn
}

func (s *Signal[T]) remove(conn *Connection) {
	delete(s.callbacks, conn)
	for i, c := range s.connections {
		if c == conn {
			s.connections = append(s.connections[:i:i], s.connections[i+1:]...)
			return
		}
	}
}

// Emit calls all connected callbacks with value.
func (s *Signal[T]) Emit(value T) {
	if len(s.connections) == 0 {
		return
	}
	snapshot := make([]func(T), len(s.connections))
	for i, conn := range s.connections {
		snapshot[i] = s.callbacks[conn]
	}
	for _, callback := range snapshot {
		callback(value)
	}
}

// NumConnections returns the number of connected callbacks.
func (s *Signal[T]) NumConnections() int {
	return len(s.connections)
}

// Close disconnects all callbacks.
// After Close, Connect returns disconnected Connections
// and Emit is a no-op. Close is idempotent.
func (s *Signal[T]) Close() {
	for _, conn := range s.connections {
		conn.disconnect = nil
	}
	s.connections = nil
	s.callbacks = nil
	s.closed = true
}

// IsClosed returns true after Close has been called.
func (s *Signal[T]) IsClosed() bool {
	return s.closed
}
