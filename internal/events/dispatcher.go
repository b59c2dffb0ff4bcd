package events

// Dispatcher 为每种入站事件提供一个处理函数；未设置的处理函数忽略对应事件。
type Dispatcher struct {
	OnServerMessage      func(ServerMessage)
	OnPersonalityUpdated func(PersonalityUpdate)
	OnError              func(ErrorNotice)
	OnConnected          func(ConnectionState)
	OnDisconnected       func(ConnectionState)
}

// Dispatch 把事件交给对应的处理函数，返回是否有处理函数被调用。
func (d Dispatcher) Dispatch(ev Event) bool {
	switch p := ev.Payload.(type) {
	case ServerMessage:
		return call(d.OnServerMessage, p)
	case PersonalityUpdate:
		return call(d.OnPersonalityUpdated, p)
	case ErrorNotice:
		return call(d.OnError, p)
	case ConnectionState:
		if ev.Name == Disconnected {
			return call(d.OnDisconnected, p)
		}
		return call(d.OnConnected, p)
	}
	log.WithField("event", ev.Name).Debugf("no handler for payload %T", ev.Payload)
	return false
}

func call[T any](fn func(T), payload T) bool {
	if fn == nil {
		return false
	}
	fn(payload)
	return true
}
