package core

// ResultListener is notified when a round ends.
// Listeners are called synchronously and must not call back into the Session.
type ResultListener interface {
	OnWin()
	OnLose()
}

// ListenerFuncs adapts plain functions to ResultListener. Nil fields are skipped.
type ListenerFuncs struct {
	Win  func()
	Lose func()
}

// OnWin calls Win if set.
func (f ListenerFuncs) OnWin() {
	if f.Win != nil {
		f.Win()
	}
}

// OnLose calls Lose if set.
func (f ListenerFuncs) OnLose() {
	if f.Lose != nil {
		f.Lose()
	}
}

// AddListener registers l. Listeners are notified in registration order.
func (s *Session) AddListener(l ResultListener) {
	if l == nil {
		return
	}
	s.listeners = append(s.listeners, l)
}

func (s *Session) notifyWin() {
	for _, l := range s.listeners {
		l.OnWin()
	}
}

func (s *Session) notifyLose() {
	for _, l := range s.listeners {
		l.OnLose()
	}
}
