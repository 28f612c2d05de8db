package nudge

type mockNotifier struct {
	called bool
	habits []AtRisk
	err    error
}

func (m *mockNotifier) SendNudge(habits []AtRisk) error {
	m.called = true
	m.habits = habits
	return m.err
}
