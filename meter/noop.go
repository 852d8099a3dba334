package meter

import pathai "github.com/prince-kumar-singh/PathAI"

// NoopMeter is a meter that does nothing.
type NoopMeter struct{}

var _ pathai.Meter = (*NoopMeter)(nil)

func (m *NoopMeter) OnDispatch(pathai.DispatchEvent) {}
func (m *NoopMeter) OnResult(pathai.ResultEvent)     {}
