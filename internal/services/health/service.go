package health

// LivenessMessage is the body returned by the root liveness route.
const LivenessMessage = "Energy Optimizer API is running"

// Service encapsulates health-related checks.
type Service struct{}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{}
}

// Liveness returns the plain-text confirmation that the process is serving.
func (s *Service) Liveness() string {
	return LivenessMessage
}

// Status returns a simple health payload.
func (s *Service) Status() map[string]bool {
	return map[string]bool{"ok": true}
}
