package health

// Service encapsulates health-related checks.
type Service struct{}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{}
}

// Status returns the fixed liveness payload served at the root route.
func (s *Service) Status() map[string]string {
	return map[string]string{"message": "Backend is running"}
}
