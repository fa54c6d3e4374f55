package orders

import "fmt"

// ValidationError — neispravni podaci kupca ili korpe; odbija se pre poziva procesora.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotificationError — plaćanje je uspelo, ali slanje mejla nije. Posebna vrsta
// greške da pozivalac može da razlikuje "plaćeno bez potvrde" od "nije plaćeno".
type NotificationError struct {
	OrderID string
	Err     error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("porudžbina %s je plaćena, ali notifikacija nije poslata: %v", e.OrderID, e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }
