package domain

// Direction names used in events and logs
const (
	DirectionForward  = "forward"
	DirectionBackward = "backward"
)

// Submission is a contact form message
type Submission struct {
	ID      string
	Name    string
	Email   string
	Subject string
	Message string
}
