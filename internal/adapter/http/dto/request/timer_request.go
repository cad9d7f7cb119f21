package request

// TimerRequest is the optional body of timer create and start calls.
type TimerRequest struct {
	Title string `json:"title"`
}
