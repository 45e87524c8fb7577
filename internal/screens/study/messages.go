package study

// feedbackDoneMsg is sent when the learner dismisses the answer feedback.
type feedbackDoneMsg struct{}

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct{}
