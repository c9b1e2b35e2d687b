package practice

// feedbackDoneMsg is sent when the learner dismisses the score display.
type feedbackDoneMsg struct{}

// retryMsg is sent when the learner asks to say the same phrase again.
type retryMsg struct{}

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct{}
