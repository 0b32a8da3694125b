// Package services implements the relay pipeline: classifying finished
// uploads, persisting rings and picture tasks, gating change-feed events
// into topic pushes, and the device-facing operations behind the gRPC API.
package services

// Push topics the companion apps and the device subscribe to.
const (
	TopicRings     = "rings"
	TopicTasks     = "tasks"
	TopicTasksDone = "tasks_done"
	TopicAnswers   = "answers"
)

// Intent actions the Android app registers for notification taps.
const (
	ClickActionAnswerRing = "com.hyperaware.doorbell.ANSWER_RING"
	ClickActionTakenPic   = "com.hyperaware.doorbell.TAKEN_PIC"
)
