// Package notify carries the user-facing outcome of every mutation to
// whatever presents it.
package notify

import "go.uber.org/zap"

// Variant distinguishes success feedback from failure feedback.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Outcome is a fire-and-forget notification.
type Outcome struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

// Success builds the outcome of a mutation that resolved.
func Success(description string) Outcome {
	return Outcome{Title: "Success", Description: description, Variant: VariantDefault}
}

// Failure builds the generic outcome of a mutation that was rejected.
func Failure(description string) Outcome {
	return Outcome{Title: "Error", Description: description, Variant: VariantDestructive}
}

// Failed reports whether o describes a failure.
func (o Outcome) Failed() bool { return o.Variant == VariantDestructive }

// Notifier presents outcomes.
type Notifier interface {
	Notify(Outcome)
}

// Func adapts a function to Notifier.
type Func func(Outcome)

func (f Func) Notify(o Outcome) { f(o) }

// LogNotifier writes outcomes to a zap logger.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(o Outcome) {
	fields := []zap.Field{zap.String("title", o.Title), zap.String("description", o.Description)}
	if o.Failed() {
		n.logger.Warn("operation failed", fields...)
		return
	}
	n.logger.Info("operation succeeded", fields...)
}
