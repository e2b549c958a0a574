package playback

// Action is a navigation command a key binding or button can trigger.
// Keeping the key→action mapping as data (see ui.DefaultKeymap) keeps the
// bindings testable without a live window.
type Action int

const (
	ActionNone Action = iota
	ActionReset
	ActionTogglePlayback
	ActionStepBack
	ActionStepBackCoarse
	ActionStepForward
	ActionStepForwardCoarse
)

// CoarseStep is the frame delta of the coarse step actions.
const CoarseStep = 10

// Apply executes the given action on the controller. Unknown actions and
// ActionNone do nothing.
func (c *Controller) Apply(action Action) {
	switch action {
	case ActionReset:
		c.Reset()
	case ActionTogglePlayback:
		c.TogglePlayback()
	case ActionStepBack:
		c.Step(-1)
	case ActionStepBackCoarse:
		c.Step(-CoarseStep)
	case ActionStepForward:
		c.Step(+1)
	case ActionStepForwardCoarse:
		c.Step(+CoarseStep)
	}
}
