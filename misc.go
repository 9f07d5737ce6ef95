package fluid

// --- errors ---

const dragUpdateBeforeBegin = "fluid: Drag.Update() invoked before Drag.Begin()"
const dragNonPositiveDelta = "fluid: Drag.Update() requires deltaSeconds > 0"
const badDecelerationRate = "fluid: deceleration rate must be in the (0, 1) range"
