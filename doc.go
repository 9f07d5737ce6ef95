// Package fluid implements the gesture interpretation logic behind
// iOS-style "fluid" interactions for Ebitengine games and toys:
// pointer drags with velocity estimation and end-point projection,
// mid-gesture pause detection, rubberband damping and corner snapping.
//
// The root package only deals with the raw gesture stream: it turns a
// per-tick sequence of pointer positions into translations, smoothed
// velocities and projected end points. The decision components live in
// subpackages and are plain numeric transforms with no rendering or
// input dependencies:
//   - [github.com/FradSer/fluid/pause] infers a mid-gesture halt from
//     a sharp drop across recent velocity samples, without a timer.
//   - [github.com/FradSer/fluid/rubberband] damps offsets sub-linearly
//     to suggest resistance at a boundary.
//   - [github.com/FradSer/fluid/snap] picks the corner a floating
//     element should settle into, and the motion profile to get there.
//   - [github.com/FradSer/fluid/spring] integrates velocity-seeded
//     spring motion using harmonica.
//
// Every stateful type in this module is meant to be owned by a single
// interactive widget and driven from the game's update loop. Nothing
// here is safe for concurrent use, and nothing here needs to be.
package fluid
