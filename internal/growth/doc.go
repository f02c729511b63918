// Package growth implements discrete-time stochastic surface growth models.
//
// Each model advances a height field by one explicit Euler step (unit time
// step) of its update rule:
//
//   - [EW]: Edwards-Wilkinson, h' = h + ν·∇²h + η
//   - [KPZ]: Kardar-Parisi-Zhang, h' = h + ν·∇²h + (λ/2)·|∇h|² + η
//
// Steps are pure: the input field is never mutated and identical inputs
// produce identical outputs. All randomness lives in the caller-supplied
// noise slice (see the noise package).
//
// Models are NOT safe for concurrent use; each keeps scratch buffers
// between steps.
package growth
