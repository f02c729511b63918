// Package lattice provides the periodic height-field primitive for surface
// growth simulations.
//
// The package defines the core data type and its discrete operators:
//
//   - [Field]: L×L dense grid of heights with toroidal indexing
//   - [Field.Laplacian]: 5-point finite-difference curvature operator
//   - [Field.GradientSquared]: squared slope magnitude (KPZ non-linearity)
//   - [FieldPool]: reusable scratch buffers for operator temporaries
//
// # Boundary Convention
//
// Both operators wrap periodically at the grid edges. The gradient uses
// central differences with the same wrap as the Laplacian, so the two
// operators share one boundary convention across the whole package.
//
// # Mass Conservation
//
// The periodic Laplacian stencil sums to zero, so diffusion conserves the
// total field mass. The gradient-squared term does not; growth models that
// enable it are expected to gain mass over time.
package lattice
