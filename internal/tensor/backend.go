package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - cpu: vectorized batch execution over whole slices
//   - reference: element-by-element scalar loops, used as ground truth
//
// All binary operations require operands of identical shape and dtype;
// violating that is a programmer error and panics. Score-level shape
// validation happens before any backend call (see the metrics package).
type Backend interface {
	// Element-wise binary operations
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with scalar)
	AddScalar(x *RawTensor, scalar any) *RawTensor // add scalar
	SubScalar(x *RawTensor, scalar any) *RawTensor // subtract scalar
	MulScalar(x *RawTensor, scalar any) *RawTensor // multiply by scalar
	DivScalar(x *RawTensor, scalar any) *RawTensor // divide by scalar

	// Math operations (element-wise)
	Sqrt(x *RawTensor) *RawTensor // square root
	Abs(x *RawTensor) *RawTensor  // absolute value

	// Comparison operations (element-wise, return bool tensor)
	Greater(a, b *RawTensor) *RawTensor      // a > b
	GreaterEqual(a, b *RawTensor) *RawTensor // a >= b

	// Type conversion
	Cast(x *RawTensor, dtype DataType) *RawTensor // cast to different data type

	// Reduction operations (return a Shape{1} scalar tensor)
	Sum(x *RawTensor) *RawTensor  // total sum
	Mean(x *RawTensor) *RawTensor // arithmetic mean

	// Normal returns the Gaussian distribution N(loc, scale) with
	// per-element location and scale. Both parameter tensors must have
	// the same shape; evaluation is element-wise against them.
	Normal(loc, scale *RawTensor) NormalDist

	// Metadata
	Name() string
	Device() Device
}

// NormalDist evaluates a per-element Gaussian distribution.
// The argument tensor must match the shape of the loc/scale tensors the
// distribution was created with. Invalid parameters (scale <= 0) and
// boundary probabilities (0 or 1) are not trapped: NaN and Inf propagate
// through the results exactly as the underlying primitives produce them.
type NormalDist interface {
	PDF(x *RawTensor) *RawTensor      // probability density at x
	LogPDF(x *RawTensor) *RawTensor   // log density at x
	CDF(x *RawTensor) *RawTensor      // cumulative probability at x
	Quantile(p *RawTensor) *RawTensor // inverse CDF at probability p
}
