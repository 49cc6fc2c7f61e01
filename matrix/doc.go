// Package matrix offers dense complex-valued vectors and matrices with
// explicitly named arithmetic operations.
//
// The matrix package provides:
//
//   - Vector: an owned []complex128 plus a Column/Row orientation. Add, Sub,
//     Scale, Dot, Inner (conjugating), Norm, Transpose, Conjugate.
//   - Matrix: a row-major rectangular store with Zeros, Ones, Identity,
//     NewMatrix and FromColumns constructors, Row/Col accessors that return
//     fresh vectors, and the kernels Add, Sub, Mul, MulVec, Scale, Transpose,
//     Conjugate and ConjTranspose.
//   - Multiply: a single entry point over the closed Operand union
//     {Scalar, *Vector, *Matrix}.
//   - ToGonum/FromGonum for exchanging real-valued data with gonum.
//
// Every operation returns a new value and never mutates its operands. Errors
// are package sentinels (ErrDimensionMismatch, ErrIndexOutOfBounds,
// ErrOrientation, ...) wrapped with an operation tag; match them with errors.Is.
//
// See the examples in this package and lsq for usage patterns.
package matrix
