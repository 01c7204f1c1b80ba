// Package linsys is a small, embeddable toolkit for solving dense systems
// of linear equations — n equations, n unknowns — with a classified answer
// for every input: a solution vector, or a precise reason why none exists.
//
// 🚀 What is linsys?
//
//	A focused, zero-runtime-dependency library that brings together:
//		• Equation & CoefficientMatrix primitives with value semantics
//		• A staged pipeline: Validate → Convert → Solve
//		• Forward elimination with partial pivoting (numerically safe)
//		• Full Gauss–Jordan reduction — read the answer straight off
//		• A closed error taxonomy: shape errors vs. solvability errors
//		• Horner's-method polynomial evaluation as a sibling utility
//
// ✨ Why choose linsys?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – pure in-memory arithmetic, no hidden state
//   - Pure Go – no cgo, no hidden deps
//   - Host-ready – designed for embedding behind a scripting bridge
//
// Everything is organized under two subpackages:
//
//	gauss/      — Equation, CoefficientMatrix and the solving pipeline
//	polynomial/ — single-variable polynomial evaluation (Horner's method)
//
// Quick example:
//
//	solved, err := gauss.New(2).
//	    AddEquation(gauss.NewEquation([]float64{8, -6}, 2)).
//	    AddEquation(gauss.NewEquation([]float64{2, 3}, 2)).
//	    Validate()
//
// then chain Convert() and Solve(); the result column of the solved
// matrix is the solution vector x₀…x₍ₙ₋₁₎.
//
// Dive into the package docs for the full pipeline contract, the error
// taxonomy, and worked examples.
//
//	go get github.com/katalvlaran/linsys
package linsys
