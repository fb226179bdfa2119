// Package amf hosts building blocks for alternating matrix factorization
// (AMF) pipelines: given an input matrix V and a target rank r, an AMF
// engine alternates updates of two factor matrices W (n×r) and H (r×m)
// until W·H approximates V.
//
// 🚀 What is amf?
//
//	A small, focused library that brings together:
//		• Initialization rules: data-informed and random starting points for W and H
//		• One shared Rule contract so engines can pick a rule at configuration time
//		• Dense and sparse inputs: gonum mat.Matrix plus DoNonZero-capable types
//		• Reproducibility: injectable random sources for deterministic runs
//
// ✨ Why choose amf?
//
//   - Engine-agnostic – rules are leaf utilities, the optimizer stays yours
//   - Faithful numerics – documented edge cases propagate, nothing is clamped silently
//   - Pure Go – no cgo; storage comes from gonum, sparsity from james-bowman/sparse
//
// Everything currently lives under one subpackage:
//
//	initrule/ - initialization rules (AverageInitialization, RandomInitialization)
//
// Quick sketch:
//
//	V (n×m)  ──scan──▶  offset  ──fill──▶  W (n×r), H (r×m)
//
// Dive into the initrule package docs for the exact scan semantics and the
// sparse-input caveats.
//
//	go get github.com/lowrank/amf/initrule
package amf
