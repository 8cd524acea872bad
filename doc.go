// Package clusterviz bounds clusters of 2-D points with confidence ellipses
// and turns the outlines into SVG paths or charts.
//
// 🚀 What is clusterviz?
//
//	A small toolkit for the "where does this cluster live?" question:
//		• Estimator: n-std confidence outline of one (x, y) sample
//		• Path adapter: outline → "M x, y L… Z" path commands
//		• Grouping: labelled points → typed per-cluster samples, bounded fan-out
//		• Ingestion: confounder tables (x, y, cluster) from CSV
//		• Rendering: scatter + dashed outlines as SVG or PNG
//
// ✨ Guarantees
//
//   - Deterministic: identical input gives bit-identical outlines
//   - Closed: 0 and 2π are both sampled, so the last vertex meets the first
//   - Centred: the outline centre is exactly the sample mean
//   - Typed errors: ellipse.ErrInvalidInput vs ellipse.ErrDegenerateInput
//
// Packages:
//
//	ellipse/   Estimate, Fit, Params, Outline
//	svgpath/   Commands, Encode, WriteTo
//	matrix/    Dense, Mul, Transpose, Scale, Covariance
//	cluster/   GroupBy, Outlines
//	dataset/   ReadConfounders, LoadConfounders
//	render/    Confounders chart via go-chart
//	cmd/clusterviz  CLI: outline, render
//
// Quick example:
//
//	outline, err := ellipse.Estimate(xs, ys, ellipse.DefaultOptions())
//	if err != nil { … }
//	path := svgpath.Encode(outline) // "M 1.2, 3.4L… Z"
//
//	go install github.com/katalvlaran/clusterviz/cmd/clusterviz@latest
package clusterviz
