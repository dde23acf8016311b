// Package model provides the data types for document outline extraction.
//
// This package defines the user-facing structures that represent the result
// of outline extraction: a document title plus an ordered list of headings
// with levels and page numbers. All pipeline stages ultimately produce these
// types, making them the primary API for consuming results.
//
// # Output Record
//
// The [DocumentOutline] type is the terminal output of the pipeline:
//
//	out := model.DocumentOutline{
//	    Title:   "Annual Report 2024",
//	    Outline: []model.OutlineEntry{{Level: model.H1, Text: "Introduction", Page: 1}},
//	}
//
// It serializes to the wire format {"title": ..., "outline": [...]} with
// levels rendered as "H1", "H2", "H3". Page numbers are 1-indexed throughout.
//
// # Geometry
//
// [BBox] and [Point] use the PDF coordinate convention: the origin is at the
// bottom-left of the page and Y increases upward. Reading order on a page is
// therefore descending Y, ascending X.
package model
