// Package extract parses raw markup into a normalized document: title,
// description, Open Graph fields, main text, dates, images, organization
// and author names, and any embedded structured-data blocks.
//
// Extraction is a cascade of pattern families tried in fixed priority
// order. Every heuristic degrades to an empty field on a miss; malformed
// markup never fails the whole extraction. Callers decide whether the
// result is too thin via Document.Thin.
package extract
