// Package relochat answers natural language questions about US metro-area
// rental prices. It matches simple intents (budget, cheapest/most-expensive,
// growth trend, comparison) against a small cleaned rent dataset and returns
// templated text answers.
//
// This package contains domain types, pure parsing and formatting logic, and
// interfaces following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency (e.g., csv/,
// gemini/, slog/).
package relochat
