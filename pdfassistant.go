// Package pdfassistant implements a document question-answering pipeline.
// Given a web page it discovers linked PDF documents, downloads them into a
// local store, merges them into a single document, extracts its text, and
// answers free-form questions about that text via a hosted language model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, pdfcpu/, gemini/).
package pdfassistant
