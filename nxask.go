// Package nxask answers questions about Cisco NX-OS "show" commands.
// It classifies chat messages, scrapes the matching Cisco command reference
// page, stuffs the page text into an LLM prompt, and structures the answer
// for display. Messages that are not about Cisco commands get a
// conversational reply instead.
//
// This package contains domain types, interfaces and the pure parts of the
// pipeline following Ben Johnson's Standard Package Layout. Implementations
// of external collaborators live in subdirectories named after their primary
// dependency (e.g., goquery/, gemini/, gin/).
package nxask
