// Package xanalyzer provides the core types and functions behind the
// X Analyzer financial assistant: a chat session with a language model
// that answers personal-finance questions and embeds chart payloads
// in its replies.
//
// The core functionalities include:
//   - Conversation Management: Recording the exchange between the user
//     and the assistant as an append-only list of messages, seeded with
//     the fixed system preamble that teaches the model the chart
//     payload contract.
//   - Chart Payload Extraction: Locating and strictly decoding the JSON
//     visualization object ({"chart_type", "title", "data"}) that the
//     model embeds in prose replies.
//   - Canvas Input: Parsing the comma-separated category and amount
//     lists a user types to chart data by hand, without the model.
//   - Presentation Primitives: Day and night themes, and exact monetary
//     values for the data tables printed next to every chart.
//
// This package serves as the foundational logic for the `xan`
// command-line tool; the groq, gemini, renderer and agent packages
// build the full assistant on top of it.
package xanalyzer
