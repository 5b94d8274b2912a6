// Package header provides parsing of and read access to email message
// headers. A Header is an ordered list of fields preserving the input
// order and any duplicates. Lookups are case-insensitive and the semantic
// getters (dates, address lists, parameterized values) cache the parsed
// result so repeated access is cheap.
package header
